package orders

// Order statuses. An order is enqueued as PENDING and moves to PROCESSED
// exactly once; there are no further transitions.
const (
	StatusPending   = "PENDING"
	StatusProcessed = "PROCESSED"
)

// Order is the central entity of the pipeline. It travels as JSON through the
// queue and is stored as-is in the orders DynamoDB table, keyed by orderId.
// Timestamp and ProcessedAt are RFC 3339 UTC strings set by the intake and
// processing stages respectively. TotalAmount is absent until processing.
type Order struct {
	OrderID         string     `json:"orderId" dynamodbav:"orderId"`
	CustomerName    string     `json:"customerName" dynamodbav:"customerName"`
	CustomerEmail   string     `json:"customerEmail" dynamodbav:"customerEmail"`
	Items           []LineItem `json:"items" dynamodbav:"items"`
	ShippingAddress Address    `json:"shippingAddress" dynamodbav:"shippingAddress"`
	PaymentMethod   string     `json:"paymentMethod,omitempty" dynamodbav:"paymentMethod,omitempty"`
	Status          string     `json:"status" dynamodbav:"status"`
	Timestamp       string     `json:"timestamp,omitempty" dynamodbav:"timestamp,omitempty"`
	ProcessedAt     string     `json:"processedAt,omitempty" dynamodbav:"processedAt,omitempty"`
	TotalAmount     float64    `json:"totalAmount,omitempty" dynamodbav:"totalAmount,omitempty"`
}

// LineItem is one product line within an order.
type LineItem struct {
	ProductID   string  `json:"productId" dynamodbav:"productId"`
	ProductName string  `json:"productName,omitempty" dynamodbav:"productName,omitempty"`
	Quantity    int     `json:"quantity" dynamodbav:"quantity"`
	Price       float64 `json:"price" dynamodbav:"price"`
}

// Address is the shipping destination of an order.
type Address struct {
	Street     string `json:"street" dynamodbav:"street"`
	City       string `json:"city" dynamodbav:"city"`
	PostalCode string `json:"postalCode" dynamodbav:"postalCode"`
	Country    string `json:"country" dynamodbav:"country"`
}

// Total sums price*quantity over the items in item order. The total is always
// recomputed from the items, never trusted from client input.
func Total(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
