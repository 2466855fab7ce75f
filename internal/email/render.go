package email

import (
	"fmt"
	"strings"

	"github.com/serverless-shop/order-pipeline/internal/orders"
)

// Message is a rendered confirmation, independent of the delivery mechanism.
type Message struct {
	Subject string
	Body    string
}

// Render builds the confirmation for a processed order. Pure: the same order
// always renders to the same message. Items without a product name fall back
// to a generic label.
func Render(o orders.Order) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", o.CustomerName)
	fmt.Fprintf(&b, "Thank you for your order #%s!\n\n", o.OrderID)
	b.WriteString("Order details:\n")
	for _, it := range o.Items {
		name := it.ProductName
		if name == "" {
			name = "Product"
		}
		fmt.Fprintf(&b, "- %dx %s ($%.2f each)\n", it.Quantity, name, it.Price)
	}
	fmt.Fprintf(&b, "\nTotal amount: $%.2f\n\n", orders.Total(o.Items))
	b.WriteString("Order status: Processed\n\n")
	b.WriteString("Track your order status on our website.\n\n")
	b.WriteString("Best regards,\nE-commerce Team\n")

	return Message{
		Subject: fmt.Sprintf("Order Confirmation #%s", o.OrderID),
		Body:    b.String(),
	}
}
