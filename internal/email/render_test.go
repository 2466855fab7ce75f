package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serverless-shop/order-pipeline/internal/orders"
)

func TestRender(t *testing.T) {
	o := orders.Order{
		OrderID:       "o-1",
		CustomerName:  "Jane",
		CustomerEmail: "jane@x.com",
		Items: []orders.LineItem{
			{ProductID: "p1", ProductName: "Widget", Quantity: 2, Price: 10.0},
			{ProductID: "p2", Quantity: 1, Price: 5.5},
		},
		Status:      orders.StatusProcessed,
		TotalAmount: 25.5,
	}

	msg := Render(o)

	assert.Equal(t, "Order Confirmation #o-1", msg.Subject)
	want := "Dear Jane,\n\n" +
		"Thank you for your order #o-1!\n\n" +
		"Order details:\n" +
		"- 2x Widget ($10.00 each)\n" +
		"- 1x Product ($5.50 each)\n" +
		"\nTotal amount: $25.50\n\n" +
		"Order status: Processed\n\n" +
		"Track your order status on our website.\n\n" +
		"Best regards,\nE-commerce Team\n"
	assert.Equal(t, want, msg.Body)
}

func TestRender_Deterministic(t *testing.T) {
	o := orders.Order{
		OrderID:      "o-2",
		CustomerName: "Bob",
		Items:        []orders.LineItem{{ProductID: "p1", Quantity: 3, Price: 1.25}},
	}
	assert.Equal(t, Render(o), Render(o))
}
