package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload
}

const validOrder = `{
	"customerName": "Jane",
	"customerEmail": "jane@x.com",
	"items": [
		{"productId": "p1", "productName": "Widget", "quantity": 2, "price": 10.0},
		{"productId": "p2", "quantity": 1, "price": 5.5}
	],
	"shippingAddress": {"street": "1 St", "city": "C", "postalCode": "00000", "country": "US"}
}`

func TestValidateOrder_Valid(t *testing.T) {
	res := ValidateOrder(decode(t, validOrder))
	assert.True(t, res.Valid)
	assert.Equal(t, "Validation successful", res.Message)
}

func TestValidateOrder_MissingTopLevelFields(t *testing.T) {
	for _, field := range []string{"customerName", "customerEmail", "items", "shippingAddress"} {
		t.Run(field, func(t *testing.T) {
			payload := decode(t, validOrder)
			delete(payload, field)

			res := ValidateOrder(payload)
			assert.False(t, res.Valid)
			assert.Equal(t, "Missing required field: "+field, res.Message)
		})
	}
}

func TestValidateOrder_Email(t *testing.T) {
	tests := []struct {
		name  string
		email any
	}{
		{"no at sign", "jane.example.com"},
		{"no dot", "jane@examplecom"},
		{"not a string", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := decode(t, validOrder)
			payload["customerEmail"] = tt.email

			res := ValidateOrder(payload)
			assert.False(t, res.Valid)
			assert.Equal(t, "Invalid email format", res.Message)
		})
	}
}

func TestValidateOrder_EmptyItems(t *testing.T) {
	payload := decode(t, validOrder)
	payload["items"] = []any{}

	res := ValidateOrder(payload)
	assert.False(t, res.Valid)
	assert.Equal(t, "Order must contain at least one item", res.Message)
}

func TestValidateOrder_ItemsNotAList(t *testing.T) {
	payload := decode(t, validOrder)
	payload["items"] = "p1"

	res := ValidateOrder(payload)
	assert.False(t, res.Valid)
	assert.Equal(t, "Order must contain at least one item", res.Message)
}

func TestValidateOrder_IncompleteItem(t *testing.T) {
	for _, field := range []string{"productId", "quantity", "price"} {
		t.Run(field, func(t *testing.T) {
			payload := decode(t, validOrder)
			item := payload["items"].([]any)[1].(map[string]any)
			delete(item, field)

			res := ValidateOrder(payload)
			assert.False(t, res.Valid)
			assert.Equal(t, "Item #2 contains incomplete data", res.Message)
		})
	}
}

func TestValidateOrder_Quantity(t *testing.T) {
	tests := []struct {
		name string
		qty  any
	}{
		{"zero", float64(0)},
		{"negative", float64(-1)},
		{"fractional", 2.5},
		{"not a number", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := decode(t, validOrder)
			item := payload["items"].([]any)[0].(map[string]any)
			item["quantity"] = tt.qty

			res := ValidateOrder(payload)
			assert.False(t, res.Valid)
			assert.Equal(t, "Item #1: quantity must be a positive integer", res.Message)
		})
	}
}

func TestValidateOrder_Price(t *testing.T) {
	tests := []struct {
		name  string
		price any
	}{
		{"zero", float64(0)},
		{"negative", -0.01},
		{"not a number", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := decode(t, validOrder)
			item := payload["items"].([]any)[0].(map[string]any)
			item["price"] = tt.price

			res := ValidateOrder(payload)
			assert.False(t, res.Valid)
			assert.Equal(t, "Item #1: price must be a positive number", res.Message)
		})
	}
}

func TestValidateOrder_MissingAddressFields(t *testing.T) {
	for _, field := range []string{"street", "city", "postalCode", "country"} {
		t.Run(field, func(t *testing.T) {
			payload := decode(t, validOrder)
			addr := payload["shippingAddress"].(map[string]any)
			delete(addr, field)

			res := ValidateOrder(payload)
			assert.False(t, res.Valid)
			assert.Equal(t, "Missing required address field: "+field, res.Message)
		})
	}
}

func TestValidateOrder_AddressNotAnObject(t *testing.T) {
	payload := decode(t, validOrder)
	payload["shippingAddress"] = "1 St"

	res := ValidateOrder(payload)
	assert.False(t, res.Valid)
	assert.Equal(t, "Missing required address field: street", res.Message)
}

func TestValidateOrder_ShortCircuitsOnFirstFailure(t *testing.T) {
	payload := decode(t, validOrder)
	delete(payload, "customerName")
	payload["customerEmail"] = "not-an-email"

	res := ValidateOrder(payload)
	assert.Equal(t, "Missing required field: customerName", res.Message)
}
