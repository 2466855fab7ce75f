package validation

import (
	"fmt"
	"math"
	"strings"
)

// Result is the outcome of validating a candidate order.
type Result struct {
	Valid   bool
	Message string
}

func invalid(format string, args ...any) Result {
	return Result{Valid: false, Message: fmt.Sprintf(format, args...)}
}

// ValidateOrder checks the shape and values of a candidate order. It operates
// on the raw decoded JSON object rather than a bound struct so that a missing
// field is distinguishable from a zero value and a fractional quantity is
// still visible. Rules run in a fixed order and stop at the first failure;
// the message names the offending rule or field. Pure and deterministic.
func ValidateOrder(payload map[string]any) Result {
	for _, field := range []string{"customerName", "customerEmail", "items", "shippingAddress"} {
		if _, ok := payload[field]; !ok {
			return invalid("Missing required field: %s", field)
		}
	}

	// Intentionally permissive email check, not a full RFC parse.
	email, ok := payload["customerEmail"].(string)
	if !ok || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return invalid("Invalid email format")
	}

	items, ok := payload["items"].([]any)
	if !ok || len(items) == 0 {
		return invalid("Order must contain at least one item")
	}

	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			return invalid("Item #%d contains incomplete data", i+1)
		}
		for _, key := range []string{"productId", "quantity", "price"} {
			if _, ok := item[key]; !ok {
				return invalid("Item #%d contains incomplete data", i+1)
			}
		}

		// JSON numbers decode as float64; an integral quantity has no
		// fractional part. Zero, negative and fractional are all rejected.
		qty, ok := item["quantity"].(float64)
		if !ok || qty <= 0 || qty != math.Trunc(qty) {
			return invalid("Item #%d: quantity must be a positive integer", i+1)
		}

		price, ok := item["price"].(float64)
		if !ok || price <= 0 {
			return invalid("Item #%d: price must be a positive number", i+1)
		}
	}

	address, _ := payload["shippingAddress"].(map[string]any)
	for _, field := range []string{"street", "city", "postalCode", "country"} {
		if _, ok := address[field]; !ok {
			return invalid("Missing required address field: %s", field)
		}
	}

	return Result{Valid: true, Message: "Validation successful"}
}
