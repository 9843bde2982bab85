package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// cartCommandPattern recognizes an explicit "add N <product> to cart"
// command anywhere in a query, case-insensitively. The fragment match is
// non-greedy so trailing text after "to cart" is ignored.
var cartCommandPattern = regexp.MustCompile(`(?i)add\s+(\d+)\s+(.*?)\s+to cart`)

// CartIntent is a parsed cart-mutation command. Quantity is passed
// through as written; range validation belongs to the cart service.
type CartIntent struct {
	Quantity int
	Fragment string
}

// ExtractCartIntent reports whether raw contains an explicit add-to-cart
// command, returning the requested quantity and the trimmed product-name
// fragment between the quantity and "to cart".
func ExtractCartIntent(raw string) (CartIntent, bool) {
	m := cartCommandPattern.FindStringSubmatch(raw)
	if m == nil {
		return CartIntent{}, false
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil {
		// Digits too large for an int; treat as no command.
		return CartIntent{}, false
	}
	fragment := strings.TrimSpace(m[2])
	if fragment == "" {
		// A command that names no product is not a command; an empty
		// fragment would otherwise match every catalog row.
		return CartIntent{}, false
	}
	return CartIntent{Quantity: qty, Fragment: fragment}, true
}
