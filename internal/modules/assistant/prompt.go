package assistant

import (
	"fmt"
	"strings"

	"github.com/shopchat-labs/shopchat-backend/internal/modules/catalog"
)

// summaryLimit caps how many results are embedded in the model prompt.
const summaryLimit = 5

const promptTemplate = `You are an intelligent shopping assistant. A user searched for %q.
Based on the catalog, here are the relevant products:
%s
Generate a helpful response and determine if the user wants to add something to the cart.`

// formatProductSummary renders the top results as the text block embedded
// in the model prompt. It doubles as the degraded reply when the model is
// unavailable.
func formatProductSummary(products []*catalog.Product) string {
	var b strings.Builder
	b.WriteString("Here are some products based on your search:\n\n")
	for i, p := range products {
		if i == summaryLimit {
			break
		}
		fmt.Fprintf(&b, "%s\nPrice: ₹%.2f\nLink: %s\n\n", p.ProductName, p.SellingPrice, p.ProductLink)
	}
	return b.String()
}

func buildPrompt(query string, products []*catalog.Product) string {
	return fmt.Sprintf(promptTemplate, query, formatProductSummary(products))
}
