// internal/domain/catalog/normalize.go
package catalog

import "strings"

// Category labels arrive from mixed sources: some carry curly quotes, some
// HTML-entity encoded punctuation. Without canonicalization, visually
// identical categories fail to match and filters come back empty.
var categoryReplacer = strings.NewReplacer(
	"’", "'", // curly apostrophes → straight
	"‘", "'",
	"“", `"`, // curly quotes → straight
	"”", `"`,
	"&amp;", "&", // decode HTML entities
	"&quot;", `"`,
	"&#39;", "'",
)

// NormalizeCategory canonicalizes a category label for equality comparison:
// straightens curly quotes, decodes common HTML entities, trims surrounding
// whitespace and lower-cases the result. Idempotent.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(categoryReplacer.Replace(s)))
}
