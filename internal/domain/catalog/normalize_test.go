package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NormalizeCategory(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain label lower-cased",
			input:    "Hand Bag",
			expected: "hand bag",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Wallet \t",
			expected: "wallet",
		},
		{
			name:     "curly apostrophe straightened",
			input:    "Men’s Watches",
			expected: "men's watches",
		},
		{
			name:     "curly double quotes straightened",
			input:    "“Premium” Belts",
			expected: `"premium" belts`,
		},
		{
			name:     "ampersand entity decoded",
			input:    "Bags &amp; Wallets",
			expected: "bags & wallets",
		},
		{
			name:     "apostrophe entity decoded",
			input:    "Men&#39;s Kicks",
			expected: "men's kicks",
		},
		{
			name:     "quote entity decoded",
			input:    "&quot;Luxury&quot; Frames",
			expected: `"luxury" frames`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeCategory(tc.input))
		})
	}
}

func Test_NormalizeCategory_Idempotent(t *testing.T) {
	inputs := []string{
		"Hand Bag",
		"Men’s Watches",
		"Bags &amp; Wallets",
		"  &quot;Luxury&quot; Frames  ",
	}

	for _, input := range inputs {
		once := NormalizeCategory(input)
		assert.Equal(t, once, NormalizeCategory(once), "normalize(normalize(%q)) must equal normalize(%q)", input, input)
	}
}

func Test_NormalizeCategory_VariantsMatch(t *testing.T) {
	// Encoding variants of the same literal text must normalize identically
	variants := []string{
		"Men's Kicks",
		"Men’s Kicks",
		"Men&#39;s Kicks",
		"  men's kicks ",
	}

	want := NormalizeCategory(variants[0])
	for _, v := range variants {
		assert.Equal(t, want, NormalizeCategory(v), "variant %q", v)
	}
}
