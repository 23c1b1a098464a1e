package normalization

import (
	"testing"
)

// TestNormalization verifies normalization decisions and the idempotence of
// Normalize.
func TestNormalization(t *testing.T) {
	// Define test cases.
	tests := []struct {
		name       string
		normalized bool
		expected   string
	}{
		{"", true, ""},
		{"plain.txt", true, "plain.txt"},
		{"caf\u00e9", true, "caf\u00e9"},
		{"cafe\u0301", false, "caf\u00e9"},
		{"file\u0301.txt", false, "fil\u00e9.txt"},
		{"a\u0301", false, "\u00e1"},
		{"\u212b", false, "\u00c5"},
		{"A\u030a", false, "\u00c5"},
		{"\u1100\u1161", false, "\uac00"},
		{"\u00e9\u0301", true, "\u00e9\u0301"},
		{"\u65e5\u672c\u8a9e", true, "\u65e5\u672c\u8a9e"},
	}

	// Process test cases.
	for _, test := range tests {
		if normalized := IsNormalized(test.name); normalized != test.normalized {
			t.Errorf("normalization status (%t) does not match expected (%t) for %q",
				normalized, test.normalized, test.name,
			)
		}
		result := Normalize(test.name)
		if result != test.expected {
			t.Errorf("normalized form does not match expected for %q: %q != %q",
				test.name, result, test.expected,
			)
		}
		if !IsNormalized(result) {
			t.Errorf("normalized form of %q is not normalized", test.name)
		}
		if Normalize(result) != result {
			t.Errorf("normalization of %q is not idempotent", test.name)
		}
		if test.normalized && result != test.name {
			t.Errorf("normalized name %q changed by normalization", test.name)
		}
	}
}
