package cmd

import "testing"

func TestSplitPair(t *testing.T) {
	testCases := []struct {
		name       string
		arg        string
		wantTicker string
		wantID     string
		expectErr  bool
	}{
		{"Valid pair", "ACME=US0378331005", "ACME", "US0378331005", false},
		{"Id containing an equal sign", "A=B=C", "A", "B=C", false},
		{"Missing separator", "ACME", "", "", true},
		{"Empty ticker", "=US0378331005", "", "", true},
		{"Empty id", "ACME=", "", "", true},
		{"Empty string", "", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ticker, id, err := splitPair(tc.arg)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("splitPair(%q) returned error: %v, want error: %v", tc.arg, err, tc.expectErr)
			}
			if ticker != tc.wantTicker || id != tc.wantID {
				t.Errorf("splitPair(%q) = (%q, %q), want (%q, %q)", tc.arg, ticker, id, tc.wantTicker, tc.wantID)
			}
		})
	}
}
