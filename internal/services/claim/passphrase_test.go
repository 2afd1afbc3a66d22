package claim

import "testing"

func TestIsSecurePassphrase(t *testing.T) {
	cases := map[string]bool{
		"":                  false,
		"Short-1":           false,
		"alllowercase-123":  false,
		"ALLUPPERCASE-123":  false,
		"NoDigitsHere-abc":  false,
		"NoSymbols1234abcD": false,
		"Correct-Horse-42":  true,
	}
	for pass, want := range cases {
		if got := isSecurePassphrase(pass); got != want {
			t.Errorf("isSecurePassphrase(%q) = %v, want %v", pass, got, want)
		}
	}
}
