package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsAccount reports whether s is a payout account number with a valid Luhn check digit.
func IsAccount(s string) bool {
	if s == "" {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}
