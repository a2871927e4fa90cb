package validate

import "regexp"

// Point-of-sale lookups key on the customer phone number: 10 digits,
// optionally prefixed with a country code.
var phoneRe = regexp.MustCompile(`^(\+\d{1,3})?\d{10}$`)

func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}
