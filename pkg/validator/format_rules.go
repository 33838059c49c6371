package validator

import "regexp"

// emailPart matches one run of characters that are neither '@' nor whitespace.
// Whitespace includes Unicode separators and BOM, as browsers treat them.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

// emailShapeRegex accepts local@domain.tld where no part contains whitespace or
// another '@'. It is a shape check only, not RFC 5322 parsing.
var emailShapeRegex = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// EmailShape fails unless value looks like local@domain.tld.
// The value is matched as given; callers trim it first.
func EmailShape(field, value string) Rule {
	return newRule(field, "validation.email", "must be a valid email address",
		func() bool { return emailShapeRegex.MatchString(value) })
}

// Accepted fails unless a checkbox such as consent is ticked.
func Accepted(field string, value bool) Rule {
	return newRule(field, "validation.accepted", "must be accepted",
		func() bool { return value })
}
