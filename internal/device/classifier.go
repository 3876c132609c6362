// Package device classifies clients into coarse device classes from their
// user-agent string.
package device

import "regexp"

// Class is a mutually exclusive device category.
type Class string

// Device classes.
const (
	Tablet  Class = "tablet"
	Mobile  Class = "mobile"
	Desktop Class = "desktop"
)

// Tablet patterns are checked before mobile patterns: a user agent matching
// both (an iPad reporting Mobile Safari, for example) is a tablet.
var (
	tabletPattern = regexp.MustCompile(`(?i)ipad|tablet|kindle|silk|playbook`)
	mobilePattern = regexp.MustCompile(`(?i)mobi|iphone|ipod|android|blackberry|phone|opera mini`)
)

// Classify maps a user-agent string to a device class. It is total and
// deterministic; unrecognized agents classify as desktop.
func Classify(userAgent string) Class {
	switch {
	case tabletPattern.MatchString(userAgent):
		return Tablet
	case mobilePattern.MatchString(userAgent):
		return Mobile
	default:
		return Desktop
	}
}
