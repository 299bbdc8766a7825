package domain

import (
	"math"
	"regexp"
)

// Entry keys must be plain identifiers: letters, digits, hyphen,
// underscore, at most 64 characters.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// reservedKeys are structural object keys that must never become entry
// names, kept as an explicit input-sanitisation invariant even though
// Go maps are not corruptible the way dynamic objects are.
var reservedKeys = map[string]bool{
	"__proto__":   true,
	"prototype":   true,
	"constructor": true,
}

// ValidateKey checks that name is usable as a config entry key.
func ValidateKey(name string) error {
	if name == "" {
		return Validationf("a name is required (letters, digits, hyphen, underscore)")
	}
	if reservedKeys[name] {
		return Validationf("%q is a reserved name and cannot be used", name)
	}
	if !keyPattern.MatchString(name) {
		return Validationf("invalid name %q: use letters, digits, hyphen or underscore, at most 64 characters", name)
	}
	return nil
}

// ValidateTemperature checks the [0.0, 1.0] domain shared by
// temperature and topP.
func ValidateTemperature(field string, value float64) error {
	if math.IsNaN(value) || value < 0.0 || value > 1.0 {
		return Validationf("%s must be between 0.0 and 1.0 (got %g)", field, value)
	}
	return nil
}
