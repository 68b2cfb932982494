package scaffold

import "strings"

// ValidateName checks a custom element name and returns it lowercased.
//
// A valid name is two or more runs of ASCII letters and digits joined by
// single hyphens, as custom element names must be.
func ValidateName(name string) (string, error) {
	if name == "" {
		return "", &InvalidNameError{Reason: "name is required"}
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return "", &InvalidNameError{Name: name, Reason: "only letters, digits and hyphens are allowed"}
		}
	}

	if !strings.Contains(name, "-") {
		return "", &InvalidNameError{Name: name, Reason: "name must contain a hyphen"}
	}

	for _, part := range strings.Split(name, "-") {
		if part == "" {
			return "", &InvalidNameError{Name: name, Reason: "hyphens must separate letters or digits"}
		}
	}

	return strings.ToLower(name), nil
}
