// Package validate contains the input checks applied to public form and chat
// payloads before any side effect happens.
package validate

import (
	"regexp"
	"strings"

	"github.com/atelier-lumen/backend/internal/model"
)

// Maximum lengths applied by Sanitize for the two public payload kinds.
const (
	MaxContactFieldLength = 1000
	MaxChatMessageLength  = 2000
)

// emailPattern is a deliberately loose syntactic check (something@something.tld),
// not full RFC 5322 validation. Deliverability is the sender's problem.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// phonePattern accepts international formats: digits, spaces, +, -, parentheses.
var phonePattern = regexp.MustCompile(`^[\d\s+\-()]{10,}$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is an acceptable phone number.
// The field is optional: empty or blank input passes.
func ValidPhone(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	return phonePattern.MatchString(s)
}

// ValidSubject reports whether s is one of the enumerated contact subjects.
func ValidSubject(s string) bool {
	for _, subject := range model.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Sanitize trims surrounding whitespace and truncates to maxLen runes.
// It is total: any input yields a usable string.
func Sanitize(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return s
}
