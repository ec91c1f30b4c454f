package record

import (
	"strings"
	"time"

	"ocureg/pkg/errors"
)

// dateFormat is the canonical ISO-8601 form every stored date is
// normalized to: UTC, millisecond precision.
const dateFormat = "2006-01-02T15:04:05.000Z"

// dateLayouts are the accepted input layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
}

// ValidateName trims the name and fails if nothing remains
func ValidateName(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errors.NewValidation("name must not be empty")
	}
	return trimmed, nil
}

// ValidateDisease checks enumeration membership. The failure message
// enumerates all valid values.
func ValidateDisease(s string) (Disease, error) {
	d := Disease(s)
	if !d.IsValid() {
		valid := make([]string, 0, len(Diseases()))
		for _, v := range Diseases() {
			valid = append(valid, string(v))
		}
		return "", errors.NewValidation("disease %q is not valid, must be one of: %s", s, strings.Join(valid, ", "))
	}
	return d, nil
}

// ValidateDate parses the string against the accepted layouts and
// normalizes it to the canonical form
func ValidateDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FormatDate(t), nil
		}
	}
	return "", errors.NewValidation("dateAdded %q is not a parseable date", s)
}

// DefaultDate returns the current instant in the canonical form
func DefaultDate() string {
	return FormatDate(time.Now())
}

// FormatDate renders t in the canonical UTC millisecond form
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateFormat)
}
