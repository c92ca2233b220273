package schema

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const DateFormat = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps field names to the first violated rule's message. It is
// the wire shape for inline form errors.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Check validates a single value, returning a message when it fails.
type Check func(value string) string

// CrossCheck validates across fields, attaching its message to one field.
type CrossCheck func(values map[string]string) (field, message string)

type Rule struct {
	Field    string
	Required bool
	Message  string // required-violation message
	Checks   []Check
}

// Schema is the declarative rule set for one entity.
type Schema struct {
	rules       []Rule
	crossChecks []CrossCheck
}

func New(rules ...Rule) Schema {
	return Schema{rules: rules}
}

func (s Schema) WithCrossChecks(checks ...CrossCheck) Schema {
	s.crossChecks = append(s.crossChecks, checks...)
	return s
}

// Validate runs every rule against the value map. Optional empty fields are
// skipped; format checks only run on non-empty values.
func (s Schema) Validate(values map[string]string) FieldErrors {
	errs := FieldErrors{}

	for _, rule := range s.rules {
		value := strings.TrimSpace(values[rule.Field])

		if value == "" {
			if rule.Required {
				msg := rule.Message
				if msg == "" {
					msg = "This field is required"
				}
				errs[rule.Field] = msg
			}
			continue
		}

		for _, check := range rule.Checks {
			if msg := check(value); msg != "" {
				errs[rule.Field] = msg
				break
			}
		}
	}

	for _, cross := range s.crossChecks {
		if field, msg := cross(values); msg != "" {
			if _, taken := errs[field]; !taken {
				errs[field] = msg
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateField runs only the rules for a single field, for per-question
// paging where one answer is checked at a time.
func (s Schema) ValidateField(field string, values map[string]string) FieldErrors {
	for _, rule := range s.rules {
		if rule.Field != field {
			continue
		}
		sub := Schema{rules: []Rule{rule}}
		return sub.Validate(values)
	}
	return nil
}

func Email() Check {
	return func(value string) string {
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email address"
		}
		return ""
	}
}

func MinLen(n int, message string) Check {
	return func(value string) string {
		if len(value) < n {
			return message
		}
		return ""
	}
}

// ISODate accepts yyyy-MM-dd only.
func ISODate() Check {
	return func(value string) string {
		if _, err := time.Parse(DateFormat, value); err != nil {
			return "Please enter a valid date (yyyy-MM-dd)"
		}
		return ""
	}
}

func OneOf(options []string) Check {
	return func(value string) string {
		for _, opt := range options {
			if value == opt {
				return ""
			}
		}
		return "Please select a valid option"
	}
}

// IntRange validates a numeric string within [min, max] inclusive.
func IntRange(min, max int) Check {
	return func(value string) string {
		n, err := strconv.Atoi(value)
		if err != nil {
			return "Please enter a number"
		}
		if n < min || n > max {
			return fmt.Sprintf("Must be between %d and %d", min, max)
		}
		return ""
	}
}

// FieldsEqual attaches a mismatch error to the second field.
func FieldsEqual(first, second, message string) CrossCheck {
	return func(values map[string]string) (string, string) {
		if values[first] != values[second] {
			return second, message
		}
		return "", ""
	}
}
