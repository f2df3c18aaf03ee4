// Package validation checks decoded JSON payloads against explicit
// per-request schemas and reports every violated field at once.
package validation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/yigit/alumni/internal/pkg/apperrors"
	"github.com/yigit/alumni/internal/pkg/identifier"
	"github.com/yigit/alumni/internal/pkg/logger"
)

var validate = validator.New()

// Kind is the primitive shape a field must have.
type Kind int

const (
	// KindString accepts any JSON string.
	KindString Kind = iota
	// KindInteger accepts a JSON number with no fractional part.
	KindInteger
	// KindNumber accepts any finite JSON number.
	KindNumber
	// KindNumericString accepts a string holding a decimal number, e.g. a phone number.
	KindNumericString
	// KindBoolean accepts true or false.
	KindBoolean
	// KindID accepts an int64 either as a JSON integer or as a decimal string.
	KindID
)

// Range bounds an integer field, both ends inclusive.
type Range struct {
	Min int64
	Max int64
}

// Rule declares the constraints of a single field.
type Rule struct {
	Kind     Kind
	Required bool
	NonEmpty bool
	// OneOf restricts string values to an enumeration. With FoldCase the
	// comparison ignores case.
	OneOf    []string
	FoldCase bool
	// MaxLen caps string length in characters; zero means unlimited.
	MaxLen int
	// Range bounds KindInteger values; nil means any int64.
	Range *Range
}

// Schema maps field names to rules for one payload type. Name labels
// rejected payloads in the logs.
type Schema struct {
	Name   string
	Fields map[string]Rule
}

// Validate checks body against every rule and returns all violations,
// ordered by field name. A nil value counts as absent. When strict is set,
// fields not declared in the schema are reported as well.
func (s Schema) Validate(body map[string]any, strict bool) []apperrors.FieldViolation {
	var violations []apperrors.FieldViolation

	for field, rule := range s.Fields {
		value, present := body[field]
		if !present || value == nil {
			if rule.Required {
				violations = append(violations, violation(field, "%s is required", field))
			}
			continue
		}
		if msg := checkValue(field, rule, value); msg != "" {
			violations = append(violations, apperrors.FieldViolation{Field: field, Message: msg})
		}
	}

	if strict {
		for field := range body {
			if _, known := s.Fields[field]; !known {
				violations = append(violations, violation(field, "property %s should not exist", field))
			}
		}
	}

	sort.Slice(violations, func(i, j int) bool {
		return violations[i].Field < violations[j].Field
	})
	return violations
}

// Check is Validate returning an error. The error is an
// *apperrors.ValidationError when anything failed.
func (s Schema) Check(body map[string]any, strict bool) error {
	violations := s.Validate(body, strict)
	if len(violations) == 0 {
		return nil
	}
	verr := apperrors.NewValidationError(violations)
	logger.Debug().Str("schema", s.Name).Strs("fields", verr.Fields()).Msg("Payload rejected")
	return verr
}

func violation(field, format string, args ...any) apperrors.FieldViolation {
	return apperrors.FieldViolation{Field: field, Message: fmt.Sprintf(format, args...)}
}

// checkValue returns an empty string when value satisfies rule.
func checkValue(field string, rule Rule, value any) string {
	switch rule.Kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return field + " must be a string"
		}
		if rule.NonEmpty && s == "" {
			return field + " should not be empty"
		}
		if len(rule.OneOf) > 0 && !inEnum(s, rule) {
			return fmt.Sprintf("%s must be one of: %s", field, strings.Join(rule.OneOf, ", "))
		}
		if msg := checkLength(field, rule, s); msg != "" {
			return msg
		}

	case KindNumericString:
		s, ok := value.(string)
		if !ok {
			return field + " must be a number string"
		}
		if s == "" {
			if rule.NonEmpty {
				return field + " should not be empty"
			}
			return field + " must be a number string"
		}
		if err := validate.Var(s, "numeric"); err != nil {
			return field + " must be a number string"
		}
		if msg := checkLength(field, rule, s); msg != "" {
			return msg
		}

	case KindInteger:
		i, ok := integerValue(value)
		if !ok {
			return field + " must be an integer number"
		}
		if r := rule.Range; r != nil {
			if err := validate.Var(i, fmt.Sprintf("gte=%d,lte=%d", r.Min, r.Max)); err != nil {
				return fmt.Sprintf("%s must be between %d and %d", field, r.Min, r.Max)
			}
		}

	case KindNumber:
		if _, ok := numberValue(value); !ok {
			return field + " must be a number"
		}

	case KindBoolean:
		if _, ok := value.(bool); !ok {
			return field + " must be a boolean value"
		}

	case KindID:
		if _, ok := idValue(value); !ok {
			return field + " must be a valid 64-bit integer identifier"
		}
	}
	return ""
}

func checkLength(field string, rule Rule, s string) string {
	if rule.MaxLen <= 0 {
		return ""
	}
	if err := validate.Var(s, fmt.Sprintf("max=%d", rule.MaxLen)); err != nil {
		return fmt.Sprintf("%s must be at most %d characters", field, rule.MaxLen)
	}
	return ""
}

func inEnum(s string, rule Rule) bool {
	if rule.FoldCase {
		s = strings.ToLower(s)
	}
	tag := "oneof=" + strings.Join(rule.OneOf, " ")
	if rule.FoldCase {
		tag = strings.ToLower(tag)
	}
	return validate.Var(s, tag) == nil
}

func numberValue(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func integerValue(value any) (int64, bool) {
	if n, ok := value.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	// 2024.0 is still an integer.
	f, ok := numberValue(value)
	if !ok || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func idValue(value any) (int64, bool) {
	if s, ok := value.(string); ok {
		id, err := identifier.Parse(s)
		return id, err == nil
	}
	if n, ok := value.(json.Number); ok {
		id, err := n.Int64()
		return id, err == nil
	}
	return 0, false
}
