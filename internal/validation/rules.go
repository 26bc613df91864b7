// Package validation implements declarative per-field rule chains for request
// payloads. Rules are evaluated in declaration order and every violation is
// collected, so the caller can return the full list in a single response.
package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule is a single check in a field's rule chain. Format and presence rules
// delegate to validator tags; store-backed rules carry their own check func.
type Rule struct {
	tag     string
	trim    bool
	message string
	check   func(ctx context.Context, value string) (bool, error)
}

// Required rejects empty and whitespace-only values.
func Required(message string) Rule {
	return Rule{tag: "required", trim: true, message: message}
}

// Email rejects malformed email addresses.
func Email(message string) Rule {
	return Rule{tag: "email", message: message}
}

// Length rejects values outside the inclusive [min, max] character range.
func Length(min, max int, message string) Rule {
	return Rule{tag: fmt.Sprintf("min=%d,max=%d", min, max), message: message}
}

// Unique rejects values already present in the backing store. The lookup
// reports whether the candidate value is taken (case-sensitive exact match);
// lookup failures abort validation and surface to the caller.
func Unique(taken func(ctx context.Context, value string) (bool, error), message string) Rule {
	return Rule{
		message: message,
		check: func(ctx context.Context, value string) (bool, error) {
			exists, err := taken(ctx, value)
			if err != nil {
				return false, err
			}
			return !exists, nil
		},
	}
}

// Field is a named field with its ordered rule chain.
type Field struct {
	Name  string
	Rules []Rule
}

// NewField builds a Field from its rule chain.
func NewField(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// RuleSet validates a set of named fields. It holds only a reference to the
// shared validator instance and is safe for concurrent use.
type RuleSet struct {
	validate *validator.Validate
	fields   []Field
}

// NewRuleSet builds a RuleSet backed by the given validator instance.
func NewRuleSet(validate *validator.Validate, fields ...Field) *RuleSet {
	return &RuleSet{validate: validate, fields: fields}
}

// Validate runs every rule of every field against the named values and returns
// the messages of all failing rules. An empty slice means the payload is valid.
// The error return carries store-lookup failures only.
func (rs *RuleSet) Validate(ctx context.Context, values map[string]string) ([]string, error) {
	var messages []string
	for _, field := range rs.fields {
		value := values[field.Name]
		for _, rule := range field.Rules {
			ok, err := rs.eval(ctx, rule, value)
			if err != nil {
				return nil, fmt.Errorf("validating field %q: %w", field.Name, err)
			}
			if !ok {
				messages = append(messages, rule.message)
			}
		}
	}
	return messages, nil
}

func (rs *RuleSet) eval(ctx context.Context, rule Rule, value string) (bool, error) {
	if rule.check != nil {
		return rule.check(ctx, value)
	}
	if rule.trim {
		value = strings.TrimSpace(value)
	}
	return rs.validate.Var(value, rule.tag) == nil, nil
}
