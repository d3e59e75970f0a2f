package validators

import (
	"context"
	"fmt"
)

// RuleValidator implements [Validator] over named rule sets of [Chain]s.
// Rule sets are registered at construction and only read afterwards, so a
// RuleValidator is safe for concurrent use.
type RuleValidator struct {
	sets map[string][]*Chain
}

// NewRuleValidator constructs a RuleValidator with the API's rule sets.
func NewRuleValidator() *RuleValidator {
	return &RuleValidator{sets: defaultRuleSets()}
}

// Validate runs ruleSets in order against obj. It returns
// [ErrUnsupportedType] for anything but an [Input], [ErrUnknownRuleSet] for
// an unregistered name, and a [*ValidationError] when any check failed.
func (v *RuleValidator) Validate(ctx context.Context, obj any, ruleSets ...string) error {
	var in *Input
	switch value := obj.(type) {
	case Input:
		in = &value
	case *Input:
		in = value
	default:
		return ErrUnsupportedType
	}

	errs := make(map[string]string)
	for _, name := range ruleSets {
		chains, ok := v.sets[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownRuleSet, name)
		}
		for _, c := range chains {
			c.run(in, errs)
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}
