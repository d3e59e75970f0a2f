package validators

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-portfolio/internal/utils"
)

const defaultMessage = "Invalid value"

// wildcardSuffix marks a chain that applies to every element of an array.
const wildcardSuffix = ".*"

// Source tells a chain where to read its value from.
type Source int

const (
	SourceBody Source = iota
	SourceParam
)

// Input is the request data a chain reads from: the decoded JSON body and
// the path parameters.
type Input struct {
	Body   map[string]any
	Params map[string]string
}

type optionalMode int

const (
	required optionalMode = iota
	optionalMissing
	optionalEmpty
)

type check struct {
	message string
	test    func(value any, present bool) bool
}

// Chain is the ordered list of checks for one field.
// Build it with [Body] or [Param] and the check methods; [Chain.WithMessage]
// sets the message of the check added just before it.
type Chain struct {
	source   Source
	field    string
	optional optionalMode
	trim     bool
	checks   []check
}

// Body starts a chain on a top-level body field. A field ending in ".*"
// applies to every element of the array stored under the prefix, and
// failures are reported as "field[i]".
func Body(field string) *Chain {
	return &Chain{source: SourceBody, field: field}
}

// Param starts a chain on a path parameter.
func Param(field string) *Chain {
	return &Chain{source: SourceParam, field: field}
}

// Optional skips the chain when the field is absent or null.
func (c *Chain) Optional() *Chain {
	c.optional = optionalMissing
	return c
}

// OptionalOrEmpty skips the chain when the field is absent, null or an empty string.
func (c *Chain) OptionalOrEmpty() *Chain {
	c.optional = optionalEmpty
	return c
}

// Trim removes surrounding whitespace from string values before the checks
// run and writes the trimmed value back to the input.
func (c *Chain) Trim() *Chain {
	c.trim = true
	return c
}

// WithMessage sets the failure message of the most recently added check.
func (c *Chain) WithMessage(message string) *Chain {
	if n := len(c.checks); n > 0 {
		c.checks[n-1].message = message
	}
	return c
}

func (c *Chain) add(test func(value any, present bool) bool) *Chain {
	c.checks = append(c.checks, check{message: defaultMessage, test: test})
	return c
}

// Exists fails when the field is absent.
func (c *Chain) Exists() *Chain {
	return c.add(func(_ any, present bool) bool {
		return present
	})
}

// NotEmpty fails unless the value is a non-empty scalar.
func (c *Chain) NotEmpty() *Chain {
	return c.add(func(v any, _ bool) bool {
		s, ok := stringValue(v)
		return ok && s != ""
	})
}

// Length fails unless the value is a scalar whose length in characters is
// within [min, max]. A max of zero means unbounded.
func (c *Chain) Length(min, max int) *Chain {
	return c.add(func(v any, _ bool) bool {
		s, ok := stringValue(v)
		if !ok {
			return false
		}
		n := utf8.RuneCountInString(s)
		return n >= min && (max == 0 || n <= max)
	})
}

// Email fails unless the value is a single bare e-mail address.
func (c *Chain) Email() *Chain {
	return c.add(func(v any, _ bool) bool {
		s, ok := v.(string)
		return ok && isEmail(s)
	})
}

// URL fails unless the value is an http, https or ftp URL with a
// fully-qualified host. The scheme may be omitted.
func (c *Chain) URL() *Chain {
	return c.add(func(v any, _ bool) bool {
		s, ok := v.(string)
		return ok && isURL(s)
	})
}

// Boolean fails unless the value is a JSON boolean.
func (c *Chain) Boolean() *Chain {
	return c.add(func(v any, _ bool) bool {
		_, ok := v.(bool)
		return ok
	})
}

// Int fails unless the value is a JSON integer greater than or equal to min.
func (c *Chain) Int(min int) *Chain {
	return c.add(func(v any, _ bool) bool {
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
			return false
		}
		return f >= float64(min) && f <= math.MaxInt32
	})
}

// OneOf fails unless the value is one of values.
func (c *Chain) OneOf(values ...string) *Chain {
	return c.add(func(v any, _ bool) bool {
		s, ok := v.(string)
		return ok && slices.Contains(values, s)
	})
}

// Array fails unless the value is a JSON array with at least min elements.
func (c *Chain) Array(min int) *Chain {
	return c.add(func(v any, _ bool) bool {
		a, ok := v.([]any)
		return ok && len(a) >= min
	})
}

// UUID fails unless the value is a canonical UUID string.
func (c *Chain) UUID() *Chain {
	return c.add(func(v any, _ bool) bool {
		s, ok := v.(string)
		return ok && utils.IsUUID(s)
	})
}

// target is one value a chain is applied to.
type target struct {
	key     string
	value   any
	present bool
	set     func(any)
}

func (c *Chain) targets(in *Input) []target {
	if c.source == SourceParam {
		v, ok := in.Params[c.field]
		var value any
		if ok {
			value = v
		}
		return []target{{key: c.field, value: value, present: ok}}
	}

	if name, ok := strings.CutSuffix(c.field, wildcardSuffix); ok {
		arr, ok := in.Body[name].([]any)
		if !ok {
			return nil
		}
		out := make([]target, 0, len(arr))
		for i := range arr {
			out = append(out, target{
				key:     fmt.Sprintf("%s[%d]", name, i),
				value:   arr[i],
				present: true,
				set:     func(v any) { arr[i] = v },
			})
		}
		return out
	}

	v, ok := in.Body[c.field]
	return []target{{
		key:     c.field,
		value:   v,
		present: ok,
		set:     func(nv any) { in.Body[c.field] = nv },
	}}
}

// run applies the chain to in and records failures in errs.
func (c *Chain) run(in *Input, errs map[string]string) {
	for _, t := range c.targets(in) {
		if c.skip(t) {
			continue
		}

		if s, ok := t.value.(string); ok && c.trim {
			t.value = strings.TrimSpace(s)
			if t.set != nil {
				t.set(t.value)
			}
		}

		for _, chk := range c.checks {
			if !chk.test(t.value, t.present) {
				errs[t.key] = chk.message
			}
		}
	}
}

func (c *Chain) skip(t target) bool {
	switch c.optional {
	case optionalMissing:
		return !t.present || t.value == nil
	case optionalEmpty:
		if !t.present || t.value == nil {
			return true
		}
		s, ok := t.value.(string)
		return ok && strings.TrimSpace(s) == ""
	default:
		return false
	}
}

// stringValue renders scalars the way they are compared by length checks.
// Absent and null values render as "". Arrays and objects are not scalars.
func stringValue(v any) (string, bool) {
	switch value := v.(type) {
	case nil:
		return "", true
	case string:
		return value, true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(value), true
	default:
		return "", false
	}
}
