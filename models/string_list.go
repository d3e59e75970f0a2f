// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// StringList is a list of strings persisted as a jsonb array.
type StringList []string

// Value implements [driver.Valuer]. A nil list is stored as an empty array.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("error encoding string list: %w", err)
	}

	return string(b), nil
}

// Scan implements [sql.Scanner] for jsonb values delivered as text or bytes.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for string list", src)
	}

	list := make([]string, 0)
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("error decoding string list: %w", err)
	}
	*l = list

	return nil
}

// Trimmed returns a copy with surrounding whitespace removed from every element.
func (l StringList) Trimmed() StringList {
	out := make(StringList, 0, len(l))
	for _, s := range l {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

// Contains reports whether s is an element of the list.
func (l StringList) Contains(s string) bool {
	return slices.Contains(l, s)
}
