// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Pagination bounds of the contact message listing. Larger values are
// clamped so the row offset always fits in a bigint.
const (
	DefaultContactPage  = 1
	DefaultContactLimit = 10
	MaxContactLimit     = 100
	MaxContactPage      = 1_000_000
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Replied   bool      `json:"replied"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// Normalize trims text fields.
func (c *Contact) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
}

// ReadStatus is the payload of the mark-as-read operation. Read is a
// pointer so that an absent flag can be told apart from false.
type ReadStatus struct {
	Read *bool `json:"read"`
}

// ContactFilter holds the query parameters of the contact listing.
type ContactFilter struct {
	// Read filters by read flag when non-nil.
	Read *bool

	// Page is 1-based.
	Page int

	// Limit is the page size.
	Limit int
}

// WithDefaults replaces non-positive paging values with the defaults and
// clamps values above [MaxContactPage] and [MaxContactLimit].
func (f ContactFilter) WithDefaults() ContactFilter {
	f.Page = clamp(f.Page, DefaultContactPage, MaxContactPage)
	f.Limit = clamp(f.Limit, DefaultContactLimit, MaxContactLimit)
	return f
}

func clamp(v, fallback, upper int) int {
	switch {
	case v < 1:
		return fallback
	case v > upper:
		return upper
	default:
		return v
	}
}

// Offset returns the number of rows skipped before the current page,
// computed on the clamped paging values.
func (f ContactFilter) Offset() int {
	f = f.WithDefaults()
	return (f.Page - 1) * f.Limit
}

// ContactPage is one page of the contact listing.
type ContactPage struct {
	Contacts []Contact
	Total    int
	Page     int
	Limit    int
}

// TotalPages returns the number of pages needed to list Total messages.
func (p ContactPage) TotalPages() int {
	if p.Limit < 1 || p.Total < 1 {
		return 0
	}
	pages := p.Total / p.Limit
	if p.Total%p.Limit != 0 {
		pages++
	}
	return pages
}
