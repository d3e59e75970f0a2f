// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// TimelineEvent is an entry of the career/education timeline.
// Year is free text (e.g. "2021" or "2019 - 2021") and events are listed
// by Year in descending string order.
type TimelineEvent struct {
	ID          string    `json:"id"`
	Year        string    `json:"year"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the TimelineEvent model.
func (e TimelineEvent) TableName() string {
	return "timeline_events"
}

// Normalize trims text fields.
func (e *TimelineEvent) Normalize() {
	e.Year = strings.TrimSpace(e.Year)
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
}

// TimelineUpdate is a partial timeline update; nil fields keep their stored value.
type TimelineUpdate struct {
	Year        *string `json:"year,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Apply returns e with every provided field of u written over it.
func (u TimelineUpdate) Apply(e TimelineEvent) TimelineEvent {
	if u.Year != nil {
		e.Year = *u.Year
	}
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}

	e.Normalize()
	return e
}
