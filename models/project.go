// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DefaultProjectImage is used when a project is created without an image.
const DefaultProjectImage = "https://i.ibb.co/kcDG09n/splash-wallpaper.webp"

// CategoryAll is the pseudo-category meaning "no category filter".
// It is always listed first by the categories endpoint.
const CategoryAll = "all"

// ProjectCategories is the closed set of category values a project may carry.
var ProjectCategories = []string{"mobile", "web", "ai_ml", "cli", CategoryAll}

// Project is a portfolio project entry.
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Tags        StringList `json:"tags"`
	Categories  StringList `json:"categories"`
	Github      string     `json:"github,omitempty"`
	Demo        string     `json:"demo,omitempty"`
	Featured    bool       `json:"featured"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// Normalize trims text fields and list elements and applies the default image.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Image = strings.TrimSpace(p.Image)
	p.Github = strings.TrimSpace(p.Github)
	p.Demo = strings.TrimSpace(p.Demo)
	p.Tags = p.Tags.Trimmed()
	p.Categories = p.Categories.Trimmed()

	if p.Image == "" {
		p.Image = DefaultProjectImage
	}
}

// ProjectUpdate is a partial project update; nil fields keep their stored value.
type ProjectUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Image       *string     `json:"image,omitempty"`
	Tags        *StringList `json:"tags,omitempty"`
	Categories  *StringList `json:"categories,omitempty"`
	Github      *string     `json:"github,omitempty"`
	Demo        *string     `json:"demo,omitempty"`
	Featured    *bool       `json:"featured,omitempty"`
	Order       *int        `json:"order,omitempty"`
}

// Apply returns p with every provided field of u written over it.
func (u ProjectUpdate) Apply(p Project) Project {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.Categories != nil {
		p.Categories = *u.Categories
	}
	if u.Github != nil {
		p.Github = *u.Github
	}
	if u.Demo != nil {
		p.Demo = *u.Demo
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	if u.Order != nil {
		p.Order = *u.Order
	}

	p.Normalize()
	return p
}

// ProjectFilter holds the query parameters of the project listing.
type ProjectFilter struct {
	// Category restricts results to projects carrying it. Empty or
	// [CategoryAll] disables the filter.
	Category string

	// FeaturedOnly restricts results to featured projects.
	FeaturedOnly bool

	// Search is a case-insensitive substring matched against title,
	// description and tags.
	Search string

	// Limit caps the number of results; zero means no limit.
	Limit int
}
