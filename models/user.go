// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User is an account record. The single admin user doubles as the
// portfolio owner whose profile fields are shown on the public site.
//
// PasswordHash is a bcrypt digest and is never serialized.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`

	Description       string `json:"description"`
	FooterDescription string `json:"footerDescription"`
	Title             string `json:"title"`
	Location          string `json:"location"`
	LocationLink      string `json:"locationLink"`
	Instagram         string `json:"instagram"`
	Linkedin          string `json:"linkedin"`
	Github            string `json:"github"`
	About             string `json:"about"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Principal returns the identity attached to authenticated requests.
func (u User) Principal() Principal {
	return Principal{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// Owner returns the public profile of u with identifiers, role and
// credential data stripped.
func (u User) Owner() Owner {
	return Owner{
		Name:              u.Name,
		Email:             u.Email,
		Description:       u.Description,
		FooterDescription: u.FooterDescription,
		Title:             u.Title,
		Location:          u.Location,
		LocationLink:      u.LocationLink,
		Instagram:         u.Instagram,
		Linkedin:          u.Linkedin,
		Github:            u.Github,
		About:             u.About,
		CreatedAt:         u.CreatedAt,
	}
}

// Owner is the publicly displayed profile of the portfolio owner.
type Owner struct {
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Description       string    `json:"description"`
	FooterDescription string    `json:"footerDescription"`
	Title             string    `json:"title"`
	Location          string    `json:"location"`
	LocationLink      string    `json:"locationLink"`
	Instagram         string    `json:"instagram"`
	Linkedin          string    `json:"linkedin"`
	Github            string    `json:"github"`
	About             string    `json:"about"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Principal is the identity resolved from a verified bearer token.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims the email address.
func (c *Credentials) Normalize() {
	c.Email = strings.TrimSpace(c.Email)
}

// OwnerUpdate is a partial update of the owner profile.
// Only non-nil fields are written; authentication fields cannot be changed here.
type OwnerUpdate struct {
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	FooterDescription *string `json:"footerDescription,omitempty"`
	Title             *string `json:"title,omitempty"`
	Location          *string `json:"location,omitempty"`
	LocationLink      *string `json:"locationLink,omitempty"`
	Instagram         *string `json:"instagram,omitempty"`
	Linkedin          *string `json:"linkedin,omitempty"`
	Github            *string `json:"github,omitempty"`
	About             *string `json:"about,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u OwnerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.FooterDescription == nil &&
		u.Title == nil && u.Location == nil && u.LocationLink == nil &&
		u.Instagram == nil && u.Linkedin == nil && u.Github == nil && u.About == nil
}

// Normalize trims surrounding whitespace of every provided field.
func (u *OwnerUpdate) Normalize() {
	for _, f := range []*string{u.Name, u.Description, u.FooterDescription, u.Title,
		u.Location, u.LocationLink, u.Instagram, u.Linkedin, u.Github, u.About} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// Columns maps the provided fields to their database column names.
func (u OwnerUpdate) Columns() map[string]any {
	columns := make(map[string]any, 10)
	set := func(column string, value *string) {
		if value != nil {
			columns[column] = *value
		}
	}

	set("name", u.Name)
	set("description", u.Description)
	set("footer_description", u.FooterDescription)
	set("title", u.Title)
	set("location", u.Location)
	set("location_link", u.LocationLink)
	set("instagram", u.Instagram)
	set("linkedin", u.Linkedin)
	set("github", u.Github)
	set("about", u.About)

	return columns
}
