// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AdminSeed describes the administrator account to provision together with
// the owner profile shown on the public site.
type AdminSeed struct {
	Name     string
	Email    string
	Password string

	Profile OwnerUpdate
}

// Normalize trims the identity fields and the profile.
func (s *AdminSeed) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Profile.Normalize()
}

// ProfileUpdate returns the fields written to an existing administrator when
// the operator confirms the refresh. Email and password are left alone.
func (s AdminSeed) ProfileUpdate() OwnerUpdate {
	update := s.Profile
	if s.Name != "" {
		name := s.Name
		update.Name = &name
	}
	return update
}

// NewUser builds the administrator row for a fresh installation.
func (s AdminSeed) NewUser(id, passwordHash string) User {
	user := User{
		ID:           id,
		Name:         s.Name,
		Email:        s.Email,
		PasswordHash: passwordHash,
		Role:         RoleAdmin,
	}

	p := s.Profile
	for dst, src := range map[*string]*string{
		&user.Description:       p.Description,
		&user.FooterDescription: p.FooterDescription,
		&user.Title:             p.Title,
		&user.Location:          p.Location,
		&user.LocationLink:      p.LocationLink,
		&user.Instagram:         p.Instagram,
		&user.Linkedin:          p.Linkedin,
		&user.Github:            p.Github,
		&user.About:             p.About,
	} {
		if src != nil {
			*dst = *src
		}
	}

	return user
}

// ProvisionOutcome reports what provisioning did.
type ProvisionOutcome struct {
	// Created is true when a new administrator row was inserted.
	Created bool

	// Updated is true when the operator confirmed refreshing the profile of
	// an existing administrator.
	Updated bool

	// GeneratedPassword holds the password chosen on the operator's behalf,
	// if any. It is empty when the password came from configuration or the
	// prompt.
	GeneratedPassword string

	User User
}
