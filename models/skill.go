// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// IconKind names the icon shown next to a skill group. The frontend resolves
// it through a fixed lookup table, so only the listed values are accepted.
type IconKind string

const (
	IconCode         IconKind = "Code"
	IconWeb          IconKind = "Web"
	IconDatabase     IconKind = "Database"
	IconCloud        IconKind = "Cloud"
	IconAI           IconKind = "AI"
	IconTools        IconKind = "Tools"
	IconLanguage     IconKind = "Language"
	IconEducation    IconKind = "Education"
	IconLogic        IconKind = "Logic"
	IconTerminal     IconKind = "Terminal"
	IconArchitecture IconKind = "Architecture"
	IconSecurity     IconKind = "Security"
	IconData         IconKind = "Data"
	IconAnalytics    IconKind = "Analytics"
	IconNetwork      IconKind = "Network"
	IconMobile       IconKind = "Mobile"
	IconDesign       IconKind = "Design"
)

// IconKinds lists every accepted [IconKind].
var IconKinds = []IconKind{
	IconCode, IconWeb, IconDatabase, IconCloud, IconAI, IconTools, IconLanguage,
	IconEducation, IconLogic, IconTerminal, IconArchitecture, IconSecurity,
	IconData, IconAnalytics, IconNetwork, IconMobile, IconDesign,
}

// IconNames returns the accepted icon names as plain strings.
func IconNames() []string {
	names := make([]string, 0, len(IconKinds))
	for _, k := range IconKinds {
		names = append(names, string(k))
	}
	return names
}

// Skill is a titled group of skills shown in the skills section.
type Skill struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Icon      IconKind   `json:"icon"`
	Skills    StringList `json:"skills"`
	Order     int        `json:"order"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Skill model.
func (s Skill) TableName() string {
	return "skills"
}

// Normalize trims text fields and list elements.
func (s *Skill) Normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.Icon = IconKind(strings.TrimSpace(string(s.Icon)))
	s.Skills = s.Skills.Trimmed()
}

// SkillUpdate is a partial skill update; nil fields keep their stored value.
type SkillUpdate struct {
	Title  *string     `json:"title,omitempty"`
	Icon   *IconKind   `json:"icon,omitempty"`
	Skills *StringList `json:"skills,omitempty"`
	Order  *int        `json:"order,omitempty"`
}

// Apply returns s with every provided field of u written over it.
func (u SkillUpdate) Apply(s Skill) Skill {
	if u.Title != nil {
		s.Title = *u.Title
	}
	if u.Icon != nil {
		s.Icon = *u.Icon
	}
	if u.Skills != nil {
		s.Skills = *u.Skills
	}
	if u.Order != nil {
		s.Order = *u.Order
	}

	s.Normalize()
	return s
}
