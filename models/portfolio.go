// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PortfolioData is the aggregate returned by the public landing endpoint.
type PortfolioData struct {
	Projects       []Project       `json:"projects"`
	Skills         []Skill         `json:"skills"`
	TimelineEvents []TimelineEvent `json:"timelineEvents"`
	OwnerData      *Owner          `json:"ownerData"`
}
