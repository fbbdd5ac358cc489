package models

import "time"

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label,omitempty"`
}

// ContactInfo is the singleton contact document.
type ContactInfo struct {
	ID          int64        `json:"_id"`
	IntroText   string       `json:"introText"`
	Email       string       `json:"email"`
	SocialLinks []SocialLink `json:"socialLinks"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type PublicContactInfo struct {
	ID          int64        `json:"_id"`
	IntroText   string       `json:"introText"`
	Email       string       `json:"email"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

func (c *ContactInfo) Public() PublicContactInfo {
	links := c.SocialLinks
	if links == nil {
		links = []SocialLink{}
	}
	return PublicContactInfo{ID: c.ID, IntroText: c.IntroText, Email: c.Email, SocialLinks: links}
}

func NewContactInfo() *ContactInfo {
	now := time.Now().UTC()
	return &ContactInfo{
		ID:          1,
		IntroText:   "I'm currently looking for new opportunities...",
		SocialLinks: []SocialLink{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
