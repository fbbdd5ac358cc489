package models

import "time"

// AboutInfo is the singleton profile document.
type AboutInfo struct {
	ID                   int64     `json:"_id"`
	Greeting             string    `json:"greeting"`
	Name                 string    `json:"name"`
	TaglineStrings       []string  `json:"taglineStrings"`
	ProfileImageURL      string    `json:"profileImageUrl"`
	ProfileImagePublicID string    `json:"profileImagePublicId"`
	ResumeURL            string    `json:"resumeUrl"`
	ResumePublicID       string    `json:"resumePublicId"`
	Bio                  string    `json:"bio"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// PublicAboutInfo omits timestamps and stored-file identifiers.
type PublicAboutInfo struct {
	ID              int64    `json:"_id"`
	Greeting        string   `json:"greeting"`
	Name            string   `json:"name"`
	TaglineStrings  []string `json:"taglineStrings"`
	ProfileImageURL string   `json:"profileImageUrl"`
	ResumeURL       string   `json:"resumeUrl"`
	Bio             string   `json:"bio"`
}

func (a *AboutInfo) Public() PublicAboutInfo {
	return PublicAboutInfo{
		ID:              a.ID,
		Greeting:        a.Greeting,
		Name:            a.Name,
		TaglineStrings:  nonNil(a.TaglineStrings),
		ProfileImageURL: a.ProfileImageURL,
		ResumeURL:       a.ResumeURL,
		Bio:             a.Bio,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// NewAboutInfo returns the document as first created, before any edits.
func NewAboutInfo() *AboutInfo {
	now := time.Now().UTC()
	return &AboutInfo{
		ID:              1,
		Greeting:        "Hi, my name is",
		Name:            "Your Name",
		TaglineStrings:  []string{"I build things for the web.", "I'm a Full Stack Developer."},
		ProfileImageURL: "/Profile.png",
		Bio: "A passionate developer dedicated to creating amazing web experiences. " +
			"Currently exploring new technologies and seeking challenging opportunities.",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
