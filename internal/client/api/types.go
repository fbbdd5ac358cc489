package api

import (
	"io"

	"github.com/dmitrijs2005/folio/internal/patch"
	"github.com/dmitrijs2005/folio/internal/server/models"
)

// LoginResult is the body of a successful login or registration.
type LoginResult struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	UserName string `json:"username"`
	Token    string `json:"token"`
}

type AboutPatch struct {
	Greeting       patch.Field[string]   `json:"greeting,omitzero"`
	Name           patch.Field[string]   `json:"name,omitzero"`
	TaglineStrings patch.Field[[]string] `json:"taglineStrings,omitzero"`
	Bio            patch.Field[string]   `json:"bio,omitzero"`
}

type ContactPatch struct {
	IntroText   patch.Field[string]              `json:"introText,omitzero"`
	Email       patch.Field[string]              `json:"email,omitzero"`
	SocialLinks patch.Field[[]models.SocialLink] `json:"socialLinks,omitzero"`
}

type ExperienceInput struct {
	Role        patch.Field[string]   `json:"role,omitzero"`
	Company     patch.Field[string]   `json:"company,omitzero"`
	Dates       patch.Field[string]   `json:"dates,omitzero"`
	Description patch.Field[[]string] `json:"description,omitzero"`
	Order       patch.Field[int]      `json:"order,omitzero"`
}

type SkillInput struct {
	Name     patch.Field[string] `json:"name,omitzero"`
	Level    patch.Field[string] `json:"level,omitzero"`
	Category patch.Field[string] `json:"category,omitzero"`
	IconURL  patch.Field[string] `json:"iconUrl,omitzero"`
	Order    patch.Field[int]    `json:"order,omitzero"`
	IsPublic patch.Field[bool]   `json:"isPublic,omitzero"`
}

type ProjectInput struct {
	Title        patch.Field[string]   `json:"title,omitzero"`
	Description  patch.Field[string]   `json:"description,omitzero"`
	Technologies patch.Field[[]string] `json:"technologies,omitzero"`
	Screenshots  patch.Field[[]string] `json:"screenshots,omitzero"`
	LiveLink     patch.Field[string]   `json:"liveLink,omitzero"`
	GithubLink   patch.Field[string]   `json:"githubLink,omitzero"`
	DisplayOrder patch.Field[int]      `json:"displayOrder,omitzero"`
}

// Upload is a file sent in a multipart request.
type Upload struct {
	Name        string
	ContentType string
	Body        io.Reader
}

type projectList struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []models.Project `json:"data"`
}

type projectEnvelope struct {
	Success bool           `json:"success"`
	Data    models.Project `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
