package models

import "time"

// MaxScreenshots caps Project.Screenshots.
const MaxScreenshots = 10

type Project struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Screenshots  []string  `json:"screenshots"`
	LiveLink     string    `json:"liveLink"`
	GithubLink   string    `json:"githubLink"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
