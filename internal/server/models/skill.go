package models

import (
	"slices"
	"time"
)

// Skill levels accepted by the API.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

var SkillLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

func ValidSkillLevel(level string) bool {
	return slices.Contains(SkillLevels, level)
}

type Skill struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	IconURL   string    `json:"iconUrl"`
	Order     int       `json:"order"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicSkill omits the visibility flag and timestamps.
type PublicSkill struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
	IconURL  string `json:"iconUrl"`
	Order    int    `json:"order"`
}

func (s *Skill) Public() PublicSkill {
	return PublicSkill{ID: s.ID, Name: s.Name, Level: s.Level, Category: s.Category, IconURL: s.IconURL, Order: s.Order}
}
