package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboutPublic_OmitsStorageFieldsAndTimestamps(t *testing.T) {
	a := NewAboutInfo()
	a.ProfileImagePublicID = "portfolio_profile_images/x.png"
	a.ResumePublicID = "portfolio_resumes/cv.pdf"

	b, err := json.Marshal(a.Public())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"profileImagePublicId", "resumePublicId", "createdAt", "updatedAt"} {
		assert.NotContains(t, m, k)
	}
	assert.Equal(t, "Your Name", m["name"])
	assert.EqualValues(t, 1, m["_id"])
}

func TestContactPublic(t *testing.T) {
	c := NewContactInfo()
	c.SocialLinks = nil

	p := c.Public()
	assert.NotNil(t, p.SocialLinks)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "createdAt")
	assert.Contains(t, string(b), `"socialLinks":[]`)
}

func TestSkillPublic(t *testing.T) {
	s := Skill{ID: "1", Name: "Go", Level: LevelExpert, IsPublic: true}

	b, err := json.Marshal(s.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "isPublic")
	assert.Contains(t, string(b), `"_id":"1"`)
}

func TestValidSkillLevel(t *testing.T) {
	for _, l := range SkillLevels {
		assert.True(t, ValidSkillLevel(l))
	}
	assert.False(t, ValidSkillLevel("expert"))
	assert.False(t, ValidSkillLevel(""))
}

func TestUserJSON_HidesPasswordHash(t *testing.T) {
	b, err := json.Marshal(User{ID: "u", UserName: "admin", PasswordHash: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
}
