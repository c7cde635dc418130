package services

import (
	"fmt"
	"testing"

	"hackmate_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendHackathons_FiltersAndAnnotates(t *testing.T) {
	profile := models.Profile{ID: "alice", Skills: []string{"Backend", "Cloud Computing"}}
	hackathons := []models.Hackathon{
		{ID: "h1", Title: "Cloud Jam", SkillsRequired: []string{"Cloud Computing", "Backend"}},
		{ID: "h2", Title: "Chain Days", SkillsRequired: []string{"Blockchain"}},
		{ID: "h3", Title: "API Sprint", SkillsRequired: []string{"Backend", "Frontend", "UI/UX", "Web Development"}},
		{ID: "h4", Title: "Enrolled One", SkillsRequired: []string{"Backend"}},
	}
	enrolled := map[string]struct{}{"h4": {}}

	recommended := recommendHackathons(profile, hackathons, enrolled)

	require.Len(t, recommended, 2)
	assert.Equal(t, "h1", recommended[0].ID)
	assert.Equal(t, 100, recommended[0].MatchPercentage, "all required skills covered")
	assert.Equal(t, "h3", recommended[1].ID)
	assert.Equal(t, 25, recommended[1].MatchPercentage, "one of four required skills")
	assert.Equal(t, []string{"Backend"}, recommended[1].MatchingSkills)
}

func TestRecommendHackathons_CapsAtSix(t *testing.T) {
	profile := models.Profile{ID: "alice", Skills: []string{"Backend"}}

	var hackathons []models.Hackathon
	for i := 0; i < 10; i++ {
		hackathons = append(hackathons, models.Hackathon{
			ID:             fmt.Sprintf("h%d", i),
			SkillsRequired: []string{"Backend"},
		})
	}

	recommended := recommendHackathons(profile, hackathons, nil)

	require.Len(t, recommended, 6)
	assert.Equal(t, "h0", recommended[0].ID, "input order is kept")
	assert.Equal(t, "h5", recommended[5].ID)
}

func TestRecommendHackathons_EmptyProfileSkills(t *testing.T) {
	profile := models.Profile{ID: "alice"}
	hackathons := []models.Hackathon{
		{ID: "h1", SkillsRequired: []string{"Backend"}},
	}

	assert.Empty(t, recommendHackathons(profile, hackathons, nil))
}
