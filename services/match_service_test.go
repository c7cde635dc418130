package services

import (
	"testing"

	"hackmate_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchViewer() models.Profile {
	return models.Profile{
		ID:     "viewer",
		Name:   "Viewer",
		Skills: []string{"Frontend", "Backend", "UI/UX"},
	}
}

// TestBuildMatches_Scenario runs the canonical ranking scenario: a perfect
// subset, a single-skill overlap, and a zero-overlap candidate.
func TestBuildMatches_Scenario(t *testing.T) {
	candidates := []models.Profile{
		{ID: "a", Name: "A", Skills: []string{"Backend", "UI/UX"}},
		{ID: "b", Name: "B", Skills: []string{"Frontend"}},
		{ID: "c", Name: "C", Skills: []string{"Cloud Computing"}},
	}

	matched := BuildMatches(matchViewer(), candidates, nil)

	require.Len(t, matched, 2, "zero-overlap candidate must be excluded")
	assert.Equal(t, "a", matched[0].ID)
	assert.Equal(t, 100, matched[0].MatchPercentage)
	assert.ElementsMatch(t, []string{"Backend", "UI/UX"}, matched[0].CommonSkills)
	assert.Equal(t, "b", matched[1].ID)
	assert.Equal(t, 100, matched[1].MatchPercentage)
	assert.Equal(t, []string{"Frontend"}, matched[1].CommonSkills)
}

// TestBuildMatches_ExcludesZeroOverlap verifies a candidate with no common
// skill never appears, whatever the percentage formula would say.
func TestBuildMatches_ExcludesZeroOverlap(t *testing.T) {
	candidates := []models.Profile{
		{ID: "x", Skills: []string{"Blockchain"}},
		{ID: "y", Skills: nil},
	}

	matched := BuildMatches(matchViewer(), candidates, nil)

	assert.Empty(t, matched)
}

// TestBuildMatches_ExcludesSelf verifies the viewer is dropped even when
// present in the candidate pool.
func TestBuildMatches_ExcludesSelf(t *testing.T) {
	viewer := matchViewer()
	candidates := []models.Profile{
		viewer,
		{ID: "other", Skills: []string{"Backend"}},
	}

	matched := BuildMatches(viewer, candidates, nil)

	require.Len(t, matched, 1)
	assert.Equal(t, "other", matched[0].ID)
}

// TestBuildMatches_TiesKeepInputOrder verifies the sort is stable.
func TestBuildMatches_TiesKeepInputOrder(t *testing.T) {
	candidates := []models.Profile{
		{ID: "first", Skills: []string{"Backend"}},
		{ID: "second", Skills: []string{"Frontend"}},
		{ID: "third", Skills: []string{"UI/UX"}},
	}

	matched := BuildMatches(matchViewer(), candidates, nil)

	require.Len(t, matched, 3)
	assert.Equal(t, "first", matched[0].ID)
	assert.Equal(t, "second", matched[1].ID)
	assert.Equal(t, "third", matched[2].ID)
}

// TestBuildMatches_RanksHigherOverlapFirst verifies descending percentage
// order.
func TestBuildMatches_RanksHigherOverlapFirst(t *testing.T) {
	candidates := []models.Profile{
		{ID: "partial", Skills: []string{"Backend", "Blockchain", "Cloud Computing"}},
		{ID: "full", Skills: []string{"Backend", "UI/UX"}},
	}

	matched := BuildMatches(matchViewer(), candidates, nil)

	require.Len(t, matched, 2)
	assert.Equal(t, "full", matched[0].ID)
	assert.Equal(t, "partial", matched[1].ID)
	assert.Greater(t, matched[0].MatchPercentage, matched[1].MatchPercentage)
}

// TestBuildMatches_AlreadyInvitedFlag verifies the flag reflects
// non-declined sent invitations only.
func TestBuildMatches_AlreadyInvitedFlag(t *testing.T) {
	candidates := []models.Profile{
		{ID: "pending-invitee", Skills: []string{"Backend"}},
		{ID: "accepted-invitee", Skills: []string{"Frontend"}},
		{ID: "declined-invitee", Skills: []string{"UI/UX"}},
		{ID: "fresh", Skills: []string{"Backend"}},
	}
	sent := []models.TeamInvitation{
		{ToUserID: "pending-invitee", Status: models.InvitationStatusPending},
		{ToUserID: "accepted-invitee", Status: models.InvitationStatusAccepted},
		{ToUserID: "declined-invitee", Status: models.InvitationStatusDeclined},
	}

	matched := BuildMatches(matchViewer(), candidates, sent)

	flags := map[string]bool{}
	for _, m := range matched {
		flags[m.ID] = m.AlreadyInvited
	}
	assert.True(t, flags["pending-invitee"])
	assert.True(t, flags["accepted-invitee"])
	assert.False(t, flags["declined-invitee"], "a declined invitation should not block re-invite affordance")
	assert.False(t, flags["fresh"])
}
