package services

import (
	"context"
	"fmt"
	"sort"

	"hackmate_server/models"
	"hackmate_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type MatchService struct {
	Dynamo      *DynamoService
	Profiles    *ProfileService
	Invitations InvitationRepository
}

// BuildMatches scores every candidate against the viewer and returns the
// ones with at least one common skill, best match first. Ties keep the
// candidates' input order. Candidates the viewer already holds a
// non-declined invitation to are flagged, not filtered; enforcement lives
// in the send path.
func BuildMatches(viewer models.Profile, candidates []models.Profile, sentInvitations []models.TeamInvitation) []models.MatchedProfile {
	invited := make(map[string]bool)
	for _, invitation := range sentInvitations {
		if invitation.Status != models.InvitationStatusDeclined {
			invited[invitation.ToUserID] = true
		}
	}

	matched := []models.MatchedProfile{}
	for _, candidate := range candidates {
		if candidate.ID == viewer.ID {
			continue
		}

		commonSkills, matchPercentage := ComputeMatch(viewer.Skills, candidate.Skills, DenominatorMinOfBoth)
		if len(commonSkills) == 0 {
			continue
		}

		matched = append(matched, models.MatchedProfile{
			Profile:         candidate,
			MatchPercentage: matchPercentage,
			CommonSkills:    commonSkills,
			AlreadyInvited:  invited[candidate.ID],
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchPercentage > matched[j].MatchPercentage
	})
	return matched
}

// GetTeamMatches computes the ranked teammate list for a user from the
// full profile pool and the user's sent invitations
func (ms *MatchService) GetTeamMatches(ctx context.Context, userID string) ([]models.MatchedProfile, error) {
	viewer, err := ms.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile for %s: %w", userID, err)
	}

	var candidates []models.Profile
	err = ms.Dynamo.ScanWithFilter(ctx, models.ProfilesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "id") != userID
	}, nil, &candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate profiles: %w", err)
	}

	sentInvitations, err := ms.Invitations.ListInvitations(ctx, InvitationFilter{AsSender: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sent invitations: %w", err)
	}

	return BuildMatches(*viewer, candidates, sentInvitations), nil
}
