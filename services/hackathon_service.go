package services

import (
	"context"
	"fmt"
	"time"

	"hackmate_server/models"
	"hackmate_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// maxRecommendations caps the dashboard recommendation list
const maxRecommendations = 6

type HackathonService struct {
	Dynamo   *DynamoService
	Profiles *ProfileService
}

// ListHackathons returns hackathons, optionally restricted to a status set
func (hs *HackathonService) ListHackathons(ctx context.Context, statuses []string) ([]models.Hackathon, error) {
	statusSet := make(map[string]struct{}, len(statuses))
	for _, status := range statuses {
		statusSet[status] = struct{}{}
	}

	var hackathons []models.Hackathon
	err := hs.Dynamo.ScanWithFilter(ctx, models.HackathonsTable, func(item map[string]types.AttributeValue) bool {
		if len(statusSet) == 0 {
			return true
		}
		_, ok := statusSet[utils.ExtractString(item, "status")]
		return ok
	}, nil, &hackathons)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hackathons: %w", err)
	}
	return hackathons, nil
}

// Enroll records a user joining a hackathon. Enrolling twice in the same
// hackathon surfaces as ErrAlreadyEnrolled.
func (hs *HackathonService) Enroll(ctx context.Context, userID, hackathonID string) (*models.Enrollment, error) {
	enrollment := models.Enrollment{
		UserID:       userID,
		HackathonID:  hackathonID,
		EnrollmentID: uuid.NewString(),
		EnrolledAt:   time.Now().UTC().Format(time.RFC3339),
	}

	err := hs.Dynamo.PutItemWithCondition(ctx, models.EnrollmentsTable, enrollment, "attribute_not_exists(userId)", nil, nil)
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}
	return &enrollment, nil
}

// ListEnrolledHackathons returns the hackathons a user has joined
func (hs *HackathonService) ListEnrolledHackathons(ctx context.Context, userID string) ([]models.Hackathon, error) {
	items, err := hs.Dynamo.QueryItems(ctx, models.EnrollmentsTable, "userId = :userId", map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrollments: %w", err)
	}

	var enrollments []models.Enrollment
	if err := attributevalue.UnmarshalListOfMaps(items, &enrollments); err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return []models.Hackathon{}, nil
	}

	var keys []map[string]types.AttributeValue
	for _, enrollment := range enrollments {
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: enrollment.HackathonID},
		})
	}

	hackathonItems, err := hs.Dynamo.BatchGetItems(ctx, models.HackathonsTable, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrolled hackathons: %w", err)
	}

	var hackathons []models.Hackathon
	if err := attributevalue.UnmarshalListOfMaps(hackathonItems, &hackathons); err != nil {
		return nil, err
	}
	return hackathons, nil
}

// GetRecommendedHackathons returns upcoming or ongoing hackathons sharing
// at least one skill with the user, excluding ones already joined
func (hs *HackathonService) GetRecommendedHackathons(ctx context.Context, userID string) ([]models.RecommendedHackathon, error) {
	profile, err := hs.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	hackathons, err := hs.ListHackathons(ctx, []string{models.HackathonStatusUpcoming, models.HackathonStatusOngoing})
	if err != nil {
		return nil, err
	}

	enrolled, err := hs.ListEnrolledHackathons(ctx, userID)
	if err != nil {
		return nil, err
	}
	enrolledIDs := make(map[string]struct{}, len(enrolled))
	for _, hackathon := range enrolled {
		enrolledIDs[hackathon.ID] = struct{}{}
	}

	return recommendHackathons(*profile, hackathons, enrolledIDs), nil
}

// recommendHackathons keeps hackathons with at least one matching skill,
// annotated with the overlap against the hackathon's full requirement
// list, in input order, capped at maxRecommendations
func recommendHackathons(profile models.Profile, hackathons []models.Hackathon, enrolledIDs map[string]struct{}) []models.RecommendedHackathon {
	recommended := []models.RecommendedHackathon{}
	for _, hackathon := range hackathons {
		if _, ok := enrolledIDs[hackathon.ID]; ok {
			continue
		}

		matchingSkills, matchPercentage := ComputeMatch(profile.Skills, hackathon.SkillsRequired, DenominatorCandidateTotal)
		if len(matchingSkills) == 0 {
			continue
		}

		recommended = append(recommended, models.RecommendedHackathon{
			Hackathon:       hackathon,
			MatchPercentage: matchPercentage,
			MatchingSkills:  matchingSkills,
		})
		if len(recommended) == maxRecommendations {
			break
		}
	}
	return recommended
}
