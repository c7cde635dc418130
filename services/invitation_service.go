package services

import (
	"context"
	"time"

	"hackmate_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// InvitationFilter selects invitations by the role the user plays
type InvitationFilter struct {
	AsSender    string
	AsRecipient string
}

// InvitationRepository is the persistence surface the invitation engine
// depends on. Implemented by InvitationService against DynamoDB; tests
// substitute an in-memory fake.
type InvitationRepository interface {
	ListInvitations(ctx context.Context, filter InvitationFilter) ([]models.TeamInvitation, error)
	ListProfilesByIDs(ctx context.Context, ids []string) (map[string]models.Profile, error)
	CreateInvitation(ctx context.Context, fromUserID, toUserID, hackathonID, message string) (*models.TeamInvitation, error)
	UpdateInvitationStatus(ctx context.Context, invitationID, status string) error
	SubscribeToChanges(userID string, onChange func()) func()
}

// InvitationService handles operations on the TeamInvitations table
type InvitationService struct {
	Dynamo *DynamoService
	Feed   *ChangeFeed

	// AllowReinviteAfterDecline relaxes the pair-uniqueness constraint so a
	// declined invitation no longer blocks a fresh one. Off by default to
	// match the original store schema.
	AllowReinviteAfterDecline bool
}

// ListInvitations returns invitations where the user plays the given role,
// newest first
func (s *InvitationService) ListInvitations(ctx context.Context, filter InvitationFilter) ([]models.TeamInvitation, error) {
	indexName := models.InvitationToUserIndex
	keyAttribute := "toUserId"
	userID := filter.AsRecipient
	if filter.AsSender != "" {
		indexName = models.InvitationFromIndex
		keyAttribute = "fromUserId"
		userID = filter.AsSender
	}

	items, err := s.Dynamo.QueryItemsWithIndex(
		ctx,
		models.TeamInvitation{}.TableName(),
		indexName,
		keyAttribute+" = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil,
		true, // newest first
	)
	if err != nil {
		return nil, err
	}

	var invitations []models.TeamInvitation
	if err := attributevalue.UnmarshalListOfMaps(items, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

// ListProfilesByIDs fetches profiles for an id set in one batched read
func (s *InvitationService) ListProfilesByIDs(ctx context.Context, ids []string) (map[string]models.Profile, error) {
	profiles := make(map[string]models.Profile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	var keys []map[string]types.AttributeValue
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}

	items, err := s.Dynamo.BatchGetItems(ctx, models.ProfilesTable, keys)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		var profile models.Profile
		if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
			return nil, err
		}
		profiles[profile.ID] = profile
	}
	return profiles, nil
}

// CreateInvitation inserts a pending invitation. The conditional put on the
// (from, to) pair key is the uniqueness constraint; a failed condition maps
// to ErrAlreadyInvited and nothing else does.
func (s *InvitationService) CreateInvitation(ctx context.Context, fromUserID, toUserID, hackathonID, message string) (*models.TeamInvitation, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	invitation := models.TeamInvitation{
		PairKey:      models.InvitationPairKey(fromUserID, toUserID),
		InvitationID: uuid.NewString(),
		FromUserID:   fromUserID,
		ToUserID:     toUserID,
		HackathonID:  hackathonID,
		Message:      message,
		Status:       models.InvitationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	conditionExpression := "attribute_not_exists(pairKey)"
	var expressionValues map[string]types.AttributeValue
	var expressionNames map[string]string
	if s.AllowReinviteAfterDecline {
		conditionExpression = "attribute_not_exists(pairKey) OR #s = :declined"
		expressionNames = map[string]string{"#s": "status"}
		expressionValues = map[string]types.AttributeValue{
			":declined": &types.AttributeValueMemberS{Value: models.InvitationStatusDeclined},
		}
	}

	err := s.Dynamo.PutItemWithCondition(
		ctx,
		invitation.TableName(),
		invitation,
		conditionExpression,
		expressionValues,
		expressionNames,
	)
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, ErrAlreadyInvited
		}
		return nil, err
	}

	if s.Feed != nil {
		s.Feed.Publish(fromUserID, toUserID)
	}
	return &invitation, nil
}

// UpdateInvitationStatus moves a pending invitation to accepted or
// declined. The update is guarded on the current status still being
// pending, so two racing responses cannot both win.
func (s *InvitationService) UpdateInvitationStatus(ctx context.Context, invitationID, status string) error {
	if status != models.InvitationStatusAccepted && status != models.InvitationStatusDeclined {
		return ErrInvalidStatus
	}

	invitation, err := s.getByInvitationID(ctx, invitationID)
	if err != nil {
		return err
	}

	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: invitation.PairKey},
	}
	_, err = s.Dynamo.UpdateItemWithCondition(
		ctx,
		invitation.TableName(),
		"SET #s = :status, updatedAt = :updatedAt",
		key,
		map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: status},
			":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
			":pending":   &types.AttributeValueMemberS{Value: models.InvitationStatusPending},
		},
		map[string]string{"#s": "status"},
		"#s = :pending",
	)
	if err != nil {
		if isConditionalCheckFailed(err) {
			return ErrInvitationNotPending
		}
		return err
	}

	if s.Feed != nil {
		s.Feed.Publish(invitation.FromUserID, invitation.ToUserID)
	}
	return nil
}

// SubscribeToChanges registers for change signals touching the user as
// sender or recipient
func (s *InvitationService) SubscribeToChanges(userID string, onChange func()) func() {
	return s.Feed.Subscribe(userID, onChange)
}

func (s *InvitationService) getByInvitationID(ctx context.Context, invitationID string) (*models.TeamInvitation, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(
		ctx,
		models.TeamInvitation{}.TableName(),
		models.InvitationIDIndex,
		"invitationId = :invitationId",
		map[string]types.AttributeValue{
			":invitationId": &types.AttributeValueMemberS{Value: invitationID},
		},
		nil,
		false,
	)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrInvitationNotFound
	}

	var invitation models.TeamInvitation
	if err := attributevalue.UnmarshalMap(items[0], &invitation); err != nil {
		return nil, err
	}
	return &invitation, nil
}

var _ InvitationRepository = (*InvitationService)(nil)
