package services

import (
	"context"
	"fmt"
	"time"

	"hackmate_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ProfileService struct {
	Dynamo *DynamoService
}

// AddProfile stores a new user profile, created at account registration
func (ps *ProfileService) AddProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := ps.Dynamo.PutItem(ctx, models.ProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile retrieves a user profile by ID
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile applies field updates to an existing profile. Only the
// owner-editable fields are accepted: name, education, skills, avatarUrl.
func (ps *ProfileService) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: userID},
	}

	allowed := map[string]bool{"name": true, "education": true, "skills": true, "avatarUrl": true}

	updateExpression := "SET updatedAt = :updatedAt"
	expressionAttributeValues := map[string]types.AttributeValue{
		":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	expressionAttributeNames := map[string]string{}

	for field, value := range updates {
		if !allowed[field] {
			continue
		}

		attrValue, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update for '%s': %w", field, err)
		}

		placeholder := ":" + field
		attributeName := "#" + field
		updateExpression += ", " + attributeName + " = " + placeholder
		expressionAttributeValues[placeholder] = attrValue
		expressionAttributeNames[attributeName] = field
	}

	if len(expressionAttributeNames) == 0 {
		expressionAttributeNames = nil
	}

	updatedItem, err := ps.Dynamo.UpdateItemWithCondition(ctx, models.ProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames, "")
	if err != nil {
		return nil, err
	}

	var updatedProfile models.Profile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &updatedProfile, nil
}

// DeleteProfile removes a user profile
func (ps *ProfileService) DeleteProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: userID},
	}
	return ps.Dynamo.DeleteItem(ctx, models.ProfilesTable, key)
}
