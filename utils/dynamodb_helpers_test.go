package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractString(t *testing.T) {
	item := map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: "alice"},
		"skills": &types.AttributeValueMemberL{},
	}

	assert.Equal(t, "alice", ExtractString(item, "id"))
	assert.Equal(t, "", ExtractString(item, "missing"))
	assert.Equal(t, "", ExtractString(item, "skills"), "non-string attributes yield empty")
}

func TestExtractStringSlice(t *testing.T) {
	item := map[string]types.AttributeValue{
		"skills": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberS{Value: "Backend"},
			&types.AttributeValueMemberN{Value: "42"},
			&types.AttributeValueMemberS{Value: "UI/UX"},
		}},
		"name": &types.AttributeValueMemberS{Value: "alice"},
	}

	assert.Equal(t, []string{"Backend", "UI/UX"}, ExtractStringSlice(item, "skills"))
	assert.Nil(t, ExtractStringSlice(item, "missing"))
	assert.Nil(t, ExtractStringSlice(item, "name"), "non-list attributes yield nil")
}
