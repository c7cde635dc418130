package models

// Profile defines the structure for user profiles
type Profile struct {
	ID        string   `dynamodbav:"id" json:"id"`
	Name      string   `dynamodbav:"name" json:"name"`
	Email     string   `dynamodbav:"email" json:"email"`
	Education string   `dynamodbav:"education,omitempty" json:"education,omitempty"`
	Skills    []string `dynamodbav:"skills,omitempty" json:"skills,omitempty"`
	AvatarURL string   `dynamodbav:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProfilesTable is the DynamoDB table name for user profiles
const ProfilesTable = "Profiles"
