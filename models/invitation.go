package models

// TeamInvitation represents a team invitation in DynamoDB
type TeamInvitation struct {
	PairKey      string `dynamodbav:"pairKey" json:"-"`                                   // PK: "<fromUserId>#<toUserId>" (enforces one record per ordered pair)
	InvitationID string `dynamodbav:"invitationId" json:"invitationId"`                   // Unique invitation ID (GSI: InvitationIdIndex)
	FromUserID   string `dynamodbav:"fromUserId" json:"fromUserId"`                       // Sender (GSI: FromUserIndex, SK createdAt)
	ToUserID     string `dynamodbav:"toUserId" json:"toUserId"`                           // Recipient (GSI: ToUserIndex, SK createdAt)
	HackathonID  string `dynamodbav:"hackathonId,omitempty" json:"hackathonId,omitempty"` // Optional hackathon context
	Message      string `dynamodbav:"message,omitempty" json:"message,omitempty"`         // Optional free text
	Status       string `dynamodbav:"status" json:"status"`                               // "pending", "accepted", "declined"
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt    string `dynamodbav:"updatedAt" json:"updatedAt"`

	// Enrichment, populated from the Profiles table; never persisted
	FromProfile *Profile `dynamodbav:"-" json:"fromProfile,omitempty"`
	ToProfile   *Profile `dynamodbav:"-" json:"toProfile,omitempty"`
}

// TableName returns the DynamoDB table name for the TeamInvitation model
func (TeamInvitation) TableName() string {
	return "TeamInvitations"
}

// GSI names on the TeamInvitations table
const (
	InvitationToUserIndex = "ToUserIndex"
	InvitationFromIndex   = "FromUserIndex"
	InvitationIDIndex     = "InvitationIdIndex"
)

// InvitationPairKey builds the partition key for an ordered (from, to) pair
func InvitationPairKey(fromUserID, toUserID string) string {
	return fromUserID + "#" + toUserID
}
