package services

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Sentinel errors returned across service boundaries. Callers branch with
// errors.Is; nothing else escapes the invitation engine.
var (
	ErrAlreadyInvited       = errors.New("an active invitation for this pair already exists")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationNotPending = errors.New("invitation has already been responded to")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrAlreadyEnrolled      = errors.New("user is already enrolled in this hackathon")
	ErrInvalidStatus        = errors.New("invalid invitation status")
)

// isConditionalCheckFailed reports whether err is a DynamoDB
// ConditionalCheckFailedException
func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
