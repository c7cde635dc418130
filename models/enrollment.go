package models

// Enrollment links a user to a hackathon they joined
type Enrollment struct {
	UserID       string `dynamodbav:"userId" json:"userId"`           // PK
	HackathonID  string `dynamodbav:"hackathonId" json:"hackathonId"` // SK
	EnrollmentID string `dynamodbav:"enrollmentId" json:"enrollmentId"`
	EnrolledAt   string `dynamodbav:"enrolledAt" json:"enrolledAt"`
}

// EnrollmentsTable is the DynamoDB table name for enrollments
const EnrollmentsTable = "Enrollments"
