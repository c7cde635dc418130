package models

// Hackathon defines the structure for hackathon listings
type Hackathon struct {
	ID             string   `dynamodbav:"id" json:"id"`
	Title          string   `dynamodbav:"title" json:"title"`
	Description    string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	SkillsRequired []string `dynamodbav:"skillsRequired,omitempty" json:"skillsRequired,omitempty"`
	StartDate      string   `dynamodbav:"startDate" json:"startDate"`
	EndDate        string   `dynamodbav:"endDate" json:"endDate"`
	Mode           string   `dynamodbav:"mode,omitempty" json:"mode,omitempty"` // "Online", "Offline", "Hybrid"
	Status         string   `dynamodbav:"status" json:"status"`                 // "Upcoming", "Ongoing", "Completed"
	Location       string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Organizer      string   `dynamodbav:"organizer,omitempty" json:"organizer,omitempty"`
	PrizePool      string   `dynamodbav:"prizePool,omitempty" json:"prizePool,omitempty"`
	MaxTeamSize    int      `dynamodbav:"maxTeamSize,omitempty" json:"maxTeamSize,omitempty"`
	ImageURL       string   `dynamodbav:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt      string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// HackathonsTable is the DynamoDB table name for hackathons
const HackathonsTable = "Hackathons"

// RecommendedHackathon is a hackathon annotated with the viewer's skill
// overlap against the hackathon's full requirement list
type RecommendedHackathon struct {
	Hackathon
	MatchPercentage int      `json:"matchPercentage"`
	MatchingSkills  []string `json:"matchingSkills"`
}
