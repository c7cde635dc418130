package models

// MatchedProfile is a profile annotated with match data for the viewer.
// Derived on demand, never persisted.
type MatchedProfile struct {
	Profile
	MatchPercentage int      `json:"matchPercentage"`
	CommonSkills    []string `json:"commonSkills"`
	AlreadyInvited  bool     `json:"alreadyInvited"`
}
