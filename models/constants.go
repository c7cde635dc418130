package models

// ✅ Invitation Statuses
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusDeclined = "declined"
)

// ✅ Hackathon Statuses
const (
	HackathonStatusUpcoming  = "Upcoming"
	HackathonStatusOngoing   = "Ongoing"
	HackathonStatusCompleted = "Completed"
)

// EducationLevels lists the education values accepted at profile intake
var EducationLevels = []string{
	"BTech",
	"MTech",
	"BCA",
	"MCA",
	"BSc",
	"MSc",
	"Others",
}

// SkillOptions lists the curated skill vocabulary shown in the app.
// Skills are stored free-form; this list drives intake suggestions only.
var SkillOptions = []string{
	"UI/UX",
	"Frontend",
	"Backend",
	"Full Stack",
	"Web Development",
	"Cloud Computing",
	"Blockchain",
	"Artificial Intelligence",
	"Machine Learning",
}
