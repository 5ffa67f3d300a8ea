package models

// LearningResource is a read-only catalog entry pointing at external material.
type LearningResource struct {
	ID          int64
	Title       string
	Description *string
	URL         string
}

// Question is a read-only quiz item with an optional follow-up.
type Question struct {
	ID             int64
	Question       string
	Answer         bool
	Info           string
	Followup       string
	FollowupAnswer bool
}
