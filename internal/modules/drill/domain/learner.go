package domain

// Learner is the profile a session runs for.
type Learner struct {
	Name      string
	PlayCount int
}
