package model

// Prayer is a validated submission payload. It is never persisted locally:
// it exists between validation and dispatch, then is discarded.
type Prayer struct {
	Email string `json:"email"`
	Wish  string `json:"wish"`
	// Nganh is the submitter's field of study, used only by the relay
	// payload and leaderboard grouping. Optional.
	Nganh string `json:"nganh,omitempty"`
}
