package model

import "time"

// DecisionMode is how much auto-scheduled study time goes into a day.
type DecisionMode string

const (
	ModeOff    DecisionMode = "OFF"
	ModeLight  DecisionMode = "LIGHT"
	ModeNormal DecisionMode = "NORMAL"
	ModeHigh   DecisionMode = "HIGH"
)

// ValidDecisionMode reports whether m is one of the four modes.
func ValidDecisionMode(m DecisionMode) bool {
	switch m {
	case ModeOff, ModeLight, ModeNormal, ModeHigh:
		return true
	}
	return false
}

// Decision is the planning agent's (or the deterministic fallback's) verdict
// on which proposed study blocks to keep. Blocks is always a subset of the
// scheduler's proposal.
type Decision struct {
	Mode         DecisionMode
	KeptBlockIDs []string
	Reason       string
	FromFallback bool
}

// BusSuggestions pairs the two directions of a day's commute.
type BusSuggestions struct {
	Outbound *BusSuggestion
	Inbound  *BusSuggestion
}

// DayPlan is the cached unit produced by the orchestrator for one
// (user, date) pair.
type DayPlan struct {
	UserID         string
	Date           string // YYYY-MM-DD in the planner's timezone
	Events         []Event
	FreeBlocks     []FreeBlock
	Decision       Decision
	BusSuggestions *BusSuggestions
	Summary        string
	GeneratedAt    time.Time
}
