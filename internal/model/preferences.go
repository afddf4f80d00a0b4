package model

// Mood is the user's energy/motivation level for a day.
type Mood string

const (
	MoodChill  Mood = "chill"  // low intensity, prefer a lighter schedule
	MoodNormal Mood = "normal" // balanced
	MoodGrind  Mood = "grind"  // can handle more work
)

// Feeling is the user's stress/capacity level for a day.
type Feeling string

const (
	FeelingOverwhelmed Feeling = "overwhelmed"
	FeelingOkay        Feeling = "okay"
	FeelingOnTop       Feeling = "on_top"
)

// Preferences is an optional per-day soft bias consumed by the planning
// agent. A missing record means neutral bias.
type Preferences struct {
	UserID  string
	Date    string // YYYY-MM-DD
	Mood    Mood
	Feeling Feeling
}

// ValidMood reports whether m is one of the known mood values.
func ValidMood(m Mood) bool {
	return m == MoodChill || m == MoodNormal || m == MoodGrind
}

// ValidFeeling reports whether f is one of the known feeling values.
func ValidFeeling(f Feeling) bool {
	return f == FeelingOverwhelmed || f == FeelingOkay || f == FeelingOnTop
}
