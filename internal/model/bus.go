package model

import "time"

// BusDirection is the travel direction of a timetable entry.
type BusDirection string

const (
	// DirectionOutbound runs home → campus.
	DirectionOutbound BusDirection = "outbound"
	// DirectionInbound runs campus → home.
	DirectionInbound BusDirection = "inbound"
)

// BusSuggestion is a recommended trip for one direction, with the next
// alternative attached as Backup.
type BusSuggestion struct {
	Direction         BusDirection
	DepartureAt       time.Time
	ArrivalAt         time.Time
	Reason            string
	IsLateNight       bool
	MinutesUntilLeave int
	Backup            *BusSuggestion
}
