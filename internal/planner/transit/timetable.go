// Package transit suggests campus bus trips around a day's on-campus events.
package transit

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Trip is one scheduled bus run, times as zoneless wall-clock "HH:MM" strings
// anchored to the plan date at suggestion time.
type Trip struct {
	Depart string `yaml:"depart"`
	Arrive string `yaml:"arrive"`
}

// Timetable is the weekday bus schedule for one route. The service does not
// run on weekends.
type Timetable struct {
	Route    string `yaml:"route"`
	Outbound []Trip `yaml:"outbound"` // home → campus
	Inbound  []Trip `yaml:"inbound"`  // campus → home
}

// DefaultTimetable is the bundled route 52 schedule, used when no timetable
// file is configured.
func DefaultTimetable() Timetable {
	return Timetable{
		Route: "52 Campus Express",
		Outbound: []Trip{
			{Depart: "07:10", Arrive: "07:35"},
			{Depart: "07:50", Arrive: "08:15"},
			{Depart: "08:30", Arrive: "08:55"},
			{Depart: "09:05", Arrive: "09:30"},
			{Depart: "09:25", Arrive: "09:50"},
			{Depart: "10:05", Arrive: "10:30"},
			{Depart: "11:05", Arrive: "11:30"},
			{Depart: "12:05", Arrive: "12:30"},
			{Depart: "13:05", Arrive: "13:30"},
			{Depart: "14:05", Arrive: "14:30"},
		},
		Inbound: []Trip{
			{Depart: "12:40", Arrive: "13:05"},
			{Depart: "14:40", Arrive: "15:05"},
			{Depart: "15:40", Arrive: "16:05"},
			{Depart: "16:40", Arrive: "17:05"},
			{Depart: "17:40", Arrive: "18:05"},
			{Depart: "18:40", Arrive: "19:05"},
			{Depart: "20:10", Arrive: "20:35"},
			{Depart: "21:40", Arrive: "22:05"},
			{Depart: "22:30", Arrive: "22:55"},
		},
	}
}

// LoadTimetable reads a YAML timetable file. An empty path returns the
// bundled default.
func LoadTimetable(path string) (Timetable, error) {
	if path == "" {
		return DefaultTimetable(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Timetable{}, fmt.Errorf("read timetable %s: %w", path, err)
	}

	var tt Timetable
	if err := yaml.Unmarshal(raw, &tt); err != nil {
		return Timetable{}, fmt.Errorf("parse timetable %s: %w", path, err)
	}
	if err := tt.Validate(); err != nil {
		return Timetable{}, fmt.Errorf("timetable %s: %w", path, err)
	}
	return tt, nil
}

// Validate checks every trip parses and departs before it arrives.
func (t Timetable) Validate() error {
	for _, dir := range [][]Trip{t.Outbound, t.Inbound} {
		for _, trip := range dir {
			dep, err := parseClock(trip.Depart)
			if err != nil {
				return err
			}
			arr, err := parseClock(trip.Arrive)
			if err != nil {
				return err
			}
			if arr <= dep {
				return fmt.Errorf("trip %s-%s arrives before it departs", trip.Depart, trip.Arrive)
			}
		}
	}
	return nil
}

// resolvedTrip is a Trip anchored to a concrete date.
type resolvedTrip struct {
	Depart time.Time
	Arrive time.Time
}

// resolve anchors trips to the given date, sorted by departure.
func resolve(trips []Trip, date time.Time) []resolvedTrip {
	out := make([]resolvedTrip, 0, len(trips))
	for _, tr := range trips {
		dep, errD := parseClock(tr.Depart)
		arr, errA := parseClock(tr.Arrive)
		if errD != nil || errA != nil {
			continue
		}
		out = append(out, resolvedTrip{
			Depart: atMinutes(date, dep),
			Arrive: atMinutes(date, arr),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depart.Before(out[j].Depart) })
	return out
}

// parseClock converts "HH:MM" into minutes past midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("bad clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad clock value %q", s)
	}
	return h*60 + m, nil
}

func atMinutes(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
