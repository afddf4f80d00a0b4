package transit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campus-day-planner/internal/model"
	pkgLog "campus-day-planner/pkg/log"
)

// Config tunes the suggestion engine.
type Config struct {
	ArrivalBufferMinutes   int // arrive at least this long before the first campus event
	DepartureBufferMinutes int // leave no earlier than this after the last campus event
	LateNightHour          int // departures at or after this hour are flagged
}

// DefaultConfig returns no arrival or departure buffer and a 22:00
// late-night threshold. Arrival at or before the first commitment counts;
// users who want slack set timetable.arrival_buffer_minutes.
func DefaultConfig() Config {
	return Config{
		ArrivalBufferMinutes:   0,
		DepartureBufferMinutes: 0,
		LateNightHour:          22,
	}
}

type Engine struct {
	tt  Timetable
	cfg Config
	l   pkgLog.Logger
}

func NewEngine(l pkgLog.Logger, tt Timetable, cfg Config) *Engine {
	if cfg.LateNightHour == 0 {
		cfg = DefaultConfig()
	}
	return &Engine{tt: tt, cfg: cfg, l: l}
}

// SuggestForDay picks bus trips around the day's campus events: the latest
// outbound bus that still arrives by the first campus event (minus any
// configured buffer), and the earliest inbound bus after the last one ends.
// Days without campus events, and weekends (no service), yield nil.
//
// now only affects the MinutesUntilLeave countdowns; the trip choice is a
// pure function of the timetable and the events.
func (e *Engine) SuggestForDay(ctx context.Context, date time.Time, now time.Time, events []model.Event) *model.BusSuggestions {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		e.l.Debugf(ctx, "transit: no service on %s", wd)
		return nil
	}

	firstStart, lastEnd, found := campusSpan(events)
	if !found {
		e.l.Debugf(ctx, "transit: no campus events on %s", date.Format("2006-01-02"))
		return nil
	}

	out := &model.BusSuggestions{
		Outbound: e.outbound(firstStart, now, date),
		Inbound:  e.inbound(lastEnd, now, date),
	}
	if out.Outbound == nil && out.Inbound == nil {
		return nil
	}
	return out
}

// outbound returns the latest trip arriving at least the arrival buffer before
// firstStart, with the next-latest trip attached as backup.
func (e *Engine) outbound(firstStart, now, date time.Time) *model.BusSuggestion {
	deadline := firstStart.Add(-time.Duration(e.cfg.ArrivalBufferMinutes) * time.Minute)

	trips := resolve(e.tt.Outbound, date)
	best := -1
	for i, tr := range trips {
		if !tr.Arrive.After(deadline) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	s := e.suggestion(model.DirectionOutbound, trips[best])
	lead := int(firstStart.Sub(trips[best].Arrive).Minutes())
	s.Reason = fmt.Sprintf("Arrives %s, %d min before your first campus event at %s",
		trips[best].Arrive.Format("15:04"), lead, firstStart.Format("15:04"))
	if until := int(trips[best].Depart.Sub(now).Minutes()); until > 0 {
		s.MinutesUntilLeave = until
	}
	if best > 0 {
		backup := e.suggestion(model.DirectionOutbound, trips[best-1])
		backup.Reason = fmt.Sprintf("Earlier option, arrives %s", trips[best-1].Arrive.Format("15:04"))
		s.Backup = &backup
	}
	return &s
}

// inbound returns the earliest trip departing at or after lastEnd plus the
// departure buffer, with the next one attached as backup.
func (e *Engine) inbound(lastEnd, now, date time.Time) *model.BusSuggestion {
	earliest := lastEnd.Add(time.Duration(e.cfg.DepartureBufferMinutes) * time.Minute)

	trips := resolve(e.tt.Inbound, date)
	for i, tr := range trips {
		if tr.Depart.Before(earliest) {
			continue
		}
		s := e.suggestion(model.DirectionInbound, tr)
		s.Reason = fmt.Sprintf("First bus home after your last campus event ends at %s", lastEnd.Format("15:04"))
		if until := int(tr.Depart.Sub(now).Minutes()); until > 0 {
			s.MinutesUntilLeave = until
		}
		if i+1 < len(trips) {
			backup := e.suggestion(model.DirectionInbound, trips[i+1])
			backup.Reason = fmt.Sprintf("Next departure at %s", trips[i+1].Depart.Format("15:04"))
			s.Backup = &backup
		}
		return &s
	}
	return nil
}

func (e *Engine) suggestion(dir model.BusDirection, tr resolvedTrip) model.BusSuggestion {
	return model.BusSuggestion{
		Direction:   dir,
		DepartureAt: tr.Depart,
		ArrivalAt:   tr.Arrive,
		IsLateNight: tr.Depart.Hour() >= e.cfg.LateNightHour,
	}
}

// campusSpan finds the first start and last end among on-campus calendar
// events. Commute and study blocks never count.
func campusSpan(events []model.Event) (time.Time, time.Time, bool) {
	var first, last time.Time
	found := false
	for _, ev := range events {
		if ev.Kind != model.EventKindCalendar || !onCampus(ev) {
			continue
		}
		if !found || ev.Start.Before(first) {
			first = ev.Start
		}
		if !found || ev.End.After(last) {
			last = ev.End
		}
		found = true
	}
	return first, last, found
}

// remoteLocationMarkers flag a location as online rather than physical.
var remoteLocationMarkers = []string{"zoom", "meet.google", "teams.microsoft", "http://", "https://", "online", "virtual", "remote"}

// remoteTitleMarkers flag an event as remote by its title alone.
var remoteTitleMarkers = []string{"online", "virtual", "zoom", "remote"}

// campusMarkers are substrings that name a campus place in an event title.
var campusMarkers = []string{"campus", "university", "hall", "building", "lab", "library", "lecture", "room", "auditorium"}

// onCampus decides whether an event requires being physically on campus.
// Remote indicators in the location or title rule the event out. Any other
// non-empty location counts as a physical commitment; events without a
// location count only when the title names a campus place.
func onCampus(ev model.Event) bool {
	loc := strings.ToLower(ev.Location)
	title := strings.ToLower(ev.Title)

	for _, m := range remoteLocationMarkers {
		if strings.Contains(loc, m) {
			return false
		}
	}
	for _, m := range remoteTitleMarkers {
		if strings.Contains(title, m) {
			return false
		}
	}

	if strings.TrimSpace(loc) != "" {
		return true
	}
	for _, m := range campusMarkers {
		if strings.Contains(title, m) {
			return true
		}
	}
	return false
}
