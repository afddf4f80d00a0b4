package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-day-planner/internal/calendar"
	"campus-day-planner/internal/model"
	"campus-day-planner/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockGcal struct {
	listResp  []gcalendar.Event
	listErr   error
	created   []gcalendar.CreateEventRequest
	createErr error
	failAfter int // fail the Nth create (1-based); 0 never
	deleted   []string
	deleteErr error
}

func (m *mockGcal) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return m.listResp, m.listErr
}

func (m *mockGcal) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil && (m.failAfter == 0 || len(m.created)+1 >= m.failAfter) {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:        "gcal-" + req.Summary,
		Summary:   req.Summary,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (m *mockGcal) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

type mockInvalidator struct {
	invalidated []string
	today       int
}

func (m *mockInvalidator) Invalidate(ctx context.Context, userID, date string) {
	m.invalidated = append(m.invalidated, userID+"|"+date)
}

func (m *mockInvalidator) InvalidateToday(ctx context.Context, userID string, loc *time.Location) {
	m.today++
}

func sc() model.Scope { return model.Scope{UserID: "u1"} }

func day() time.Time { return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) }

func TestListEventsForDay(t *testing.T) {
	t.Run("maps provider events and drops empty ones", func(t *testing.T) {
		gcal := &mockGcal{listResp: []gcalendar.Event{
			{ID: "e1", Summary: "Lecture", StartTime: day().Add(10 * time.Hour), EndTime: day().Add(12 * time.Hour), Location: "Hall A"},
			{ID: "allday", Summary: "Holiday", StartTime: day(), EndTime: day()},
		}}
		uc := New(&mockLogger{}, gcal, &mockInvalidator{}, "", "UTC", time.UTC)

		events, err := uc.ListEventsForDay(context.Background(), day())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].Kind != model.EventKindCalendar || events[0].Location != "Hall A" {
			t.Errorf("bad mapping: %+v", events[0])
		}
	})

	t.Run("provider failure surfaces as unavailable", func(t *testing.T) {
		gcal := &mockGcal{listErr: errors.New("boom")}
		uc := New(&mockLogger{}, gcal, &mockInvalidator{}, "", "UTC", time.UTC)

		if _, err := uc.ListEventsForDay(context.Background(), day()); !errors.Is(err, calendar.ErrProviderUnavailable) {
			t.Fatalf("expected ErrProviderUnavailable, got %v", err)
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("creates and invalidates the event's day", func(t *testing.T) {
		gcal := &mockGcal{}
		inv := &mockInvalidator{}
		uc := New(&mockLogger{}, gcal, inv, "", "UTC", time.UTC)

		out, err := uc.CreateEvent(context.Background(), sc(), calendar.CreateEventInput{
			Title: "Dentist",
			Start: day().Add(15 * time.Hour),
			End:   day().Add(16 * time.Hour),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Event.ID == "" {
			t.Error("expected the provider id back")
		}
		if len(inv.invalidated) != 1 || inv.invalidated[0] != "u1|2026-03-02" {
			t.Errorf("wrong invalidation: %v", inv.invalidated)
		}
	})

	t.Run("rejects empty or inverted input", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGcal{}, &mockInvalidator{}, "", "UTC", time.UTC)
		bad := []calendar.CreateEventInput{
			{Title: "", Start: day(), End: day().Add(time.Hour)},
			{Title: "X", Start: day().Add(time.Hour), End: day()},
		}
		for _, in := range bad {
			if _, err := uc.CreateEvent(context.Background(), sc(), in); !errors.Is(err, calendar.ErrInvalidEvent) {
				t.Errorf("input %+v: expected ErrInvalidEvent, got %v", in, err)
			}
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("deletes and invalidates today", func(t *testing.T) {
		gcal := &mockGcal{}
		inv := &mockInvalidator{}
		uc := New(&mockLogger{}, gcal, inv, "", "UTC", time.UTC)

		if err := uc.DeleteEvent(context.Background(), sc(), "e1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(gcal.deleted) != 1 || gcal.deleted[0] != "e1" {
			t.Errorf("delete not forwarded: %v", gcal.deleted)
		}
		if inv.today != 1 {
			t.Errorf("expected today invalidated once, got %d", inv.today)
		}
	})

	t.Run("empty id is invalid", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGcal{}, &mockInvalidator{}, "", "UTC", time.UTC)
		if err := uc.DeleteEvent(context.Background(), sc(), ""); !errors.Is(err, calendar.ErrInvalidEvent) {
			t.Fatalf("expected ErrInvalidEvent, got %v", err)
		}
	})
}

func TestSyncStudyBlocks(t *testing.T) {
	study := func(id string, startHour int) model.Event {
		return model.Event{
			ID:    id,
			Title: "Work on Essay",
			Start: day().Add(time.Duration(startHour) * time.Hour),
			End:   day().Add(time.Duration(startHour+1) * time.Hour),
			Kind:  model.EventKindAssignment,
		}
	}
	lecture := model.Event{ID: "lec", Title: "Lecture", Start: day().Add(10 * time.Hour), End: day().Add(12 * time.Hour), Kind: model.EventKindCalendar}

	t.Run("pushes only assignment blocks", func(t *testing.T) {
		gcal := &mockGcal{}
		inv := &mockInvalidator{}
		uc := New(&mockLogger{}, gcal, inv, "", "UTC", time.UTC)

		out, err := uc.SyncStudyBlocks(context.Background(), sc(), calendar.SyncStudyBlocksInput{
			Date:   "2026-03-02",
			Events: []model.Event{lecture, study("assignment-a1-0", 13), study("assignment-a1-1", 14)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Synced != 2 || len(gcal.created) != 2 {
			t.Errorf("expected 2 synced, got %d (%d created)", out.Synced, len(gcal.created))
		}
		if len(inv.invalidated) != 1 {
			t.Errorf("expected one invalidation, got %v", inv.invalidated)
		}
	})

	t.Run("nothing to sync is a no-op", func(t *testing.T) {
		gcal := &mockGcal{}
		inv := &mockInvalidator{}
		uc := New(&mockLogger{}, gcal, inv, "", "UTC", time.UTC)

		out, err := uc.SyncStudyBlocks(context.Background(), sc(), calendar.SyncStudyBlocksInput{
			Date:   "2026-03-02",
			Events: []model.Event{lecture},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Synced != 0 || len(inv.invalidated) != 0 {
			t.Errorf("no-op sync must not invalidate: %+v %v", out, inv.invalidated)
		}
	})

	t.Run("partial failure reports what landed", func(t *testing.T) {
		gcal := &mockGcal{createErr: errors.New("quota"), failAfter: 2}
		inv := &mockInvalidator{}
		uc := New(&mockLogger{}, gcal, inv, "", "UTC", time.UTC)

		out, err := uc.SyncStudyBlocks(context.Background(), sc(), calendar.SyncStudyBlocksInput{
			Date:   "2026-03-02",
			Events: []model.Event{study("assignment-a1-0", 13), study("assignment-a1-1", 14)},
		})
		if !errors.Is(err, calendar.ErrProviderUnavailable) {
			t.Fatalf("expected ErrProviderUnavailable, got %v", err)
		}
		if out.Synced != 1 {
			t.Errorf("expected 1 synced before the failure, got %d", out.Synced)
		}
		if len(inv.invalidated) != 1 {
			t.Error("partially synced blocks still require invalidation")
		}
	})
}
