package agent_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	"campus-day-planner/internal/planner/agent"
	"campus-day-planner/pkg/gemini"
)

type stubGenerator struct {
	text string
	err  error
	last gemini.GenerateRequest
}

func (s *stubGenerator) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &gemini.GenerateResponse{Candidates: []gemini.Candidate{{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: s.text}}},
	}}}, nil
}

func geminiInput() agent.Input {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return agent.Input{
		Date: "2026-03-02",
		Mood: model.MoodGrind,
		Proposed: []planner.ProposedBlock{
			{ID: "assignment-a1-0", AssignmentID: "a1", Title: "Work on Essay", Start: start, End: start.Add(time.Hour)},
			{ID: "assignment-a1-1", AssignmentID: "a1", Title: "Work on Essay", Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)},
		},
		Assignments: []model.Assignment{
			{ID: "a1", Title: "Essay", DueAt: start.Add(30 * time.Hour), Priority: model.PriorityHigh},
		},
	}
}

func TestGeminiDecider_Decide(t *testing.T) {
	t.Run("valid response is applied", func(t *testing.T) {
		gen := &stubGenerator{text: `{
			"mode": "light",
			"reason": "One block is enough today",
			"kept_blocks": [{"id": "assignment-a1-0"}]
		}`}
		d := agent.NewGeminiDecider(noopLogger{}, gen)

		res, err := d.Decide(context.Background(), geminiInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Decision.Mode != model.ModeLight {
			t.Errorf("expected LIGHT, got %s", res.Decision.Mode)
		}
		if len(res.Blocks) != 1 || res.Blocks[0].ID != "assignment-a1-0" {
			t.Errorf("unexpected kept blocks: %+v", res.Blocks)
		}
		if res.Decision.FromFallback {
			t.Error("a model decision must not be marked as fallback")
		}
		if gen.last.GenerationConfig == nil || gen.last.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Error("request must ask for JSON mode")
		}
	})

	t.Run("code-fenced response is accepted", func(t *testing.T) {
		gen := &stubGenerator{text: "```json\n{\"mode\":\"HIGH\",\"reason\":\"Push through\",\"kept_blocks\":[{\"id\":\"assignment-a1-0\"},{\"id\":\"assignment-a1-1\"}]}\n```"}
		d := agent.NewGeminiDecider(noopLogger{}, gen)

		res, err := d.Decide(context.Background(), geminiInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Blocks) != 2 {
			t.Errorf("expected both blocks kept, got %d", len(res.Blocks))
		}
	})

	t.Run("shortened block keeps its start", func(t *testing.T) {
		gen := &stubGenerator{text: `{
			"mode": "NORMAL",
			"reason": "Half sessions",
			"kept_blocks": [{"id": "assignment-a1-0", "end": "2026-03-02T09:30:00Z"}]
		}`}
		d := agent.NewGeminiDecider(noopLogger{}, gen)

		res, err := d.Decide(context.Background(), geminiInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := res.Blocks[0]
		if !b.Start.Equal(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)) {
			t.Errorf("start moved: %v", b.Start)
		}
		if b.Duration() != 30*time.Minute {
			t.Errorf("expected a 30m block, got %v", b.Duration())
		}
	})

	invalid := []struct {
		name string
		text string
	}{
		{"unknown mode", `{"mode":"TURBO","kept_blocks":[]}`},
		{"invented block id", `{"mode":"NORMAL","kept_blocks":[{"id":"assignment-zz-9"}]}`},
		{"duplicate block id", `{"mode":"NORMAL","kept_blocks":[{"id":"assignment-a1-0"},{"id":"assignment-a1-0"}]}`},
		{"lengthened block", `{"mode":"NORMAL","kept_blocks":[{"id":"assignment-a1-0","end":"2026-03-02T11:30:00Z"}]}`},
		{"end before start", `{"mode":"NORMAL","kept_blocks":[{"id":"assignment-a1-0","end":"2026-03-02T08:30:00Z"}]}`},
		{"unparseable end", `{"mode":"NORMAL","kept_blocks":[{"id":"assignment-a1-0","end":"tomorrow"}]}`},
		{"not json at all", `sure, here is your plan!`},
	}
	for _, tc := range invalid {
		t.Run(tc.name+" is rejected", func(t *testing.T) {
			d := agent.NewGeminiDecider(noopLogger{}, &stubGenerator{text: tc.text})
			if _, err := d.Decide(context.Background(), geminiInput()); err == nil {
				t.Fatal("expected an error")
			}
		})
	}

	t.Run("transport error propagates", func(t *testing.T) {
		d := agent.NewGeminiDecider(noopLogger{}, &stubGenerator{err: errors.New("boom")})
		if _, err := d.Decide(context.Background(), geminiInput()); err == nil {
			t.Fatal("expected an error")
		}
	})
}
