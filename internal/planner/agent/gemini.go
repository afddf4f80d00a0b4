package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"campus-day-planner/internal/model"
	"campus-day-planner/internal/planner"
	"campus-day-planner/pkg/gemini"
	pkgLog "campus-day-planner/pkg/log"
)

const decidePrompt = `You are a study planner for a university student. Given today's proposed study blocks and workload, decide how intense the study day should be.

Rules:
- mode is one of OFF, LIGHT, NORMAL, HIGH
- kept_blocks may only reference ids from the proposal
- you may drop blocks or shorten one by giving an earlier "end" (RFC3339), never lengthen or move one
- keep reason to one sentence, addressed to the student

Respond with JSON only:
{"mode": "...", "reason": "...", "kept_blocks": [{"id": "...", "end": "... (optional)"}]}

Context:
%s`

// generator is the slice of the Gemini client the decider needs.
type generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// GeminiDecider asks Gemini to trim the proposal. Any response that is not a
// strictly valid shrink of the proposal is rejected whole; no partial repair
// is attempted.
type GeminiDecider struct {
	gen generator
	l   pkgLog.Logger
}

func NewGeminiDecider(l pkgLog.Logger, gen generator) *GeminiDecider {
	return &GeminiDecider{gen: gen, l: l}
}

// contextPayload is the compact workload summary sent to the model.
type contextPayload struct {
	Date           string         `json:"date"`
	PendingCount   int            `json:"pending_assignments"`
	MostUrgentDue  string         `json:"most_urgent_due,omitempty"`
	CalendarEvents int            `json:"calendar_events"`
	ProposedHours  float64        `json:"proposed_hours"`
	Blocks         []payloadBlock `json:"blocks"`
	Mood           string         `json:"mood,omitempty"`
	Feeling        string         `json:"feeling,omitempty"`
}

type payloadBlock struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// wireDecision is the JSON shape the model must answer with.
type wireDecision struct {
	Mode       string      `json:"mode"`
	Reason     string      `json:"reason"`
	KeptBlocks []wireBlock `json:"kept_blocks"`
}

type wireBlock struct {
	ID  string `json:"id"`
	End string `json:"end,omitempty"`
}

func (d *GeminiDecider) Decide(ctx context.Context, in Input) (Result, error) {
	payload, err := json.Marshal(buildPayload(in))
	if err != nil {
		return Result{}, fmt.Errorf("agent: marshal payload: %w", err)
	}

	resp, err := d.gen.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Role:  "user",
			Parts: []gemini.Part{{Text: fmt.Sprintf(decidePrompt, payload)}},
		}},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      0.2,
			ResponseMIMEType: "application/json",
		},
	})
	if err != nil {
		return Result{}, err
	}

	raw := stripCodeFence(resp.Text())
	var wire wireDecision
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return Result{}, fmt.Errorf("agent: malformed decision %q: %w", truncate(raw, 120), err)
	}

	res, err := applyDecision(wire, in.Proposed)
	if err != nil {
		return Result{}, err
	}

	d.l.Infof(ctx, "agent: model kept %d/%d blocks (mode %s)", len(res.Blocks), len(in.Proposed), res.Decision.Mode)
	return res, nil
}

func buildPayload(in Input) contextPayload {
	p := contextPayload{
		Date:           in.Date,
		CalendarEvents: len(in.Events),
		Mood:           string(in.Mood),
		Feeling:        string(in.Feeling),
	}

	var urgent time.Time
	for _, a := range in.Assignments {
		if a.Completed {
			continue
		}
		p.PendingCount++
		if urgent.IsZero() || a.DueAt.Before(urgent) {
			urgent = a.DueAt
		}
	}
	if !urgent.IsZero() {
		p.MostUrgentDue = urgent.Format(time.RFC3339)
	}

	for _, b := range in.Proposed {
		p.ProposedHours += b.Hours()
		p.Blocks = append(p.Blocks, payloadBlock{
			ID:    b.ID,
			Title: b.Title,
			Start: b.Start.Format(time.RFC3339),
			End:   b.End.Format(time.RFC3339),
		})
	}
	return p
}

// applyDecision validates the wire decision against the proposal and builds
// the surviving block list. Shrink-only: a block's end may move earlier but
// must stay after its start; everything else is a hard reject.
func applyDecision(wire wireDecision, proposed []planner.ProposedBlock) (Result, error) {
	mode := model.DecisionMode(strings.ToUpper(strings.TrimSpace(wire.Mode)))
	if !model.ValidDecisionMode(mode) {
		return Result{}, fmt.Errorf("agent: unknown mode %q", wire.Mode)
	}

	byID := make(map[string]planner.ProposedBlock, len(proposed))
	for _, b := range proposed {
		byID[b.ID] = b
	}

	kept := make([]planner.ProposedBlock, 0, len(wire.KeptBlocks))
	ids := make([]string, 0, len(wire.KeptBlocks))
	seen := make(map[string]bool, len(wire.KeptBlocks))

	for _, wb := range wire.KeptBlocks {
		b, ok := byID[wb.ID]
		if !ok {
			return Result{}, fmt.Errorf("agent: block %q not in proposal", wb.ID)
		}
		if seen[wb.ID] {
			return Result{}, fmt.Errorf("agent: block %q referenced twice", wb.ID)
		}
		seen[wb.ID] = true

		if wb.End != "" {
			end, err := time.Parse(time.RFC3339, wb.End)
			if err != nil {
				return Result{}, fmt.Errorf("agent: bad end time for %q: %w", wb.ID, err)
			}
			if end.After(b.End) || !end.After(b.Start) {
				return Result{}, fmt.Errorf("agent: end for %q outside (start, original end]", wb.ID)
			}
			b.End = end
		}

		kept = append(kept, b)
		ids = append(ids, b.ID)
	}

	reason := strings.TrimSpace(wire.Reason)
	if reason == "" {
		reason = "Adjusted by the planning agent"
	}

	return Result{
		Decision: model.Decision{Mode: mode, KeptBlockIDs: ids, Reason: reason},
		Blocks:   kept,
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence that models add
// despite JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
