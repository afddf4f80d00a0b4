package http

import (
	"time"

	"campus-day-planner/internal/assignment"
	"campus-day-planner/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title          string    `json:"title"           binding:"required,min=1,max=255"`
	DueAt          time.Time `json:"due_at"          binding:"required"`
	EstimatedHours float64   `json:"estimated_hours" binding:"required,gt=0"`
	Priority       int       `json:"priority"        binding:"omitempty,min=1,max=3"`
}

func (r createReq) toInput() assignment.CreateAssignmentInput {
	return assignment.CreateAssignmentInput{
		Title:          r.Title,
		DueAt:          r.DueAt,
		EstimatedHours: r.EstimatedHours,
		Priority:       r.Priority,
	}
}

// ---

type listReq struct {
	Completed *bool `form:"completed"`
	Limit     int   `form:"limit"`
	Offset    int   `form:"offset"`
}

func (r listReq) toInput() assignment.ListAssignmentsInput {
	return assignment.ListAssignmentsInput{
		Completed: r.Completed,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// ---

type updateReq struct {
	ID             string     `json:"-"` // populated from URI param
	Title          string     `json:"title"           binding:"omitempty,min=1,max=255"`
	DueAt          *time.Time `json:"due_at"`
	EstimatedHours *float64   `json:"estimated_hours"`
	Priority       *int       `json:"priority"`
	Completed      *bool      `json:"completed"`
}

func (r updateReq) toInput() assignment.UpdateAssignmentInput {
	return assignment.UpdateAssignmentInput{
		ID:             r.ID,
		Title:          r.Title,
		DueAt:          r.DueAt,
		EstimatedHours: r.EstimatedHours,
		Priority:       r.Priority,
		Completed:      r.Completed,
	}
}

// --- Response DTOs ---

type assignmentResp struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	DueAt          time.Time `json:"due_at"`
	EstimatedHours float64   `json:"estimated_hours"`
	Priority       int       `json:"priority"`
	Completed      bool      `json:"completed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newAssignmentResp(a model.Assignment) assignmentResp {
	return assignmentResp{
		ID:             a.ID,
		Title:          a.Title,
		DueAt:          a.DueAt,
		EstimatedHours: a.EstimatedHours,
		Priority:       a.Priority,
		Completed:      a.Completed,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type createResp struct {
	Assignment assignmentResp `json:"assignment"`
}

func (h *handler) newCreateResp(out assignment.CreateAssignmentOutput) createResp {
	return createResp{Assignment: newAssignmentResp(out.Assignment)}
}

type listResp struct {
	Assignments []assignmentResp `json:"assignments"`
	Total       int              `json:"total"`
	Limit       int              `json:"limit"`
	Offset      int              `json:"offset"`
}

func (h *handler) newListResp(out assignment.ListAssignmentsOutput) listResp {
	items := make([]assignmentResp, len(out.Assignments))
	for i, a := range out.Assignments {
		items[i] = newAssignmentResp(a)
	}
	return listResp{
		Assignments: items,
		Total:       out.Total,
		Limit:       out.Limit,
		Offset:      out.Offset,
	}
}

type detailResp struct {
	Assignment assignmentResp `json:"assignment"`
}

func (h *handler) newDetailResp(out assignment.DetailAssignmentOutput) detailResp {
	return detailResp{Assignment: newAssignmentResp(out.Assignment)}
}

type updateResp struct {
	Assignment assignmentResp `json:"assignment"`
}

func (h *handler) newUpdateResp(out assignment.UpdateAssignmentOutput) updateResp {
	return updateResp{Assignment: newAssignmentResp(out.Assignment)}
}
