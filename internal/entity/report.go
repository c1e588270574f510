package entity

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	ModeGoal  = "goal"
	ModeCross = "cross"
)

// Outcome is the answer of the megaverse API to a single create call.
type Outcome struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body,omitempty"`
}

func (that Outcome) OK() bool {
	return that.StatusCode == http.StatusOK
}

// CellResult records what happened to one cell during a run.
type CellResult struct {
	Position
	Label      string `json:"label,omitempty"`
	Kind       Kind   `json:"kind,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (that CellResult) Failed() bool {
	return that.Error != ""
}

type Report struct {
	ID          string       `json:"id"`
	CandidateID string       `json:"candidate_id"`
	Mode        string       `json:"mode"`
	StartedAt   time.Time    `json:"started_at"`
	FinishedAt  time.Time    `json:"finished_at,omitempty"`
	Cells       []CellResult `json:"cells"`
}

func NewReport(candidateID, mode string, startedAt time.Time) *Report {
	return &Report{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		Mode:        mode,
		StartedAt:   startedAt,
		Cells:       []CellResult{},
	}
}

func (that *Report) Add(result CellResult) {
	that.Cells = append(that.Cells, result)
}

func (that *Report) Finish(finishedAt time.Time) {
	that.FinishedAt = finishedAt
}

// Created - counts the cells the API accepted.
func (that *Report) Created() int {
	count := 0
	for _, cell := range that.Cells {
		if !cell.Failed() && cell.Kind != KindSpace {
			count++
		}
	}

	return count
}

func (that *Report) Failed() int {
	count := 0
	for _, cell := range that.Cells {
		if cell.Failed() {
			count++
		}
	}

	return count
}

func (that *Report) Skipped() int {
	count := 0
	for _, cell := range that.Cells {
		if cell.Kind == KindSpace {
			count++
		}
	}

	return count
}

func (that *Report) HasFailures() bool {
	return that.Failed() > 0
}
