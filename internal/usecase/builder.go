package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/megaverse-builder/internal/apperror"
	"github.com/rocketscienceinc/megaverse-builder/internal/entity"
)

type megaverseClient interface {
	GetGoal(ctx context.Context) (entity.Grid, error)

	CreatePolyanet(ctx context.Context, row, column int) (entity.Outcome, error)
	CreateSoloon(ctx context.Context, row, column int, color string) (entity.Outcome, error)
	CreateCometh(ctx context.Context, row, column int, direction string) (entity.Outcome, error)
}

type reportRepo interface {
	Save(ctx context.Context, report *entity.Report) error
}

// Builder reconciles the megaverse of one candidate, one cell at a time in row-major order.
type Builder struct {
	logger      *slog.Logger
	client      megaverseClient
	reports     reportRepo
	candidateID string
	now         func() time.Time
}

// NewBuilder - reports may be nil, then run reports are only logged.
func NewBuilder(logger *slog.Logger, client megaverseClient, reports reportRepo, candidateID string) *Builder {
	return &Builder{
		logger:      logger.With("component", "builder"),
		client:      client,
		reports:     reports,
		candidateID: candidateID,
		now:         time.Now,
	}
}

// BuildGoal - fetches the goal map and creates every non-space cell of it.
// Only a failed fetch is returned as an error; failed cells end up in the report.
func (that *Builder) BuildGoal(ctx context.Context) (*entity.Report, error) {
	log := that.logger.With("method", "BuildGoal")

	grid, err := that.client.GetGoal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goal: %w", err)
	}

	log.Info("goal fetched", "rows", len(grid), "objects", grid.Occupied())

	report := entity.NewReport(that.candidateID, entity.ModeGoal, that.now())

	for row, labels := range grid {
		for column, label := range labels {
			if err = ctx.Err(); err != nil {
				return that.finish(ctx, report), fmt.Errorf("build interrupted at (%d, %d): %w", row, column, err)
			}

			report.Add(that.buildCell(ctx, entity.Position{Row: row, Column: column}, label))
		}
	}

	return that.finish(ctx, report), nil
}

// BuildCross - draws a polyanet X on a size x size board without reading the goal.
func (that *Builder) BuildCross(ctx context.Context, size, margin int) (*entity.Report, error) {
	positions, err := entity.CrossPositions(size, margin)
	if err != nil {
		return nil, fmt.Errorf("failed to compute cross: %w", err)
	}

	that.logger.Info("drawing cross", "method", "BuildCross", "size", size, "objects", len(positions))

	report := entity.NewReport(that.candidateID, entity.ModeCross, that.now())

	for _, position := range positions {
		if err = ctx.Err(); err != nil {
			return that.finish(ctx, report), fmt.Errorf("build interrupted at (%d, %d): %w", position.Row, position.Column, err)
		}

		report.Add(that.place(ctx, position, entity.LabelPolyanet, entity.Object{Kind: entity.KindPolyanet}))
	}

	return that.finish(ctx, report), nil
}

func (that *Builder) buildCell(ctx context.Context, position entity.Position, label string) entity.CellResult {
	object, err := entity.ParseLabel(label)
	if err != nil {
		that.logger.Warn("skipping cell", "row", position.Row, "column", position.Column, "error", err)

		return entity.CellResult{Position: position, Label: label, Error: err.Error()}
	}

	if object.IsSpace() {
		return entity.CellResult{Position: position, Label: label, Kind: entity.KindSpace}
	}

	return that.place(ctx, position, label, object)
}

// place - issues the create call matching the object.
func (that *Builder) place(ctx context.Context, position entity.Position, label string, object entity.Object) entity.CellResult {
	log := that.logger.With("row", position.Row, "column", position.Column, "kind", object.Kind)

	result := entity.CellResult{Position: position, Label: label, Kind: object.Kind}

	var (
		outcome entity.Outcome
		err     error
	)

	switch object.Kind {
	case entity.KindPolyanet:
		outcome, err = that.client.CreatePolyanet(ctx, position.Row, position.Column)
	case entity.KindSoloon:
		outcome, err = that.client.CreateSoloon(ctx, position.Row, position.Column, object.Color)
	case entity.KindCometh:
		outcome, err = that.client.CreateCometh(ctx, position.Row, position.Column, object.Direction)
	default:
		err = fmt.Errorf("%w: kind %q", apperror.ErrUnknownLabel, object.Kind)
	}

	if err != nil {
		log.Error("failed to create object", "error", err)
		result.Error = err.Error()

		return result
	}

	result.StatusCode = outcome.StatusCode

	if !outcome.OK() {
		err = fmt.Errorf("%w: %d: %s", apperror.ErrUnexpectedStatus, outcome.StatusCode, outcome.Body)
		log.Error("failed to create object", "status", outcome.StatusCode, "response", outcome.Body)
		result.Error = err.Error()

		return result
	}

	log.Info("object created")

	return result
}

func (that *Builder) finish(ctx context.Context, report *entity.Report) *entity.Report {
	report.Finish(that.now())

	that.logger.Info("build finished",
		"report", report.ID,
		"mode", report.Mode,
		"created", report.Created(),
		"failed", report.Failed(),
		"skipped", report.Skipped(),
	)

	if that.reports == nil {
		return report
	}

	// the run may have been cancelled, the report is still worth keeping
	if err := that.reports.Save(context.WithoutCancel(ctx), report); err != nil {
		that.logger.Error("failed to save report", "report", report.ID, "error", err)
	}

	return report
}
