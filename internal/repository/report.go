package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/megaverse-builder/internal/apperror"
	"github.com/rocketscienceinc/megaverse-builder/internal/entity"
)

const (
	reportKeyPrefix       = "report:"
	latestReportKeyPrefix = "report:latest:"
)

type ReportRepository interface {
	Save(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	GetLatest(ctx context.Context, candidateID string) (*entity.Report, error)
}

type dbReport struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportRepository - ttl of zero keeps reports forever.
func NewReportRepository(client *redis.Client, ttl time.Duration) ReportRepository {
	return &dbReport{
		client: client,
		ttl:    ttl,
	}
}

// Save - stores the report and points the candidate's latest report at it.
func (that *dbReport) Save(ctx context.Context, report *entity.Report) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, reportKeyPrefix+report.ID, reportJSON, that.ttl)
		pipe.Set(ctx, latestReportKeyPrefix+report.CandidateID, report.ID, that.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

func (that *dbReport) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	response, err := that.client.Get(ctx, reportKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrReportNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}

	var report entity.Report
	if err = json.Unmarshal([]byte(response), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}

func (that *dbReport) GetLatest(ctx context.Context, candidateID string) (*entity.Report, error) {
	id, err := that.client.Get(ctx, latestReportKeyPrefix+candidateID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrReportNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get latest report: %w", err)
	}

	return that.GetByID(ctx, id)
}
