package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/megaverse-builder/internal/apperror"
	"github.com/rocketscienceinc/megaverse-builder/internal/config"
	"github.com/rocketscienceinc/megaverse-builder/internal/entity"
	"github.com/rocketscienceinc/megaverse-builder/internal/ratelimit"
	"github.com/rocketscienceinc/megaverse-builder/internal/repository"
	"github.com/rocketscienceinc/megaverse-builder/internal/repository/storage"
	"github.com/rocketscienceinc/megaverse-builder/internal/transport/megaverse"
	"github.com/rocketscienceinc/megaverse-builder/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - builds the megaverse once and returns when the run is over.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var reports repository.ReportRepository
	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		reports = repository.NewReportRepository(redisStorage.Connection, conf.Redis.ReportTTL)
	}

	limiter := ratelimit.New(conf.Megaverse.RequestInterval)
	client := megaverse.New(logger, megaverse.Config{
		BaseURL:     conf.Megaverse.BaseURL,
		CandidateID: conf.Megaverse.CandidateID,
		Timeout:     conf.Megaverse.Timeout,
	}, limiter)

	builder := usecase.NewBuilder(logger, client, reports, conf.Megaverse.CandidateID)

	log.Info("Starting build", "mode", conf.Mode, "candidate", conf.Megaverse.CandidateID, "interval", limiter.Interval())

	report, err := run(ctx, builder, conf)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if report.HasFailures() {
		return fmt.Errorf("%w: %d of %d cells failed, report %s",
			apperror.ErrPartialFailure, report.Failed(), len(report.Cells), report.ID)
	}

	log.Info("Megaverse built", "report", report.ID, "created", report.Created())

	return nil
}

func run(ctx context.Context, builder *usecase.Builder, conf *config.Config) (*entity.Report, error) {
	switch conf.Mode {
	case entity.ModeCross:
		return builder.BuildCross(ctx, conf.Cross.Size, conf.Cross.Margin)
	case entity.ModeGoal:
		return builder.BuildGoal(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, conf.Mode)
	}
}
