package cron

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/angelmondragon/hotelsuite/internal/dashboard"
	"github.com/angelmondragon/hotelsuite/internal/establishments"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

type dashboardRefresher interface {
	Refresh(ctx context.Context, establishmentID string) (dashboard.Overview, error)
}

type establishmentLister interface {
	List(ctx context.Context) ([]establishments.Establishment, error)
}

// DashboardRefreshJobParams configures the dashboard refresh.
type DashboardRefreshJobParams struct {
	Logger     *logger.Logger
	Dashboards dashboardRefresher
	// Establishments lists the establishments whose dashboards are kept warm.
	Establishments []string
	// Directory is asked for the active establishments on every cycle when
	// Establishments is empty.
	Directory establishmentLister
}

// NewDashboardRefreshJob re-runs the fetch-and-fallback logic of every dashboard.
func NewDashboardRefreshJob(params DashboardRefreshJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Dashboards == nil {
		return nil, fmt.Errorf("dashboard service required")
	}
	ids := make([]string, 0, len(params.Establishments))
	for _, id := range params.Establishments {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 && params.Directory == nil {
		return nil, fmt.Errorf("establishment ids or an establishment directory required")
	}
	return &dashboardRefreshJob{
		logg:           params.Logger,
		dashboards:     params.Dashboards,
		establishments: ids,
		directory:      params.Directory,
	}, nil
}

type dashboardRefreshJob struct {
	logg           *logger.Logger
	dashboards     dashboardRefresher
	establishments []string
	directory      establishmentLister
}

func (j *dashboardRefreshJob) Name() string { return "dashboard-refresh" }

func (j *dashboardRefreshJob) Run(ctx context.Context) error {
	ids, err := j.targets(ctx)
	if err != nil {
		return err
	}

	var errs error
	toasts := 0
	for _, id := range ids {
		ov, err := j.dashboards.Refresh(ctx, id)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("establishment %s: %w", id, err))
			continue
		}
		toasts += len(ov.Toasts)
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{"establishments": len(ids), "toasts": toasts})
	j.logg.Info(logCtx, "dashboard refresh loop complete")
	return errs
}

func (j *dashboardRefreshJob) targets(ctx context.Context) ([]string, error) {
	if len(j.establishments) > 0 {
		return j.establishments, nil
	}
	list, err := j.directory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list establishments: %w", err)
	}
	ids := make([]string, 0, len(list))
	for _, e := range list {
		if e.Status == enums.EstablishmentStatusActive {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}
