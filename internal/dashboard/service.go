package dashboard

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/hotelsuite/internal/equipment"
	"github.com/angelmondragon/hotelsuite/internal/leaves"
	"github.com/angelmondragon/hotelsuite/internal/personnel"
	"github.com/angelmondragon/hotelsuite/internal/products"
	"github.com/angelmondragon/hotelsuite/internal/reports"
	"github.com/angelmondragon/hotelsuite/internal/reservations"
	"github.com/angelmondragon/hotelsuite/internal/revenue"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
	pkgredis "github.com/angelmondragon/hotelsuite/pkg/redis"
)

const defaultCacheTTL = 10 * time.Minute

// Section is one rendered dashboard block with its client-side stats.
type Section[T any, S any] struct {
	Items []T  `json:"items"`
	Demo  bool `json:"demo"`
	Stats S    `json:"stats"`
}

func section[T any, S any](page Page[T], stats func([]T) S) Section[T, S] {
	return Section[T, S]{Items: page.Items, Demo: page.Demo, Stats: stats(page.Items)}
}

// Overview is the full back-office dashboard of one establishment.
type Overview struct {
	EstablishmentID string                                                  `json:"establishmentId"`
	RefreshedAt     time.Time                                               `json:"refreshedAt"`
	Personnel       Section[personnel.Member, personnel.Summary]            `json:"personnel"`
	Products        Section[products.Product, products.Summary]             `json:"products"`
	Leaves          Section[leaves.Request, leaves.Summary]                 `json:"leaves"`
	Reports         Section[reports.Report, reports.Summary]                `json:"reports"`
	Reservations    Section[reservations.Reservation, reservations.Summary] `json:"reservations"`
	Equipment       Section[equipment.Item, equipment.Summary]              `json:"equipment"`
	Revenue         Section[revenue.Entry, revenue.Summary]                 `json:"revenue"`
	Toasts          []Toast                                                 `json:"toasts,omitempty"`
}

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DashboardKey(establishmentID string) string
}

// Service builds dashboards from the resource façades. Any façade may be nil;
// its section then shows demo data.
type Service interface {
	Refresh(ctx context.Context, establishmentID string) (Overview, error)
	Cached(ctx context.Context, establishmentID string) (Overview, bool, error)
}

type ServiceParams struct {
	Personnel    Fetcher[personnel.Member]
	Products     Fetcher[products.Product]
	Leaves       Fetcher[leaves.Request]
	Reports      Fetcher[reports.Report]
	Reservations Fetcher[reservations.Reservation]
	Equipment    Fetcher[equipment.Item]
	Revenue      Fetcher[revenue.Entry]

	// Cache keeps the last overview per establishment; optional.
	Cache    cacheStore
	CacheTTL time.Duration
	Notifier Notifier
	Logger   *logger.Logger
	Now      func() time.Time
}

type service struct {
	params ServiceParams
}

func NewService(params ServiceParams) (Service, error) {
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	if params.CacheTTL <= 0 {
		params.CacheTTL = defaultCacheTTL
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{params: params}, nil
}

// Refresh loads every section concurrently. Section failures never fail the
// refresh; only a cache write error is returned, alongside the overview.
func (s *service) Refresh(ctx context.Context, establishmentID string) (Overview, error) {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return Overview{}, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	ctx = s.params.Logger.WithEstablishmentID(ctx, establishmentID)

	collector := &Collector{}
	notifier := fanout{collector, s.params.Notifier}
	now := s.params.Now().UTC()
	ov := Overview{EstablishmentID: establishmentID, RefreshedAt: now}

	var g errgroup.Group
	g.Go(func() error {
		page := loadSection(ctx, notifier, "personnel", s.params.Personnel, establishmentID, DemoPersonnel)
		ov.Personnel = section(page, personnel.Stats)
		return nil
	})
	g.Go(func() error {
		page := loadSection(ctx, notifier, "products", s.params.Products, establishmentID, DemoProducts)
		ov.Products = section(page, products.Stats)
		return nil
	})
	g.Go(func() error {
		page := loadSection(ctx, notifier, "leaves", s.params.Leaves, establishmentID, DemoLeaves)
		ov.Leaves = section(page, leaves.Stats)
		return nil
	})
	g.Go(func() error {
		page := loadSection(ctx, notifier, "reports", s.params.Reports, establishmentID, DemoReports)
		ov.Reports = section(page, reports.Stats)
		return nil
	})
	g.Go(func() error {
		page := loadSection(ctx, notifier, "reservations", s.params.Reservations, establishmentID, DemoReservations)
		ov.Reservations = section(page, reservations.Stats)
		return nil
	})
	g.Go(func() error {
		page := loadSection(ctx, notifier, "equipment", s.params.Equipment, establishmentID, DemoEquipment)
		ov.Equipment = section(page, func(items []equipment.Item) equipment.Summary {
			return equipment.Stats(items, now)
		})
		return nil
	})
	g.Go(func() error {
		page := loadSection(ctx, notifier, "revenue", s.params.Revenue, establishmentID, DemoRevenue)
		ov.Revenue = section(page, revenue.Stats)
		return nil
	})
	_ = g.Wait()
	ov.Toasts = collector.Drain()

	if s.params.Cache == nil {
		return ov, nil
	}
	payload, err := json.Marshal(ov)
	if err != nil {
		return ov, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode dashboard")
	}
	if err := s.params.Cache.Set(ctx, s.params.Cache.DashboardKey(establishmentID), payload, s.params.CacheTTL); err != nil {
		s.params.Logger.Error(ctx, "dashboard cache write failed", err)
		return ov, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store dashboard")
	}
	return ov, nil
}

// Cached returns the last stored overview; ok is false when none is stored.
func (s *service) Cached(ctx context.Context, establishmentID string) (Overview, bool, error) {
	if s.params.Cache == nil {
		return Overview{}, false, nil
	}
	raw, err := s.params.Cache.Get(ctx, s.params.Cache.DashboardKey(establishmentID))
	if err != nil {
		if pkgredis.IsNil(err) {
			return Overview{}, false, nil
		}
		return Overview{}, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read dashboard")
	}
	var ov Overview
	if err := json.Unmarshal([]byte(raw), &ov); err != nil {
		return Overview{}, false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode dashboard")
	}
	return ov, true, nil
}

func loadSection[T any](ctx context.Context, notifier Notifier, name string, f Fetcher[T], establishmentID string, demo func() []T) Page[T] {
	if f == nil {
		return Page[T]{Items: demo(), Demo: true}
	}
	return LoadEstablishmentPage(ctx, notifier, name, f, establishmentID, demo)
}
