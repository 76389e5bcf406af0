package reservations

import (
	"context"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/validation"
)

const (
	resourceName = "reservations"
	basePath     = "/reservations"
)

// Service wraps the booking endpoints.
type Service interface {
	GetByEstablishment(ctx context.Context, establishmentID string) ([]Reservation, error)
	Create(ctx context.Context, input CreateInput) (Reservation, error)
	Update(ctx context.Context, id string, input UpdateInput) (Reservation, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status enums.ReservationStatus) (Reservation, error)
}

// Creator is the narrow view used by the table action flow.
type Creator interface {
	Create(ctx context.Context, input CreateInput) (Reservation, error)
}

type ServiceParams struct {
	Client backend.Doer
}

type service struct {
	res *backend.Resource[Reservation]
}

func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "backend client is required")
	}
	return &service{res: backend.NewResource(params.Client, resourceName, basePath, Parse)}, nil
}

func (s *service) GetByEstablishment(ctx context.Context, establishmentID string) ([]Reservation, error) {
	if establishmentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	return s.res.GetByEstablishment(ctx, establishmentID)
}

func (s *service) Create(ctx context.Context, input CreateInput) (Reservation, error) {
	if err := validation.Struct(input); err != nil {
		return Reservation{}, err
	}
	return s.res.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input UpdateInput) (Reservation, error) {
	if id == "" {
		return Reservation{}, pkgerrors.New(pkgerrors.CodeValidation, "reservation id is required")
	}
	if err := validation.Struct(input); err != nil {
		return Reservation{}, err
	}
	return s.res.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation id is required")
	}
	return s.res.Delete(ctx, id)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status enums.ReservationStatus) (Reservation, error) {
	if id == "" {
		return Reservation{}, pkgerrors.New(pkgerrors.CodeValidation, "reservation id is required")
	}
	if !status.IsValid() {
		return Reservation{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid reservation status").
			WithDetails(map[string]any{"status": status})
	}
	return s.res.ChangeStatus(ctx, id, status.String())
}
