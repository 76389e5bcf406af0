package establishments

import (
	"context"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/validation"
)

const (
	resourceName = "establishments"
	basePath     = "/etablissements"
)

// Service wraps the establishment endpoints used by the super-admin screens.
type Service interface {
	List(ctx context.Context) ([]Establishment, error)
	// GetByEstablishment fetches the establishment itself.
	GetByEstablishment(ctx context.Context, id string) (Establishment, error)
	Create(ctx context.Context, input Input) (Establishment, error)
	Update(ctx context.Context, id string, input Input) (Establishment, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, status enums.EstablishmentStatus) (Establishment, error)
}

type ServiceParams struct {
	Client backend.Doer
}

type service struct {
	res *backend.Resource[Establishment]
}

func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "backend client is required")
	}
	return &service{res: backend.NewResource(params.Client, resourceName, basePath, Parse)}, nil
}

func (s *service) List(ctx context.Context) ([]Establishment, error) {
	return s.res.List(ctx, s.res.Path())
}

func (s *service) GetByEstablishment(ctx context.Context, id string) (Establishment, error) {
	if id == "" {
		return Establishment{}, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	return s.res.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, input Input) (Establishment, error) {
	if err := validation.Struct(input); err != nil {
		return Establishment{}, err
	}
	return s.res.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input Input) (Establishment, error) {
	if id == "" {
		return Establishment{}, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	if err := validation.Struct(input); err != nil {
		return Establishment{}, err
	}
	return s.res.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	return s.res.Delete(ctx, id)
}

func (s *service) ChangeStatus(ctx context.Context, id string, status enums.EstablishmentStatus) (Establishment, error) {
	if id == "" {
		return Establishment{}, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	if !status.IsValid() {
		return Establishment{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid establishment status").
			WithDetails(map[string]any{"status": status})
	}
	return s.res.ChangeStatus(ctx, id, status.String())
}
