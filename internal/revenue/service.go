package revenue

import (
	"context"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/validation"
)

const (
	resourceName = "revenue"
	basePath     = "/revenus"
)

// Service wraps the revenue endpoints. Revenue lines carry no status.
type Service interface {
	GetByEstablishment(ctx context.Context, establishmentID string) ([]Entry, error)
	Create(ctx context.Context, input Input) (Entry, error)
	Update(ctx context.Context, id string, input Input) (Entry, error)
	Delete(ctx context.Context, id string) error
}

type ServiceParams struct {
	Client backend.Doer
}

type service struct {
	res *backend.Resource[Entry]
}

func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "backend client is required")
	}
	return &service{res: backend.NewResource(params.Client, resourceName, basePath, Parse)}, nil
}

func (s *service) GetByEstablishment(ctx context.Context, establishmentID string) ([]Entry, error) {
	if establishmentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	return s.res.GetByEstablishment(ctx, establishmentID)
}

func (s *service) Create(ctx context.Context, input Input) (Entry, error) {
	if err := checkInput(input); err != nil {
		return Entry{}, err
	}
	return s.res.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input Input) (Entry, error) {
	if id == "" {
		return Entry{}, pkgerrors.New(pkgerrors.CodeValidation, "revenue id is required")
	}
	if err := checkInput(input); err != nil {
		return Entry{}, err
	}
	return s.res.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "revenue id is required")
	}
	return s.res.Delete(ctx, id)
}

func checkInput(input Input) error {
	if err := validation.Struct(input); err != nil {
		return err
	}
	if !input.Category.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"categorie": "is invalid"})
	}
	return nil
}
