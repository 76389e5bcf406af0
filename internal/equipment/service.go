package equipment

import (
	"context"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/validation"
)

const (
	resourceName = "equipment"
	basePath     = "/equipements"
)

type Service interface {
	GetByEstablishment(ctx context.Context, establishmentID string) ([]Item, error)
	Create(ctx context.Context, input Input) (Item, error)
	Update(ctx context.Context, id string, input Input) (Item, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, status enums.EquipmentStatus) (Item, error)
}

type ServiceParams struct {
	Client backend.Doer
}

type service struct {
	res *backend.Resource[Item]
}

func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "backend client is required")
	}
	return &service{res: backend.NewResource(params.Client, resourceName, basePath, Parse)}, nil
}

func (s *service) GetByEstablishment(ctx context.Context, establishmentID string) ([]Item, error) {
	if establishmentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	return s.res.GetByEstablishment(ctx, establishmentID)
}

func (s *service) Create(ctx context.Context, input Input) (Item, error) {
	if err := validation.Struct(input); err != nil {
		return Item{}, err
	}
	return s.res.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input Input) (Item, error) {
	if id == "" {
		return Item{}, pkgerrors.New(pkgerrors.CodeValidation, "equipment id is required")
	}
	if err := validation.Struct(input); err != nil {
		return Item{}, err
	}
	return s.res.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "equipment id is required")
	}
	return s.res.Delete(ctx, id)
}

func (s *service) ChangeStatus(ctx context.Context, id string, status enums.EquipmentStatus) (Item, error) {
	if id == "" {
		return Item{}, pkgerrors.New(pkgerrors.CodeValidation, "equipment id is required")
	}
	if !status.IsValid() {
		return Item{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid equipment status").
			WithDetails(map[string]any{"status": status})
	}
	return s.res.ChangeStatus(ctx, id, status.String())
}
