package personnel

import (
	"context"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/validation"
)

const (
	resourceName = "personnel"
	basePath     = "/personnel"
)

// Service wraps the personnel endpoints.
type Service interface {
	GetByEstablishment(ctx context.Context, establishmentID string) ([]Member, error)
	Create(ctx context.Context, input CreateInput) (Member, error)
	Update(ctx context.Context, id string, input UpdateInput) (Member, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, status enums.PersonnelStatus) (Member, error)
}

type ServiceParams struct {
	Client backend.Doer
}

type service struct {
	res *backend.Resource[Member]
}

func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "backend client is required")
	}
	return &service{res: backend.NewResource(params.Client, resourceName, basePath, Parse)}, nil
}

func (s *service) GetByEstablishment(ctx context.Context, establishmentID string) ([]Member, error) {
	if establishmentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	return s.res.GetByEstablishment(ctx, establishmentID)
}

func (s *service) Create(ctx context.Context, input CreateInput) (Member, error) {
	if err := validation.Struct(input); err != nil {
		return Member{}, err
	}
	return s.res.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input UpdateInput) (Member, error) {
	if id == "" {
		return Member{}, pkgerrors.New(pkgerrors.CodeValidation, "personnel id is required")
	}
	if err := validation.Struct(input); err != nil {
		return Member{}, err
	}
	return s.res.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "personnel id is required")
	}
	return s.res.Delete(ctx, id)
}

func (s *service) ChangeStatus(ctx context.Context, id string, status enums.PersonnelStatus) (Member, error) {
	if id == "" {
		return Member{}, pkgerrors.New(pkgerrors.CodeValidation, "personnel id is required")
	}
	if !status.IsValid() {
		return Member{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid personnel status").
			WithDetails(map[string]any{"status": status})
	}
	return s.res.ChangeStatus(ctx, id, status.String())
}
