package leaves

import (
	"context"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/validation"
)

const (
	resourceName = "leaves"
	basePath     = "/conges"
)

// Service wraps the leave request endpoints.
type Service interface {
	GetByEstablishment(ctx context.Context, establishmentID string) ([]Request, error)
	Create(ctx context.Context, input Input) (Request, error)
	Update(ctx context.Context, id string, input Input) (Request, error)
	Delete(ctx context.Context, id string) error
	// UpdateStatus approves, rejects or cancels a request.
	UpdateStatus(ctx context.Context, id string, status enums.LeaveStatus) (Request, error)
}

type ServiceParams struct {
	Client backend.Doer
}

type service struct {
	res *backend.Resource[Request]
}

func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "backend client is required")
	}
	return &service{res: backend.NewResource(params.Client, resourceName, basePath, Parse)}, nil
}

func (s *service) GetByEstablishment(ctx context.Context, establishmentID string) ([]Request, error) {
	if establishmentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	return s.res.GetByEstablishment(ctx, establishmentID)
}

func (s *service) Create(ctx context.Context, input Input) (Request, error) {
	if err := validation.Struct(input); err != nil {
		return Request{}, err
	}
	return s.res.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input Input) (Request, error) {
	if id == "" {
		return Request{}, pkgerrors.New(pkgerrors.CodeValidation, "leave id is required")
	}
	if err := validation.Struct(input); err != nil {
		return Request{}, err
	}
	return s.res.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "leave id is required")
	}
	return s.res.Delete(ctx, id)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status enums.LeaveStatus) (Request, error) {
	if id == "" {
		return Request{}, pkgerrors.New(pkgerrors.CodeValidation, "leave id is required")
	}
	if !status.IsValid() {
		return Request{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid leave status").
			WithDetails(map[string]any{"status": status})
	}
	return s.res.ChangeStatus(ctx, id, status.String())
}
