package reports

import (
	"context"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/validation"
)

const (
	resourceName = "reports"
	basePath     = "/rapports"
)

type Service interface {
	GetByEstablishment(ctx context.Context, establishmentID string) ([]Report, error)
	Create(ctx context.Context, input Input) (Report, error)
	Update(ctx context.Context, id string, input Input) (Report, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, status enums.ReportStatus) (Report, error)
}

type ServiceParams struct {
	Client backend.Doer
}

type service struct {
	res *backend.Resource[Report]
}

func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "backend client is required")
	}
	return &service{res: backend.NewResource(params.Client, resourceName, basePath, Parse)}, nil
}

func (s *service) GetByEstablishment(ctx context.Context, establishmentID string) ([]Report, error) {
	if establishmentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	return s.res.GetByEstablishment(ctx, establishmentID)
}

func (s *service) Create(ctx context.Context, input Input) (Report, error) {
	if err := validation.Struct(input); err != nil {
		return Report{}, err
	}
	return s.res.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input Input) (Report, error) {
	if id == "" {
		return Report{}, pkgerrors.New(pkgerrors.CodeValidation, "report id is required")
	}
	if err := validation.Struct(input); err != nil {
		return Report{}, err
	}
	return s.res.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "report id is required")
	}
	return s.res.Delete(ctx, id)
}

func (s *service) ChangeStatus(ctx context.Context, id string, status enums.ReportStatus) (Report, error) {
	if id == "" {
		return Report{}, pkgerrors.New(pkgerrors.CodeValidation, "report id is required")
	}
	if !status.IsValid() {
		return Report{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid report status").
			WithDetails(map[string]any{"status": status})
	}
	return s.res.ChangeStatus(ctx, id, status.String())
}
