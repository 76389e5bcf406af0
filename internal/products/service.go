package products

import (
	"context"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/validation"
)

const (
	resourceName = "products"
	basePath     = "/produits"
)

// Service wraps the product endpoints.
type Service interface {
	GetByEstablishment(ctx context.Context, establishmentID string) ([]Product, error)
	Create(ctx context.Context, input CreateInput) (Product, error)
	Update(ctx context.Context, id string, input UpdateInput) (Product, error)
	Delete(ctx context.Context, id string) error
	UpdateStock(ctx context.Context, id string, stock int) (Product, error)
	ChangeStatus(ctx context.Context, id string, status enums.ProductStatus) (Product, error)
}

type ServiceParams struct {
	Client backend.Doer
}

type service struct {
	res *backend.Resource[Product]
}

func NewService(params ServiceParams) (Service, error) {
	if params.Client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "backend client is required")
	}
	return &service{res: backend.NewResource(params.Client, resourceName, basePath, Parse)}, nil
}

func (s *service) GetByEstablishment(ctx context.Context, establishmentID string) ([]Product, error) {
	if establishmentID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "establishment id is required")
	}
	return s.res.GetByEstablishment(ctx, establishmentID)
}

func (s *service) Create(ctx context.Context, input CreateInput) (Product, error) {
	if err := validation.Struct(input); err != nil {
		return Product{}, err
	}
	return s.res.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, id string, input UpdateInput) (Product, error) {
	if id == "" {
		return Product{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := validation.Struct(input); err != nil {
		return Product{}, err
	}
	return s.res.Update(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return s.res.Delete(ctx, id)
}

// UpdateStock sets the stock level without touching the rest of the product.
func (s *service) UpdateStock(ctx context.Context, id string, stock int) (Product, error) {
	if id == "" {
		return Product{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	input := stockInput{Stock: stock}
	if err := validation.Struct(input); err != nil {
		return Product{}, err
	}
	return s.res.Patch(ctx, s.res.Path(id, "stock"), input)
}

func (s *service) ChangeStatus(ctx context.Context, id string, status enums.ProductStatus) (Product, error) {
	if id == "" {
		return Product{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if !status.IsValid() {
		return Product{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid product status").
			WithDetails(map[string]any{"status": status})
	}
	return s.res.ChangeStatus(ctx, id, status.String())
}
