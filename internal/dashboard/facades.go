package dashboard

import (
	"go.uber.org/multierr"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/internal/equipment"
	"github.com/angelmondragon/hotelsuite/internal/leaves"
	"github.com/angelmondragon/hotelsuite/internal/personnel"
	"github.com/angelmondragon/hotelsuite/internal/products"
	"github.com/angelmondragon/hotelsuite/internal/reports"
	"github.com/angelmondragon/hotelsuite/internal/reservations"
	"github.com/angelmondragon/hotelsuite/internal/revenue"
)

// WithFacades fills every section fetcher of params with the REST façade built
// on client.
func WithFacades(params ServiceParams, client backend.Doer) (ServiceParams, error) {
	var errs, err error

	if params.Personnel, err = personnel.NewService(personnel.ServiceParams{Client: client}); err != nil {
		errs = multierr.Append(errs, err)
	}
	if params.Products, err = products.NewService(products.ServiceParams{Client: client}); err != nil {
		errs = multierr.Append(errs, err)
	}
	if params.Leaves, err = leaves.NewService(leaves.ServiceParams{Client: client}); err != nil {
		errs = multierr.Append(errs, err)
	}
	if params.Reports, err = reports.NewService(reports.ServiceParams{Client: client}); err != nil {
		errs = multierr.Append(errs, err)
	}
	if params.Reservations, err = reservations.NewService(reservations.ServiceParams{Client: client}); err != nil {
		errs = multierr.Append(errs, err)
	}
	if params.Equipment, err = equipment.NewService(equipment.ServiceParams{Client: client}); err != nil {
		errs = multierr.Append(errs, err)
	}
	if params.Revenue, err = revenue.NewService(revenue.ServiceParams{Client: client}); err != nil {
		errs = multierr.Append(errs, err)
	}
	return params, errs
}
