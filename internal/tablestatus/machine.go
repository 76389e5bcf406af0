package tablestatus

import (
	"context"
	"time"

	"github.com/angelmondragon/hotelsuite/internal/furniture"
	"github.com/angelmondragon/hotelsuite/internal/reservations"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

// StatusStore is the slice of the furniture store the machine drives.
type StatusStore interface {
	Item(id string) (furniture.Item, bool)
	UpdateTableStatus(ctx context.Context, id string, status enums.TableStatus) bool
}

// ReservationForm is what the reservation drawer collects for a free table.
type ReservationForm struct {
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	PartySize    int       `json:"partySize"`
	Date         time.Time `json:"date"`
	Notes        string    `json:"notes,omitempty"`
}

// Result is the outcome of an executed action.
type Result struct {
	Item        furniture.Item            `json:"item"`
	Action      Action                    `json:"action"`
	Reservation *reservations.Reservation `json:"reservation,omitempty"`
}

type MachineParams struct {
	Store StatusStore
	// Reservations is required only for the reservation form action.
	Reservations    reservations.Creator
	EstablishmentID string
	Logger          *logger.Logger
}

type Machine struct {
	store           StatusStore
	reservations    reservations.Creator
	establishmentID string
	logg            *logger.Logger
}

func NewMachine(params MachineParams) (*Machine, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "furniture store is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Machine{
		store:           params.Store,
		reservations:    params.Reservations,
		establishmentID: params.EstablishmentID,
		logg:            params.Logger,
	}, nil
}

// Execute runs the action keyed actionKey on item id. The action must be offered
// for the item's current status. form is read only by the reservation action.
func (m *Machine) Execute(ctx context.Context, id, actionKey string, form *ReservationForm) (Result, error) {
	item, ok := m.store.Item(id)
	if !ok {
		return Result{}, pkgerrors.New(pkgerrors.CodeNotFound, "furniture item not found")
	}
	action, ok := Find(item.Status, actionKey)
	if !ok {
		return Result{}, pkgerrors.New(pkgerrors.CodeStateConflict, "action not available for current status").
			WithDetails(map[string]any{"status": item.Status, "action": actionKey})
	}

	var res Result
	res.Action = action
	if action.Kind == ActionKindReservationForm {
		booking, err := m.book(ctx, id, form)
		if err != nil {
			return Result{}, err
		}
		res.Reservation = &booking
	}

	if !m.store.UpdateTableStatus(ctx, id, action.Target) {
		// a reload dropped the item after the lookup
		return Result{}, pkgerrors.New(pkgerrors.CodeNotFound, "furniture item not found")
	}
	res.Item, _ = m.store.Item(id)

	ctx = m.logg.WithFields(ctx, map[string]any{
		"furniture_id": id,
		"from":         item.Status.String(),
		"to":           action.Target.String(),
	})
	m.logg.Info(ctx, "table status changed")
	return res, nil
}

func (m *Machine) book(ctx context.Context, tableID string, form *ReservationForm) (reservations.Reservation, error) {
	if m.reservations == nil {
		return reservations.Reservation{}, pkgerrors.New(pkgerrors.CodeDependency, "reservations are not configured")
	}
	if form == nil {
		return reservations.Reservation{}, pkgerrors.New(pkgerrors.CodeValidation, "reservation form is required")
	}
	return m.reservations.Create(ctx, reservations.CreateInput{
		EstablishmentID: m.establishmentID,
		CustomerName:    form.CustomerName,
		Phone:           form.Phone,
		Email:           form.Email,
		PartySize:       form.PartySize,
		Date:            form.Date,
		TableID:         tableID,
		Notes:           form.Notes,
	})
}
