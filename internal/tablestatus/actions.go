// Package tablestatus holds the occupancy state machine of placed tables: the
// actions offered for each state, their badge colors and their execution
// against the furniture store.
package tablestatus

import "github.com/angelmondragon/hotelsuite/pkg/enums"

type ActionKind string

const (
	// ActionKindStatus moves the table straight to Target.
	ActionKindStatus ActionKind = "status"
	// ActionKindReservationForm collects a booking before moving to Target.
	ActionKindReservationForm ActionKind = "reservation_form"
)

const (
	ActionReserve      = "reserve"
	ActionOccupy       = "occupy"
	ActionOutOfService = "out_of_service"
	ActionFree         = "free"
	ActionClean        = "clean"
)

// Action is one button of the selection drawer.
type Action struct {
	Key    string            `json:"key"`
	Label  string            `json:"label"`
	Kind   ActionKind        `json:"kind"`
	Target enums.TableStatus `json:"target"`
}

var (
	reserve      = Action{Key: ActionReserve, Label: "Réserver", Kind: ActionKindReservationForm, Target: enums.TableStatusReserved}
	occupy       = Action{Key: ActionOccupy, Label: "Occuper", Kind: ActionKindStatus, Target: enums.TableStatusOccupied}
	outOfService = Action{Key: ActionOutOfService, Label: "Hors service", Kind: ActionKindStatus, Target: enums.TableStatusOutOfService}
	free         = Action{Key: ActionFree, Label: "Libérer", Kind: ActionKindStatus, Target: enums.TableStatusFree}
	clean        = Action{Key: ActionClean, Label: "Nettoyage", Kind: ActionKindStatus, Target: enums.TableStatusCleaning}
)

var edges = map[enums.TableStatus][]Action{
	enums.TableStatusFree:         {reserve, occupy, outOfService},
	enums.TableStatusReserved:     {free, clean},
	enums.TableStatusOccupied:     {free, clean},
	enums.TableStatusCleaning:     {free},
	enums.TableStatusOutOfService: {free},
}

// Actions lists the actions offered for status. Values outside the five known
// states have no actions.
func Actions(status enums.TableStatus) []Action {
	list := edges[status]
	if len(list) == 0 {
		return nil
	}
	out := make([]Action, len(list))
	copy(out, list)
	return out
}

// Find returns the action with key offered for status.
func Find(status enums.TableStatus, key string) (Action, bool) {
	for _, action := range edges[status] {
		if action.Key == key {
			return action, true
		}
	}
	return Action{}, false
}

// CanTransition reports whether some action leads from one state to the other.
func CanTransition(from, to enums.TableStatus) bool {
	for _, action := range edges[from] {
		if action.Target == to {
			return true
		}
	}
	return false
}

// BadgeColor maps a status to its badge color. Anything outside the five known
// states gets the blue fallback.
func BadgeColor(status enums.TableStatus) enums.BadgeColor {
	switch status {
	case enums.TableStatusFree:
		return enums.BadgeColorGreen
	case enums.TableStatusOccupied, enums.TableStatusReserved:
		return enums.BadgeColorRed
	case enums.TableStatusCleaning:
		return enums.BadgeColorYellow
	case enums.TableStatusOutOfService:
		return enums.BadgeColorGray
	default:
		return enums.BadgeColorBlue
	}
}
