package dashboard

import (
	"context"
	"fmt"
)

const demoDataMessage = "Aucune donnée disponible, affichage des données de démonstration"

// Fetcher is the read side shared by every resource façade.
type Fetcher[T any] interface {
	GetByEstablishment(ctx context.Context, establishmentID string) ([]T, error)
}

// Page is what a dashboard section renders. Demo is set when Items holds the
// demonstration dataset instead of backend data.
type Page[T any] struct {
	Items []T  `json:"items"`
	Demo  bool `json:"demo"`
}

// LoadPage fetches one section. It never fails: a fetch error yields the demo
// dataset and exactly one error toast, an empty result yields the demo dataset
// and one info toast.
func LoadPage[T any](ctx context.Context, notifier Notifier, section string, fetch func(context.Context) ([]T, error), demo func() []T) Page[T] {
	items, err := fetch(ctx)
	if err != nil {
		notifier.Notify(ctx, Toast{Kind: ToastError, Section: section, Message: errorMessage(err)})
		return Page[T]{Items: demo(), Demo: true}
	}
	if len(items) == 0 {
		notifier.Notify(ctx, Toast{Kind: ToastInfo, Section: section, Message: demoDataMessage})
		return Page[T]{Items: demo(), Demo: true}
	}
	return Page[T]{Items: items}
}

// LoadEstablishmentPage is LoadPage over a façade.
func LoadEstablishmentPage[T any](ctx context.Context, notifier Notifier, section string, f Fetcher[T], establishmentID string, demo func() []T) Page[T] {
	return LoadPage(ctx, notifier, section, func(ctx context.Context) ([]T, error) {
		return f.GetByEstablishment(ctx, establishmentID)
	}, demo)
}

func errorMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return fmt.Sprintf("%T", err)
	}
	return msg
}
