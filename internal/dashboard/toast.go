package dashboard

import (
	"context"
	"sync"

	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastInfo    ToastKind = "info"
	ToastWarning ToastKind = "warning"
	ToastError   ToastKind = "error"
)

// Toast is a short notification shown to the operator.
type Toast struct {
	Kind    ToastKind `json:"kind"`
	Section string    `json:"section,omitempty"`
	Message string    `json:"message"`
}

// Notifier receives toasts.
type Notifier interface {
	Notify(ctx context.Context, toast Toast)
}

// Collector keeps toasts in memory until drained.
type Collector struct {
	mu     sync.Mutex
	toasts []Toast
}

func (c *Collector) Notify(_ context.Context, toast Toast) {
	c.mu.Lock()
	c.toasts = append(c.toasts, toast)
	c.mu.Unlock()
}

// Toasts returns the collected toasts without clearing them.
func (c *Collector) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Drain returns and clears the collected toasts.
func (c *Collector) Drain() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.toasts
	c.toasts = nil
	return out
}

// LogNotifier writes toasts to the structured log; used by headless workers.
type LogNotifier struct {
	Logger *logger.Logger
}

func (n LogNotifier) Notify(ctx context.Context, toast Toast) {
	if n.Logger == nil {
		return
	}
	ctx = n.Logger.WithFields(ctx, map[string]any{"toast_kind": string(toast.Kind), "section": toast.Section})
	switch toast.Kind {
	case ToastError, ToastWarning:
		n.Logger.Warn(ctx, toast.Message)
	default:
		n.Logger.Info(ctx, toast.Message)
	}
}

// fanout forwards to every non-nil notifier.
type fanout []Notifier

func (f fanout) Notify(ctx context.Context, toast Toast) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, toast)
		}
	}
}
