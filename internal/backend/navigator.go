package backend

import (
	"context"
	"sync"

	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

// Navigator moves the user agent to another location (the login screen).
type Navigator interface {
	Redirect(ctx context.Context, path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, path string)

func (f NavigatorFunc) Redirect(ctx context.Context, path string) {
	f(ctx, path)
}

// LocationRecorder remembers the last redirect target. Headless processes use it
// in place of a browser location.
type LocationRecorder struct {
	mu       sync.RWMutex
	location string
	logg     *logger.Logger
}

func NewLocationRecorder(logg *logger.Logger) *LocationRecorder {
	return &LocationRecorder{logg: logg}
}

func (r *LocationRecorder) Redirect(ctx context.Context, path string) {
	r.mu.Lock()
	r.location = path
	r.mu.Unlock()
	if r.logg != nil {
		r.logg.Warn(r.logg.WithField(ctx, "location", path), "session expired, redirecting to login")
	}
}

// Location returns the last redirect target.
func (r *LocationRecorder) Location() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.location
}
