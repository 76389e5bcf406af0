package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ParseFunc decodes one backend record into a typed value.
type ParseFunc[T any] func(raw json.RawMessage) (T, error)

// Resource implements the path conventions shared by every façade:
//
//	GET    /{base}/etablissement/{id}
//	POST   /{base}
//	PUT    /{base}/{id}
//	DELETE /{base}/{id}
//	PATCH  /{base}/status/{value}/{id}
type Resource[T any] struct {
	client Doer
	name   string
	base   string
	parse  ParseFunc[T]
}

func NewResource[T any](client Doer, name, base string, parse ParseFunc[T]) *Resource[T] {
	return &Resource[T]{client: client, name: name, base: "/" + strings.Trim(base, "/"), parse: parse}
}

// Name is the resource label used in logs and metrics.
func (r *Resource[T]) Name() string { return r.name }

// Path joins escaped segments under the resource base.
func (r *Resource[T]) Path(segments ...string) string {
	var b strings.Builder
	b.WriteString(r.base)
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	return b.String()
}

// List fetches and parses a collection. A missing or null envelope is an empty list.
func (r *Resource[T]) List(ctx context.Context, path string) ([]T, error) {
	var raw []json.RawMessage
	if err := r.client.Get(ctx, r.name, path, &raw); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for i, item := range raw {
		parsed, err := r.parse(item)
		if err != nil {
			return nil, &Error{Message: fallbackDecodeMessage, Err: fmt.Errorf("%s[%d]: %w", r.name, i, err)}
		}
		out = append(out, parsed)
	}
	return out, nil
}

// GetByEstablishment lists every record attached to an establishment.
func (r *Resource[T]) GetByEstablishment(ctx context.Context, establishmentID string) ([]T, error) {
	return r.List(ctx, r.Path("etablissement", establishmentID))
}

// Get fetches one record.
func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	return r.one(ctx, func(out *json.RawMessage) error {
		return r.client.Get(ctx, r.name, r.Path(id), out)
	})
}

func (r *Resource[T]) Create(ctx context.Context, body any) (T, error) {
	return r.one(ctx, func(out *json.RawMessage) error {
		return r.client.Post(ctx, r.name, r.base, body, out)
	})
}

func (r *Resource[T]) Update(ctx context.Context, id string, body any) (T, error) {
	return r.one(ctx, func(out *json.RawMessage) error {
		return r.client.Put(ctx, r.name, r.Path(id), body, out)
	})
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.name, r.Path(id))
}

// ChangeStatus issues the narrow status-only update.
func (r *Resource[T]) ChangeStatus(ctx context.Context, id, status string) (T, error) {
	return r.one(ctx, func(out *json.RawMessage) error {
		return r.client.Patch(ctx, r.name, r.Path("status", status, id), nil, out)
	})
}

// Patch issues a partial update on a sub-path of one record.
func (r *Resource[T]) Patch(ctx context.Context, path string, body any) (T, error) {
	return r.one(ctx, func(out *json.RawMessage) error {
		return r.client.Patch(ctx, r.name, path, body, out)
	})
}

// one parses a single-record response. Endpoints that answer without a record
// yield the zero value.
func (r *Resource[T]) one(_ context.Context, call func(out *json.RawMessage) error) (T, error) {
	var zero T
	var raw json.RawMessage
	if err := call(&raw); err != nil {
		return zero, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return zero, nil
	}
	parsed, err := r.parse(raw)
	if err != nil {
		return zero, &Error{Message: fallbackDecodeMessage, Err: fmt.Errorf("%s: %w", r.name, err)}
	}
	return parsed, nil
}
