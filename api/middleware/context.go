package middleware

import "context"

type contextKey string

const (
	ctxUserID          contextKey = "user_id"
	ctxRole            contextKey = "actor_role"
	ctxEstablishmentID contextKey = "establishment_id"
	ctxCanEdit         contextKey = "can_edit_layout"
)

func UserIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxUserID)
}

func RoleFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxRole)
}

// EstablishmentIDFromContext returns the establishment carried by the token, if any.
func EstablishmentIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxEstablishmentID)
}

func CanEditLayoutFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, _ := ctx.Value(ctxCanEdit).(bool)
	return v
}

// WithUserID injects the user identifier into the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

// WithEstablishmentID injects the establishment identifier for downstream handlers.
func WithEstablishmentID(ctx context.Context, establishmentID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxEstablishmentID, establishmentID)
}

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
