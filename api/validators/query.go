package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
)

// ParseQueryBool reads a boolean query parameter; absent means defaultVal.
func ParseQueryBool(r *http.Request, key string, defaultVal bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a boolean").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParseQueryChoice reads a case-insensitive query parameter restricted to
// allowed; absent means allowed[0].
func ParseQueryChoice(r *http.Request, key string, allowed ...string) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	if raw == "" && len(allowed) > 0 {
		return allowed[0], nil
	}
	for _, candidate := range allowed {
		if raw == candidate {
			return candidate, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter not allowed").WithDetails(map[string]any{"field": key, "allowed": allowed})
}
