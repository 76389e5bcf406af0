package auth

import (
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID          uuid.UUID
	EstablishmentID string
	Role            enums.MemberRole
	JTI             string
}

// AccessTokenClaims represents the typed JWT accepted by the room-builder API.
type AccessTokenClaims struct {
	UserID          uuid.UUID        `json:"user_id"`
	EstablishmentID string           `json:"establishment_id,omitempty"`
	Role            enums.MemberRole `json:"role"`
	jwt.RegisteredClaims
}

// CanEditLayout reports whether the bearer may mutate the furniture layout.
func (c *AccessTokenClaims) CanEditLayout() bool {
	return c != nil && c.Role.CanEditLayout()
}
