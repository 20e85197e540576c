package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"

	// PermissionTotalize allows forcing an order to paid without ledger proof.
	PermissionTotalize = "payments:totalize"
)

// AccessTokenClaims is the token payload issued by the identity provider.
type AccessTokenClaims struct {
	UserID      string   `json:"id"`
	Username    string   `json:"usuario"`
	Role        string   `json:"rol"`
	Permissions []string `json:"permisos,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the verified caller attached to each request.
type Principal struct {
	UserID      string
	Username    string
	Role        string
	Permissions []string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) Can(permission string) bool {
	return slices.Contains(p.Permissions, permission)
}

func (c AccessTokenClaims) Principal() Principal {
	return Principal{
		UserID:      c.UserID,
		Username:    c.Username,
		Role:        c.Role,
		Permissions: append([]string(nil), c.Permissions...),
	}
}
