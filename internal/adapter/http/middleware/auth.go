package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fulfillment_service/internal/infrastructure/auth"
	"fulfillment_service/internal/infrastructure/config"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/pkg"
)

var (
	errMissingCredentials = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing credentials", http.StatusUnauthorized).WithKind("UNAUTHORIZED")
	errInvalidToken       = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized).WithKind("UNAUTHORIZED")
	errRoleRequired       = pkg.NewDomainErrorSimple("FORBIDDEN", "Role required", http.StatusForbidden).WithKind("FORBIDDEN")
	errPermissionRequired = pkg.NewDomainErrorSimple("FORBIDDEN", "Permission required", http.StatusForbidden).WithKind("FORBIDDEN")
)

// Auth validates a bearer token issued by the identity provider and seeds the
// request context with the caller.
func Auth(cfg config.JWTConfig, logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		token := raw
		if strings.HasPrefix(strings.ToLower(token), "bearer ") {
			token = strings.TrimSpace(token[7:])
		}
		if token == "" {
			abort(c, errMissingCredentials)
			return
		}

		claims, err := auth.ParseAccessToken(cfg, token)
		if err != nil {
			if logg != nil {
				logg.Warn(logg.WithField(c.Request.Context(), "reason", err.Error()), "auth.rejected")
			}
			abort(c, errInvalidToken)
			return
		}

		principal := claims.Principal()
		ctx := WithPrincipal(c.Request.Context(), principal)
		if logg != nil {
			ctx = logg.WithFields(ctx, map[string]any{
				"user_id":    principal.UserID,
				"actor_role": principal.Role,
			})
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFromContext(c.Request.Context()) != role {
			abort(c, errRoleRequired)
			return
		}
		c.Next()
	}
}

// RequirePermission must run after Auth.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFromContext(c.Request.Context())
		if !ok || !p.Can(permission) {
			abort(c, errPermissionRequired)
			return
		}
		c.Next()
	}
}
