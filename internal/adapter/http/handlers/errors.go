package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).WithKind(string(entities.KindInvalidArgument))
	errInvalidOrdinal = pkg.NewDomainErrorSimple("INVALID_STAGE_ORDINAL", "Stage ordinal must be a positive integer", http.StatusBadRequest).WithKind(string(entities.KindInvalidArgument))
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing credentials", http.StatusUnauthorized).WithKind("UNAUTHORIZED")
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapKindError is the fallback used by every handler once its specific
// sentinels are exhausted.
func mapKindError(err error) *pkg.AppError {
	kind := entities.KindOf(err)
	switch kind {
	case entities.KindInvalidArgument:
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest).WithKind(string(kind))
	case entities.KindNotFound:
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound).WithKind(string(kind))
	case entities.KindConflict:
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict).WithKind(string(kind))
	case entities.KindStorageFailure:
		return pkg.NewDomainError("STORAGE_FAILURE", "The document store is unavailable", err, http.StatusServiceUnavailable).WithKind(string(kind))
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError).WithKind(string(entities.KindInternal))
	}
}

func coded(code string, status int, err error) *pkg.AppError {
	return pkg.NewDomainError(code, err.Error(), err, status).WithKind(string(entities.KindOf(err)))
}

func parseOrdinal(c *gin.Context) (int, bool) {
	ordinal, err := strconv.Atoi(c.Param("ordinal"))
	if err != nil || ordinal <= 0 {
		return 0, false
	}
	return ordinal, true
}
