package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pinflow/internal/domain"
)

// respondError maps domain errors onto HTTP statuses: validation
// problems are the client's fault, upstream failures are a bad
// gateway, everything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	var (
		notFound   *domain.NotFoundError
		validation *domain.ValidationError
		upstream   *domain.UpstreamError
		fetch      *domain.FetchError
	)

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "field": validation.Field})
	case errors.Is(err, domain.ErrNoURLsFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &upstream), errors.As(err, &fetch):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
