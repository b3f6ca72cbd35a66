package handler

import (
	"errors"
	"net/http"

	"adaptrack/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// respondError maps the service error taxonomy to HTTP statuses and the
// flat {error, details?, code?, meta?} body shape. Validation failures keep
// the offending value and the accepted values when the service recorded
// them; store failures pass the driver's code and context through.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		body := gin.H{"error": validationErr.Reason}
		if validationErr.Received != nil {
			body["received"] = validationErr.Received
		}
		if len(validationErr.ValidValues) > 0 {
			body["validValues"] = validationErr.ValidValues
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	var notFoundErr *service.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":       notFoundErr.Error(),
			"requestedId": notFoundErr.ID,
			"type":        notFoundErr.Kind,
		})
		return
	}

	body := gin.H{"error": "persistence failure", "details": err.Error()}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		body["code"] = pgErr.Code
		body["meta"] = gin.H{
			"table":      pgErr.TableName,
			"constraint": pgErr.ConstraintName,
			"detail":     pgErr.Detail,
		}
	}
	c.JSON(http.StatusInternalServerError, body)
}
