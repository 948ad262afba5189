package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atarek872/Clean-Architecture/internal/app/command"
	"github.com/atarek872/Clean-Architecture/internal/domain"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// mapErrorToStatus translates domain sentinels to HTTP status codes. Anything
// not recognized is treated as an internal error.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrNegativeStock),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, command.ErrNoUpdateFields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
