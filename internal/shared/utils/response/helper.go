package response

import (
	"eventuraa/internal/shared/apperrors"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError maps a service error to its HTTP status and the standard
// error envelope. Every controller failure path goes through here so no
// error is silently swallowed or double-mapped.
func RespondError(c *gin.Context, err error) {
	code := apperrors.HTTPStatus(err)
	message := apperrors.PublicMessage(err)

	detail := ErrorDetail{
		Kind:    string(apperrors.KindOf(err)),
		Message: message,
	}
	if detail.Kind == "" {
		detail.Kind = "INTERNAL_ERROR"
	}

	RespondJSON(c, "error", code, message, nil, detail)
}
