package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/villagef/splot-ani-server/pkg/errs"
)

// Envelope is the body of every non-GraphQL route. RequestID echoes the
// X-Request-ID response header.
type Envelope struct {
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:    "success",
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

func WriteErrorResponse(c echo.Context, err error, details interface{}) error {
	return c.JSON(errs.GetErrorStatusCode(err), Envelope{
		Status:    "error",
		Message:   err.Error(),
		Errors:    details,
		RequestID: requestID(c),
	})
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
