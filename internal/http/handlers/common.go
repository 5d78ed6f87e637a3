package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/predictor/internal/domain"
)

// FlexString accepts a JSON string or number and keeps its text form.
// Betting platforms send user ids and amounts both ways.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the trimmed text form
func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}

// respondError writes err as {"error": message, "code": code}
func respondError(c *gin.Context, err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError(err.Error(), err)
	}
	if requestID, exists := c.Get("request_id"); exists {
		appErr.RequestID, _ = requestID.(string)
	}
	c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
}

// respondBadRequest writes a 400 INVALID_INPUT error with message
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, domain.NewInvalidInputError(message))
}

// statusOf returns the HTTP status that respondError would use for err
func statusOf(err error) int {
	if appErr, ok := domain.IsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
