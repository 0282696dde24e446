package handler

import (
	"strconv"

	deliverycontext "seedshare/internal/delivery/context"
	"seedshare/internal/delivery/http/response"
	"seedshare/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request body into req and checks its validate
// tags, writing the 400 response itself on failure.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid request", validator.Messages(err))
	}

	return true, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func invalidID(c echo.Context) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid ID")
}

func invalidToken(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

func currentUserID(c echo.Context) (int64, bool) {
	return deliverycontext.GetUserID(c)
}
