package handler

import (
	deliverycontext "tidewise/internal/delivery/context"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request body and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req) //nolint:wrapcheck
}

// queryError turns an echo binding failure into a validation error.
func queryError(err error) error {
	if err == nil {
		return nil
	}

	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return domainerrors.ErrValidationFailed.WithDetails("invalid query parameter " + bindErr.Field)
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

// bindPosition reads the required lat and lng query parameters.
func bindPosition(c echo.Context) (lat, lng float64, err error) {
	err = echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		BindError()

	return lat, lng, queryError(err)
}

// requestLang prefers the lang query parameter over Accept-Language.
func requestLang(c echo.Context) string {
	if lang := c.QueryParam("lang"); lang != "" {
		return lang
	}

	return c.Request().Header.Get("Accept-Language")
}

// ownBoatID returns the boat bound to the caller's token, if any.
func ownBoatID(c echo.Context) string {
	if claims := deliverycontext.GetClaims(c); claims != nil {
		return claims.BoatID
	}

	return ""
}
