package request

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-remixer/src/shared/lib/env"
)

func Context(c echo.Context) context.Context {
	switch env.Get() {
	case env.Production, env.Test:
		return c.Request().Context()

	case env.Development:
		// a remix can take minutes, don't let a client disconnect
		// kill spleeter in the middle of debugging
		return context.Background()

	default:
		panic("Unrecognized environment")
	}
}
