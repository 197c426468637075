package gateway

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-remixer/src/server/api_error"
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/api"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/errors"
	"github.com/veedubyou/stem-remixer/src/shared/lib/cerr"
	"github.com/veedubyou/stem-remixer/src/shared/lib/env"
)

var httpStatusCodeMap = map[api.ErrorCode]int{
	api.DefaultErrorCode:                 http.StatusInternalServerError,
	remixerrors.MissingFileCode:          http.StatusBadRequest,
	remixerrors.UnsupportedExtensionCode: http.StatusBadRequest,
	remixerrors.InvalidStemCountCode:     http.StatusBadRequest,
	remixerrors.InvalidRemovePartCode:    http.StatusBadRequest,
	remixerrors.NoStemsRemainingCode:     http.StatusBadRequest,
	remixerrors.UploadTooLargeCode:       http.StatusRequestEntityTooLarge,
	remixerrors.SeparationFailedCode:     http.StatusInternalServerError,
	remixerrors.MixFailedCode:            http.StatusInternalServerError,
}

func StatusCode(errorCode api.ErrorCode) int {
	statusCode, ok := httpStatusCodeMap[errorCode]
	if !ok {
		msg := fmt.Sprintf("Error code %s has no HTTP status code mapping", errorCode)
		panic(msg)
	}

	return statusCode
}

func ErrorResponse(c echo.Context, err *api.Error) error {
	statusCode := StatusCode(err.ErrorCode)

	if statusCode >= http.StatusInternalServerError && err.InternalError != nil {
		cerr.Log(err.InternalError)
	}

	return c.JSON(statusCode, api_error.JSONAPIError{
		Error:        err.UserMessage,
		Code:         string(err.ErrorCode),
		ErrorDetails: errorDetails(err),
	})
}

// internals are only handed out where nobody outside can read them
func errorDetails(err *api.Error) string {
	if env.Get() == env.Production {
		return ""
	}

	return err.Error()
}
