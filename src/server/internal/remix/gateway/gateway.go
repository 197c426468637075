package remixgateway

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/api"
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/gateway"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/request"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/staging"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/usecase"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/validate"
)

const LivenessMessage = "Stem remixer is up. POST an audio file to /process-audio"

type HomeResponse struct {
	Message string `json:"message"`
}

type Gateway struct {
	usecase     remixusecase.Usecase
	stagingArea staging.Area
}

func NewGateway(usecase remixusecase.Usecase, stagingArea staging.Area) Gateway {
	return Gateway{
		usecase:     usecase,
		stagingArea: stagingArea,
	}
}

func (g Gateway) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, HomeResponse{
		Message: LivenessMessage,
	})
}

func (g Gateway) ProcessAudio(c echo.Context) error {
	ctx := request.Context(c)

	params, apiErr := remixvalidate.ParseParams(c)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	scope, err := g.stagingArea.NewScope()
	if err != nil {
		err = errors.Wrap(err, "Failed to create a staging scope")
		return gateway.ErrorResponse(c, api.CommitError(err,
			api.DefaultErrorCode,
			"Unknown error: Failed to prepare the upload"))
	}

	// nothing from this request outlives the response
	defer scope.Remove()

	remixRequest, apiErr := remixvalidate.Stage(scope, params)
	if apiErr != nil {
		return gateway.ErrorResponse(c, apiErr)
	}

	output, apiErr := g.usecase.Remix(ctx, scope, remixRequest)
	if apiErr != nil {
		apiErr = api.WrapError(apiErr, "Failed to remix upload "+remixRequest.FileName)
		return gateway.ErrorResponse(c, apiErr)
	}

	c.Response().Header().Set(echo.HeaderContentType, output.MIMEType)
	return c.Attachment(output.Path, output.DownloadName)
}
