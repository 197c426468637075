package application

import (
	"net/http"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/api"
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/gateway"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/staging"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/errors"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/gateway"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/history"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/mixer"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/separator"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/usecase"
	"github.com/veedubyou/stem-remixer/src/shared/config"
	"github.com/veedubyou/stem-remixer/src/shared/lib/dynamo"
	"github.com/veedubyou/stem-remixer/src/shared/lib/executor"
	"github.com/veedubyou/stem-remixer/src/shared/lib/rabbitmq"
)

type HTTPMethod string

const (
	GET  HTTPMethod = "GET"
	POST HTTPMethod = "POST"
)

type App struct {
	echo      *echo.Echo
	port      string
	publisher *rabbitmq.QueuePublisher
}

type Config struct {
	SpleeterBinPath    string
	FFmpegBinPath      string
	WorkingDir         string
	StagingRootPath    string
	CORSAllowedOrigins []string
	Port               string
	MaxUploadSize      string
	Log                bool

	// optional, nil turns the remix history off
	DynamoConfig config.Dynamo
	// optional, nil turns the remix events off
	RabbitMQConfig config.RabbitMQ
	// optional, runs the real binaries when nil
	Executor executor.Executor
}

func NewApp(config Config) App {
	e := echo.New()
	e.HTTPErrorHandler = makeHTTPErrorHandler(e)

	if config.Log {
		e.Use(middleware.Logger())
	}

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(config.MaxUploadSize))

	corsMiddleware := makeCorsMiddleware(config)

	handleRoute := func(method HTTPMethod, path string, handlerFunc echo.HandlerFunc) {
		params := func() (string, echo.HandlerFunc, echo.MiddlewareFunc) {
			return path, handlerFunc, corsMiddleware
		}

		e.OPTIONS(params())

		switch method {
		case GET:
			e.GET(params())
		case POST:
			e.POST(params())
		default:
			panic("unhandled http method!")
		}
	}

	publisher := makeRabbitMQPublisher(config.RabbitMQConfig)
	remixGateway := makeRemixGateway(config, publisher)

	// health check
	handleRoute(GET, "/health-check", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	handleRoute(GET, "/", remixGateway.Home)
	handleRoute(POST, "/process-audio", remixGateway.ProcessAudio)

	return App{
		echo:      e,
		port:      config.Port,
		publisher: publisher,
	}
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.echo.ServeHTTP(w, r)
}

func (a *App) Start() error {
	err := a.echo.Start(a.port)
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "Couldn't start echo server")
	}

	return nil
}

func (a *App) Stop() error {
	err := a.echo.Close()
	if err != nil {
		return errors.Wrap(err, "Failed to stop echo server")
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			return errors.Wrap(err, "Failed to close rabbitMQ publisher")
		}
	}

	return nil
}

func makeRabbitMQPublisher(rabbitMQConfig config.RabbitMQ) *rabbitmq.QueuePublisher {
	if rabbitMQConfig == nil {
		log.Info("No RabbitMQ configured, remix events are off")
		return nil
	}

	url, queueName := rabbitMQConfig.RabbitMQConfig()
	publisher, err := rabbitmq.NewQueuePublisher(url, queueName)
	if err != nil {
		panic(errors.Wrap(err, "Failed to create rabbitMQ publisher"))
	}

	return publisher
}

func makeHistoryStore(dynamoConfig config.Dynamo) history.Store {
	if dynamoConfig == nil {
		log.Info("No DynamoDB configured, remix history is off")
		return nil
	}

	dynamoDB := dynamolib.NewDynamoDB(dynamoConfig)
	return history.NewDB(dynamoDB)
}

func makeRemixUsecase(config Config, publisher *rabbitmq.QueuePublisher) remixusecase.Usecase {
	cmdExecutor := config.Executor
	if cmdExecutor == nil {
		cmdExecutor = executor.BinaryFileExecutor{}
	}

	spleeter := separator.NewSpleeterSeparator(config.SpleeterBinPath, config.WorkingDir, cmdExecutor)
	ffmpeg := mixer.NewFFmpegMixer(config.FFmpegBinPath, config.WorkingDir, cmdExecutor)

	// a nil pointer inside the interface would not read as nil to the usecase
	var eventPublisher rabbitmq.Publisher
	if publisher != nil {
		eventPublisher = publisher
	}

	return remixusecase.NewUsecase(spleeter, ffmpeg, eventPublisher, makeHistoryStore(config.DynamoConfig))
}

func makeRemixGateway(config Config, publisher *rabbitmq.QueuePublisher) remixgateway.Gateway {
	stagingArea, err := staging.NewArea(config.StagingRootPath)
	if err != nil {
		panic(errors.Wrap(err, "Failed to prepare the staging area"))
	}

	remixUsecase := makeRemixUsecase(config, publisher)
	return remixgateway.NewGateway(remixUsecase, stagingArea)
}

func makeCorsMiddleware(config Config) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderContentType},
	})
}

// makeHTTPErrorHandler renders everything that escapes a handler in the same JSON shape as the gateways
func makeHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apiErr *api.Error

		httpErr := &echo.HTTPError{}
		switch {
		case errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge:
			apiErr = api.CommitError(err,
				remixerrors.UploadTooLargeCode,
				"The uploaded file is too large")

		case errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError:
			// routing errors like 404 and 405 keep echo's own response
			e.DefaultHTTPErrorHandler(err, c)
			return

		default:
			apiErr = api.CommitError(err,
				api.DefaultErrorCode,
				"Unknown error: Please contact the developer")
		}

		if respErr := gateway.ErrorResponse(c, apiErr); respErr != nil {
			log.WithError(respErr).Error("Failed to write the error response")
		}
	}
}
