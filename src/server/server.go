package main

import (
	"strings"

	"github.com/veedubyou/stem-remixer/src/server/application"
	"github.com/veedubyou/stem-remixer/src/shared/config"
	"github.com/veedubyou/stem-remixer/src/shared/config/dev"
	"github.com/veedubyou/stem-remixer/src/shared/config/envvar"
	"github.com/veedubyou/stem-remixer/src/shared/config/local"
	"github.com/veedubyou/stem-remixer/src/shared/config/prod"
	"github.com/veedubyou/stem-remixer/src/shared/lib/env"
)

func main() {
	var appConfig application.Config

	switch env.Get() {
	case env.Production:
		commaSeparatedOrigins := envvar.MustGet(envvar.ALLOWED_FE_ORIGINS)
		allowedOrigins := strings.Split(commaSeparatedOrigins, ",")

		stagingRoot := envvar.MustGet(envvar.STAGING_ROOT_PATH)

		appConfig = application.Config{
			SpleeterBinPath:    envvar.MustGet(envvar.SPLEETER_BIN_PATH),
			FFmpegBinPath:      envvar.MustGet(envvar.FFMPEG_BIN_PATH),
			WorkingDir:         stagingRoot,
			StagingRootPath:    stagingRoot,
			CORSAllowedOrigins: allowedOrigins,
			Port:               envvar.GetOr(envvar.PORT, prod.Port),
			MaxUploadSize:      envvar.GetOr(envvar.MAX_UPLOAD_SIZE, prod.MaxUploadSize),
			Log:                true,
			DynamoConfig:       prodDynamoConfig(),
			RabbitMQConfig:     prodRabbitMQConfig(),
		}
	case env.Development:
		appConfig = application.Config{
			SpleeterBinPath:    config.SpleeterPath(),
			FFmpegBinPath:      config.FFmpegPath(),
			WorkingDir:         local.ProjectRoot(),
			StagingRootPath:    local.StagingRoot(),
			CORSAllowedOrigins: []string{"*"},
			Port:               envvar.GetOr(envvar.PORT, dev.Port),
			MaxUploadSize:      envvar.GetOr(envvar.MAX_UPLOAD_SIZE, dev.MaxUploadSize),
			Log:                true,
			DynamoConfig:       dev.DynamoConfig,
			RabbitMQConfig:     dev.RabbitMQConfig,
		}

	default:
		panic("Unexpected environment")
	}

	app := application.NewApp(appConfig)
	if err := app.Start(); err != nil {
		panic(err)
	}
}

// history and events are both optional in production, they turn on when their env vars are set
func prodDynamoConfig() config.Dynamo {
	accessKeyID := envvar.GetOr(envvar.AWS_ACCESS_KEY_ID, "")
	secretAccessKey := envvar.GetOr(envvar.AWS_SECRET_ACCESS_KEY, "")
	if accessKeyID == "" || secretAccessKey == "" {
		return nil
	}

	return config.ProdDynamo{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
		Region:          prod.DynamoDBRegion,
	}
}

func prodRabbitMQConfig() config.RabbitMQ {
	url := envvar.GetOr(envvar.RABBITMQ_URL, "")
	if url == "" {
		return nil
	}

	return config.QueueRabbitMQ{
		URL:       url,
		QueueName: envvar.MustGet(envvar.RABBITMQ_QUEUE_NAME),
	}
}
