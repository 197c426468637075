package envvar

import (
	"fmt"
	"os"
)

const (
	ENVIRONMENT           = "ENVIRONMENT"
	PORT                  = "PORT"
	ALLOWED_FE_ORIGINS    = "ALLOWED_FE_ORIGINS"
	MAX_UPLOAD_SIZE       = "MAX_UPLOAD_SIZE"
	AWS_ACCESS_KEY_ID     = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY = "AWS_SECRET_ACCESS_KEY"
	RABBITMQ_URL          = "RABBITMQ_URL"
	RABBITMQ_QUEUE_NAME   = "RABBITMQ_QUEUE_NAME"
	SPLEETER_BIN_PATH     = "SPLEETER_BIN_PATH"
	FFMPEG_BIN_PATH       = "FFMPEG_BIN_PATH"
	STAGING_ROOT_PATH     = "STAGING_ROOT_PATH"
)

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}

// GetOr is for settings that are allowed to be left out
func GetOr(key string, fallback string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet || val == "" {
		return fallback
	}

	return val
}
