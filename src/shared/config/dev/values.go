package dev

import "github.com/veedubyou/stem-remixer/src/shared/config"

// DynamoDB
const (
	DynamoAccessKeyID     = "local"
	DynamoSecretAccessKey = "local"
	DynamoDBHost          = "http://localhost:8000"
	DynamoDBRegion        = "localhost"
)

var DynamoConfig = config.LocalDynamo{
	AccessKeyID:     DynamoAccessKeyID,
	SecretAccessKey: DynamoSecretAccessKey,
	Region:          DynamoDBRegion,
	Host:            DynamoDBHost,
}

// RabbitMQ
const (
	RabbitMQHost      = "amqp://localhost:5672"
	RabbitMQQueueName = "stem-remixer-events-dev"
)

var RabbitMQConfig = config.QueueRabbitMQ{
	URL:       RabbitMQHost,
	QueueName: RabbitMQQueueName,
}

// Server
const (
	Port          = ":5000"
	MaxUploadSize = "100M"
)
