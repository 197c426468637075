package prod

const (
	DynamoDBRegion = "us-east-2"
	Port           = ":5000"
	MaxUploadSize  = "100M"
)
