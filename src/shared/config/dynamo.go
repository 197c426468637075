package config

// Dynamo is optional for the remix server, a nil Dynamo turns off the remix history
type Dynamo interface {
	DynamoConfig()
}

var _ Dynamo = ProdDynamo{}

type ProdDynamo struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

func (p ProdDynamo) DynamoConfig() {}

var _ Dynamo = LocalDynamo{}

type LocalDynamo struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Host            string
}

func (l LocalDynamo) DynamoConfig() {}
