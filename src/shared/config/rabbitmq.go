package config

// RabbitMQ is optional for the remix server, a nil RabbitMQ turns off remix events
type RabbitMQ interface {
	RabbitMQConfig() (url string, queueName string)
}

var _ RabbitMQ = QueueRabbitMQ{}

type QueueRabbitMQ struct {
	URL       string
	QueueName string
}

func (q QueueRabbitMQ) RabbitMQConfig() (string, string) {
	return q.URL, q.QueueName
}
