package remixevents

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/entity"
	"github.com/veedubyou/stem-remixer/src/shared/lib/rabbitmq"
)

const FinishedType string = "remix_finished"

type FinishedParams struct {
	RequestID  string   `json:"request_id"`
	FileName   string   `json:"filename"`
	StemCount  int      `json:"stem_count"`
	RemovePart string   `json:"remove_part"`
	KeptStems  []string `json:"kept_stems"`
	Status     string   `json:"status"`
	ErrorCode  string   `json:"error_code"`
	DurationMS int64    `json:"duration_ms"`
}

func CreateFinishedMessage(report remixentity.Report) (amqp091.Publishing, error) {
	keptStems := []string{}
	for _, stem := range report.KeptStems {
		keptStems = append(keptStems, string(stem))
	}

	params := FinishedParams{
		RequestID:  report.RequestID,
		FileName:   report.FileName,
		StemCount:  int(report.StemCount),
		RemovePart: string(report.RemovePart),
		KeptStems:  keptStems,
		Status:     string(report.Status),
		ErrorCode:  report.ErrorCode,
		DurationMS: report.Duration.Milliseconds(),
	}

	jsonBytes, err := json.Marshal(params)
	if err != nil {
		return amqp091.Publishing{}, errors.Wrap(err, "Failed to marshal remix finished params")
	}

	return amqp091.Publishing{
		Type:      FinishedType,
		MessageId: report.RequestID,
		Timestamp: report.StartedAt,
		Body:      jsonBytes,
	}, nil
}

func PublishFinished(ctx context.Context, publisher rabbitmq.Publisher, report remixentity.Report) error {
	msg, err := CreateFinishedMessage(report)
	if err != nil {
		return errors.Wrap(err, "Failed to create remix finished message")
	}

	if err := publisher.Publish(ctx, msg); err != nil {
		return errors.Wrap(err, "Failed to publish remix finished message")
	}

	return nil
}
