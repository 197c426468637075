package history

import (
	"context"
	"time"

	"github.com/cockroachdb/errors/domains"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/entity"
	"github.com/veedubyou/stem-remixer/src/shared/lib/dynamo"
	"github.com/veedubyou/stem-remixer/src/shared/lib/errors/mark"
)

const RemixHistoryTable = "RemixHistory"

var (
	IDEmptyMark      = domains.New("remix_id_empty")
	DefaultErrorMark = domains.New("default_error")
)

var _ Store = DB{}

type DB struct {
	dynamoDB dynamolib.DynamoDBWrapper
}

func NewDB(dynamoDB dynamolib.DynamoDBWrapper) DB {
	return DB{
		dynamoDB: dynamoDB,
	}
}

func (d DB) RecordRemix(ctx context.Context, report remixentity.Report) error {
	if report.RequestID == "" {
		return mark.Message(IDEmptyMark, "Remix report has no request ID")
	}

	err := d.dynamoDB.Table(RemixHistoryTable).Put(toDBRecord(report)).RunWithContext(ctx)
	if err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Failed to put remix record")
	}

	return nil
}

func toDBRecord(report remixentity.Report) map[string]any {
	keptStems := []any{}
	for _, stem := range report.KeptStems {
		keptStems = append(keptStems, string(stem))
	}

	return map[string]any{
		"id":          report.RequestID,
		"filename":    report.FileName,
		"stem_count":  int(report.StemCount),
		"remove_part": string(report.RemovePart),
		"kept_stems":  keptStems,
		"status":      string(report.Status),
		"error_code":  report.ErrorCode,
		"created_at":  report.StartedAt.UTC().Format(time.RFC3339),
		"duration_ms": report.Duration.Milliseconds(),
	}
}
