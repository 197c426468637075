package history

import (
	"context"

	"github.com/veedubyou/stem-remixer/src/server/internal/remix/entity"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Store
type Store interface {
	RecordRemix(ctx context.Context, report remixentity.Report) error
}
