package remixusecase

import (
	"context"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/api"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/staging"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/entity"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/errors"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/events"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/history"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/mixer"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/selector"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/separator"
	"github.com/veedubyou/stem-remixer/src/shared/lib/rabbitmq"
)

// reporting is detached from the request context and bounded by this timeout
const reportTimeout = 10 * time.Second

type Usecase struct {
	separator separator.Separator
	mixer     mixer.Mixer
	// publisher and historyStore are nil when the deployment does not configure them
	publisher    rabbitmq.Publisher
	historyStore history.Store
}

func NewUsecase(separator separator.Separator, mixer mixer.Mixer, publisher rabbitmq.Publisher, historyStore history.Store) Usecase {
	return Usecase{
		separator:    separator,
		mixer:        mixer,
		publisher:    publisher,
		historyStore: historyStore,
	}
}

// Remix runs separation, selection and mixing for a staged upload inside its scope.
// The staged upload is deleted only after the mix succeeds.
func (u Usecase) Remix(ctx context.Context, scope staging.Scope, request remixentity.RemixRequest) (remixentity.RemixOutput, *api.Error) {
	startedAt := time.Now()

	output, apiErr := u.remix(ctx, scope, request)
	u.report(newReport(scope.ID(), request, output, apiErr, startedAt))

	return output, apiErr
}

func (u Usecase) remix(ctx context.Context, scope staging.Scope, request remixentity.RemixRequest) (remixentity.RemixOutput, *api.Error) {
	logger := log.WithFields(log.Fields{
		"scopeID":    scope.ID(),
		"fileName":   request.FileName,
		"stemCount":  request.StemCount,
		"removePart": request.RemovePart,
	})

	logger.Info("Separating upload into stems")
	producedStems, err := u.separator.Separate(ctx, request.StagedPath, request.StemCount, scope.OutputDir())
	if err != nil {
		err = errors.Wrap(err, "Failed to separate the upload into stems")
		return remixentity.RemixOutput{}, api.CommitError(err,
			remixerrors.SeparationFailedCode,
			"Failed to separate the audio into stems")
	}

	logger.WithField("producedStems", producedStems).Info("Selecting stems")
	keptStems, err := selector.SelectStems(scope.StemDir(request.FileName), request.RemovePart)
	if err != nil {
		err = errors.Wrap(err, "Failed to select the stems to keep")
		return remixentity.RemixOutput{}, api.CommitError(err,
			api.DefaultErrorCode,
			"Unknown error: Failed to select the stems to remix")
	}

	if len(keptStems) == 0 {
		err := errors.Newf("No stems remain after removing %q", request.RemovePart)
		return remixentity.RemixOutput{}, api.CommitError(err,
			remixerrors.NoStemsRemainingCode,
			"No stems would remain in the remix after the removal")
	}

	inputPaths := []string{}
	for _, kept := range keptStems {
		inputPaths = append(inputPaths, kept.Path)
	}

	outputPath := scope.ProcessedPath(request.FileName)

	logger.WithField("inputCount", len(inputPaths)).Info("Mixing kept stems")
	if err := u.mixer.Mix(ctx, inputPaths, outputPath); err != nil {
		err = errors.Wrap(err, "Failed to mix the kept stems")
		return remixentity.RemixOutput{}, api.CommitError(err,
			remixerrors.MixFailedCode,
			"Failed to mix the remaining stems")
	}

	// the remix is already on disk, a leftover upload is removed with the scope later
	if err := os.Remove(request.StagedPath); err != nil {
		logger.WithError(err).Error("Failed to delete the staged upload")
	}

	logger.Info("Remix finished")
	return remixentity.RemixOutput{
		Path:         outputPath,
		DownloadName: staging.ProcessedName(request.FileName),
		MIMEType:     remixentity.MIMEType(request.FileName),
		KeptStems:    keptStems,
	}, nil
}

func newReport(requestID string, request remixentity.RemixRequest, output remixentity.RemixOutput, apiErr *api.Error, startedAt time.Time) remixentity.Report {
	report := remixentity.Report{
		RequestID:  requestID,
		FileName:   request.FileName,
		StemCount:  request.StemCount,
		RemovePart: request.RemovePart,
		KeptStems:  remixentity.KeptStemNames(output.KeptStems),
		Status:     remixentity.SucceededStatus,
		StartedAt:  startedAt,
		Duration:   time.Since(startedAt),
	}

	if apiErr != nil {
		report.Status = remixentity.FailedStatus
		report.ErrorCode = string(apiErr.ErrorCode)
	}

	return report
}

// report never fails the request, events and history are best effort
func (u Usecase) report(report remixentity.Report) {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	logger := log.WithFields(log.Fields{
		"requestID": report.RequestID,
		"status":    report.Status,
	})

	if u.publisher != nil {
		if err := remixevents.PublishFinished(ctx, u.publisher, report); err != nil {
			logger.WithError(err).Error("Failed to publish remix finished event")
		}
	}

	if u.historyStore != nil {
		if err := u.historyStore.RecordRemix(ctx, report); err != nil {
			logger.WithError(err).Error("Failed to record remix history")
		}
	}
}
