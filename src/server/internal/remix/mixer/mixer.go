package mixer

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/veedubyou/stem-remixer/src/shared/lib/cerr"
	"github.com/veedubyou/stem-remixer/src/shared/lib/executor"
)

type Mixer interface {
	Mix(ctx context.Context, inputPaths []string, outputPath string) error
}

var _ Mixer = FFmpegMixer{}

func NewFFmpegMixer(ffmpegBinPath string, workingDir string, executor executor.Executor) FFmpegMixer {
	return FFmpegMixer{
		ffmpegBinPath: ffmpegBinPath,
		workingDir:    workingDir,
		executor:      executor,
	}
}

type FFmpegMixer struct {
	ffmpegBinPath string
	workingDir    string
	executor      executor.Executor
}

func (f FFmpegMixer) Mix(ctx context.Context, inputPaths []string, outputPath string) error {
	logger := log.WithFields(log.Fields{
		"inputCount": len(inputPaths),
		"outputPath": outputPath,
	})

	invocation, err := BuildMixInvocation(inputPaths, outputPath)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to build the mix invocation")
	}

	if ctx.Err() != nil {
		return cerr.Wrap(ctx.Err()).Error("Context cancelled before mixing could happen")
	}

	errctx := cerr.Field("ffmpeg_bin_path", f.ffmpegBinPath).Field("ffmpeg_args", invocation.Args)

	logger.WithField("filter", invocation.FilterSpec).Info("Running ffmpeg command")

	cmd := f.executor.Command(f.ffmpegBinPath, invocation.Args...)
	cmd.SetDir(f.workingDir)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return errctx.Field("ffmpeg_output", string(output)).
			Wrap(err).
			Error(fmt.Sprintf("Error occurred while running ffmpeg: %s", string(output)))
	}

	logger.Debug(string(output))
	logger.Info("Finished ffmpeg command")

	return nil
}
