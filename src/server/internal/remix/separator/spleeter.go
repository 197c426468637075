package separator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/staging"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/entity"
	"github.com/veedubyou/stem-remixer/src/shared/lib/cerr"
	"github.com/veedubyou/stem-remixer/src/shared/lib/executor"
)

var _ Separator = SpleeterSeparator{}

var spleeterParamMap = map[remixentity.StemCount]string{
	remixentity.TwoStems:  "spleeter:2stems",
	remixentity.FourStems: "spleeter:4stems",
	remixentity.FiveStems: "spleeter:5stems",
}

// spleeter names the non vocal half of a 2 stem split "accompaniment"
var stemAliases = map[string]remixentity.StemName{
	"accompaniment": remixentity.Other,
}

const spleeterFileFormat = "{filename}/{instrument}.{codec}"

func NewSpleeterSeparator(spleeterBinPath string, workingDir string, executor executor.Executor) SpleeterSeparator {
	return SpleeterSeparator{
		spleeterBinPath: spleeterBinPath,
		workingDir:      workingDir,
		executor:        executor,
	}
}

type SpleeterSeparator struct {
	spleeterBinPath string
	workingDir      string
	executor        executor.Executor
}

func (s SpleeterSeparator) Separate(ctx context.Context, inputPath string, stemCount remixentity.StemCount, outputDir string) ([]remixentity.StemName, error) {
	absInputPath, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Cannot convert source path to absolute format")
	}

	errctx := cerr.Field("input_path", absInputPath)

	absOutputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Cannot convert destination path to absolute format")
	}

	// splitting is a lengthy process, if we want to halt now is the time
	if ctx.Err() != nil {
		return nil, cerr.Wrap(ctx.Err()).Error("Context cancelled before splitting could happen")
	}

	if err := s.runSpleeter(absInputPath, absOutputDir, stemCount); err != nil {
		return nil, errctx.Field("output_dir", absOutputDir).
			Wrap(err).Error("Failed to execute spleeter")
	}

	stemDir := filepath.Join(absOutputDir, staging.BaseName(filepath.Base(absInputPath)))
	if err := normalizeStemNames(stemDir); err != nil {
		return nil, errctx.Field("stem_dir", stemDir).
			Wrap(err).Error("Failed to normalize stem file names")
	}

	return collectProducedStems(stemDir)
}

func (s SpleeterSeparator) runSpleeter(sourcePath string, destPath string, stemCount remixentity.StemCount) error {
	logger := log.WithFields(log.Fields{
		"sourcePath": sourcePath,
		"destPath":   destPath,
		"stemCount":  stemCount,
		"workingDir": s.workingDir,
	})

	splitParam, ok := spleeterParamMap[stemCount]
	if !ok {
		return cerr.Field("stem_count", stemCount).Error("Invalid stem count passed in!")
	}

	logger.Info("Running spleeter command")

	args := []string{"separate", "-p", splitParam, "-o", destPath, "-c", "wav", "-f", spleeterFileFormat, sourcePath}

	errctx := cerr.Field("spleeter_bin_path", s.spleeterBinPath).Field("spleeter_args", args)

	cmd := s.executor.Command(s.spleeterBinPath, args...)
	cmd.SetDir(s.workingDir)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return errctx.Field("spleeter_output", string(output)).
			Wrap(err).
			Error(fmt.Sprintf("Error occurred while running spleeter: %s", string(output)))
	}

	logger.Debug(string(output))
	logger.Info("Finished spleeter command")

	return nil
}

func normalizeStemNames(stemDir string) error {
	for alias, stem := range stemAliases {
		aliasPath := filepath.Join(stemDir, staging.StemFileName(alias))
		if _, err := os.Stat(aliasPath); err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return cerr.Field("alias_path", aliasPath).Wrap(err).Error("Failed to check for aliased stem")
		}

		stemPath := filepath.Join(stemDir, staging.StemFileName(string(stem)))
		if err := os.Rename(aliasPath, stemPath); err != nil {
			return cerr.Field("alias_path", aliasPath).Field("stem_path", stemPath).
				Wrap(err).Error("Failed to rename aliased stem")
		}
	}

	return nil
}

func collectProducedStems(stemDir string) ([]remixentity.StemName, error) {
	logger := log.WithFields(log.Fields{
		"stemDir": stemDir,
	})

	logger.Info("Reading directory to collect produced stems")

	produced := []remixentity.StemName{}
	for _, stem := range remixentity.AllStems {
		stemPath := filepath.Join(stemDir, staging.StemFileName(string(stem)))
		info, err := os.Stat(stemPath)
		switch {
		case err == nil:
			if !info.IsDir() {
				produced = append(produced, stem)
			}
		case os.IsNotExist(err):
			continue
		default:
			return nil, cerr.Field("stem_path", stemPath).Wrap(err).Error("Failed to inspect stem file")
		}
	}

	return produced, nil
}
