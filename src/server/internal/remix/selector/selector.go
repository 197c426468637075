package selector

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/staging"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/entity"
	"github.com/veedubyou/stem-remixer/src/shared/lib/cerr"
)

// SelectStems walks the stems in canonical order and keeps every stem file that exists,
// except the one named by removePart. The removed stem's file is deleted if it is there.
func SelectStems(stemDir string, removePart remixentity.StemName) ([]remixentity.KeptStem, error) {
	logger := log.WithFields(log.Fields{
		"stemDir":    stemDir,
		"removePart": removePart,
	})

	if removePart != remixentity.NoStem {
		if err := removeStem(stemDir, removePart); err != nil {
			return nil, err
		}
	}

	kept := []remixentity.KeptStem{}
	for _, stem := range remixentity.AllStems {
		if stem == removePart {
			continue
		}

		stemPath := stemFilePath(stemDir, stem)
		exists, err := fileExists(stemPath)
		if err != nil {
			return nil, cerr.Field("stem_path", stemPath).
				Wrap(err).Error("Failed to check if the stem file exists")
		}

		if !exists {
			continue
		}

		kept = append(kept, remixentity.KeptStem{
			Name: stem,
			Path: stemPath,
		})
	}

	logger.WithField("keptCount", len(kept)).Info("Selected stems to keep")
	return kept, nil
}

func removeStem(stemDir string, removePart remixentity.StemName) error {
	stemPath := stemFilePath(stemDir, removePart)
	logger := log.WithField("stemPath", stemPath)

	exists, err := fileExists(stemPath)
	if err != nil {
		return cerr.Field("stem_path", stemPath).
			Wrap(err).Error("Failed to check if the removed stem exists")
	}

	if !exists {
		logger.Info("Removed stem was never produced, nothing to delete")
		return nil
	}

	// the stem is left out of the mix whether or not this works
	if err := os.Remove(stemPath); err != nil {
		logger.WithError(err).Error("Failed to delete the removed stem")
		return nil
	}

	logger.Info("Deleted the removed stem")
	return nil
}

func stemFilePath(stemDir string, stem remixentity.StemName) string {
	return filepath.Join(stemDir, staging.StemFileName(string(stem)))
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return !info.IsDir(), nil
}
