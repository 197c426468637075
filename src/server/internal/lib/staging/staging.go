package staging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/veedubyou/stem-remixer/src/shared/lib/cerr"
)

const (
	uploadsDirName    = "uploads"
	outputDirName     = "output"
	processedPrefix   = "processed_"
	stemFileExtension = ".wav"
)

// Area is the root that every request scope is created under
type Area struct {
	root string
}

func NewArea(root string) (Area, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Area{}, cerr.Field("root", root).
			Wrap(err).Error("Failed to generate absolute path for staging root")
	}

	if err := os.MkdirAll(absRoot, os.ModePerm); err != nil {
		return Area{}, cerr.Field("root", absRoot).
			Wrap(err).Error("Failed to create staging root")
	}

	return Area{
		root: absRoot,
	}, nil
}

func (a Area) Root() string {
	return a.root
}

// NewScope creates a directory that belongs to exactly one request,
// so two uploads with the same file name never share intermediate files
func (a Area) NewScope() (Scope, error) {
	id := uuid.New().String()
	scope := Scope{
		id:   id,
		root: filepath.Join(a.root, id),
	}

	if err := os.MkdirAll(scope.OutputDir(), os.ModePerm); err != nil {
		return Scope{}, cerr.Field("scope_root", scope.root).
			Wrap(err).Error("Failed to create the staging scope directories")
	}

	return scope, nil
}

type Scope struct {
	id   string
	root string
}

func (s Scope) ID() string {
	return s.id
}

func (s Scope) Root() string {
	return s.root
}

func (s Scope) UploadsDir() string {
	return filepath.Join(s.root, uploadsDirName)
}

func (s Scope) OutputDir() string {
	return filepath.Join(s.UploadsDir(), outputDirName)
}

func (s Scope) UploadPath(fileName string) string {
	return filepath.Join(s.UploadsDir(), fileName)
}

// StemDir is where the separation engine puts the stems of an upload
func (s Scope) StemDir(fileName string) string {
	return filepath.Join(s.OutputDir(), BaseName(fileName))
}

func (s Scope) ProcessedPath(fileName string) string {
	return filepath.Join(s.OutputDir(), ProcessedName(fileName))
}

// StageUpload copies the uploaded contents into the uploads dir and returns the staged path
func (s Scope) StageUpload(fileName string, contents io.Reader) (string, error) {
	stagedPath := s.UploadPath(fileName)
	errctx := cerr.Field("staged_path", stagedPath)

	file, err := os.Create(stagedPath)
	if err != nil {
		return "", errctx.Wrap(err).Error("Failed to create the staged upload file")
	}

	if _, err := io.Copy(file, contents); err != nil {
		_ = file.Close()
		return "", errctx.Wrap(err).Error("Failed to write the staged upload file")
	}

	if err := file.Close(); err != nil {
		return "", errctx.Wrap(err).Error("Failed to close the staged upload file")
	}

	return stagedPath, nil
}

func (s Scope) Remove() {
	if err := os.RemoveAll(s.root); err != nil {
		log.WithError(err).
			WithField("scope_root", s.root).
			Error("Failed to remove staging scope")
	}
}

func BaseName(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

func ProcessedName(fileName string) string {
	return processedPrefix + fileName
}

func StemFileName(stem string) string {
	return stem + stemFileExtension
}
