package remixvalidate

import (
	"mime/multipart"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/api"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/sanitize"
	"github.com/veedubyou/stem-remixer/src/server/internal/lib/staging"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/entity"
	"github.com/veedubyou/stem-remixer/src/server/internal/remix/errors"
)

const (
	FileField       = "file"
	StemsField      = "stems"
	RemovePartField = "remove_part"
)

// Params are the checked form values of a remix request, nothing has been written to disk yet
type Params struct {
	Upload     *multipart.FileHeader
	FileName   string
	StemCount  remixentity.StemCount
	RemovePart remixentity.StemName
}

func ParseParams(c echo.Context) (Params, *api.Error) {
	upload, apiErr := parseUpload(c)
	if apiErr != nil {
		return Params{}, apiErr
	}

	fileName, apiErr := parseFileName(upload.Filename)
	if apiErr != nil {
		return Params{}, apiErr
	}

	stemCount, err := remixentity.ParseStemCount(c.FormValue(StemsField))
	if err != nil {
		return Params{}, api.CommitError(err,
			remixerrors.InvalidStemCountCode,
			"The stems parameter must be one of 2, 4 or 5")
	}

	removePart, err := parseRemovePart(c.FormValue(RemovePartField))
	if err != nil {
		return Params{}, api.CommitError(err,
			remixerrors.InvalidRemovePartCode,
			"The remove_part parameter must be one of vocals, bass, drums, other or piano")
	}

	return Params{
		Upload:     upload,
		FileName:   fileName,
		StemCount:  stemCount,
		RemovePart: removePart,
	}, nil
}

// an empty remove_part means nothing is removed
func parseRemovePart(val string) (remixentity.StemName, error) {
	if val == "" {
		return remixentity.NoStem, nil
	}

	return remixentity.ParseStemName(val)
}

func parseUpload(c echo.Context) (*multipart.FileHeader, *api.Error) {
	upload, err := c.FormFile(FileField)
	if err != nil {
		err = errors.Wrap(err, "Failed to read the uploaded file from the form")
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return nil, api.CommitError(err,
				remixerrors.UploadTooLargeCode,
				"The uploaded file is too large")
		}

		return nil, api.CommitError(err,
			remixerrors.MissingFileCode,
			"No file was uploaded")
	}

	if upload.Filename == "" {
		return nil, api.CommitError(errors.New("Uploaded file has no name"),
			remixerrors.MissingFileCode,
			"No file was uploaded")
	}

	return upload, nil
}

func parseFileName(uploadName string) (string, *api.Error) {
	unsupported := func(msg string) *api.Error {
		err := errors.Newf("%s: %q", msg, uploadName)
		return api.CommitError(err,
			remixerrors.UnsupportedExtensionCode,
			"Only mp3 and wav files are supported")
	}

	if !remixentity.IsAllowedExtension(uploadName) {
		return "", unsupported("Upload has an unsupported extension")
	}

	fileName := sanitize.Filename(uploadName)
	if !remixentity.IsAllowedExtension(fileName) || staging.BaseName(fileName) == "" {
		return "", unsupported("Sanitized upload name is not usable")
	}

	return fileName, nil
}

// Stage writes the upload into the scope, after every parameter has passed
func Stage(scope staging.Scope, params Params) (remixentity.RemixRequest, *api.Error) {
	file, err := params.Upload.Open()
	if err != nil {
		err = errors.Wrap(err, "Failed to open the uploaded file")
		return remixentity.RemixRequest{}, api.CommitError(err,
			api.DefaultErrorCode,
			"Unknown error: Failed to read the uploaded file")
	}

	defer file.Close()

	stagedPath, err := scope.StageUpload(params.FileName, file)
	if err != nil {
		err = errors.Wrap(err, "Failed to stage the uploaded file")
		return remixentity.RemixRequest{}, api.CommitError(err,
			api.DefaultErrorCode,
			"Unknown error: Failed to store the uploaded file")
	}

	return remixentity.RemixRequest{
		FileName:   params.FileName,
		StagedPath: stagedPath,
		StemCount:  params.StemCount,
		RemovePart: params.RemovePart,
	}, nil
}
