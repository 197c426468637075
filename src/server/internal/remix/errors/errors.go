package remixerrors

import (
	"github.com/veedubyou/stem-remixer/src/server/internal/errors/api"
)

const (
	MissingFileCode          = api.ErrorCode("missing_file")
	UnsupportedExtensionCode = api.ErrorCode("unsupported_extension")
	InvalidStemCountCode     = api.ErrorCode("invalid_stem_count")
	InvalidRemovePartCode    = api.ErrorCode("invalid_remove_part")
	NoStemsRemainingCode     = api.ErrorCode("no_stems_remaining")
	UploadTooLargeCode       = api.ErrorCode("upload_too_large")
	SeparationFailedCode     = api.ErrorCode("separation_failed")
	MixFailedCode            = api.ErrorCode("mix_failed")
)
