package remixentity

import (
	"path/filepath"
	"strings"
)

var allowedExtensions = map[string]string{
	"mp3": "audio/mpeg",
	"wav": "audio/wav",
}

// Extension returns the lower cased extension without the dot
func Extension(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
}

func IsAllowedExtension(fileName string) bool {
	_, ok := allowedExtensions[Extension(fileName)]
	return ok
}

// MIMEType is the content type of the remix, which keeps the container of the upload
func MIMEType(fileName string) string {
	mimeType, ok := allowedExtensions[Extension(fileName)]
	if !ok {
		return "application/octet-stream"
	}

	return mimeType
}

type RemixRequest struct {
	FileName   string
	StagedPath string
	StemCount  StemCount
	RemovePart StemName
}

func (r RemixRequest) HasRemoval() bool {
	return r.RemovePart != NoStem
}

type KeptStem struct {
	Name StemName
	Path string
}

type RemixOutput struct {
	Path         string
	DownloadName string
	MIMEType     string
	KeptStems    []KeptStem
}
