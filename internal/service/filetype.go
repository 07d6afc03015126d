package service

import (
	"strings"

	"chmura-plikow/internal/models"
)

type mimeMapping struct {
	prefix   string
	fileType models.FileType
}

// Declaration order matters: the first prefix that matches wins, so
// "text/csv" must come before the catch-all "text/".
var mimeMappings = []mimeMapping{
	{"application/vnd.ms-excel", models.FileTypeSpreadsheet},
	{"text/csv", models.FileTypeSpreadsheet},
	{"application/pdf", models.FileTypeDoc},
	{"application/msword", models.FileTypeDoc},
	{"text/", models.FileTypeDoc},
	{"image/", models.FileTypeImage},
	{"video/", models.FileTypeVideo},
	{"music/", models.FileTypeMusic},
}

// FileTypeFromMime classifies a declared MIME type into a FileType. Unknown
// types classify as FileTypeUndefined.
func FileTypeFromMime(mimeType string) models.FileType {
	for _, m := range mimeMappings {
		if strings.HasPrefix(mimeType, m.prefix) {
			return m.fileType
		}
	}
	return models.FileTypeUndefined
}
