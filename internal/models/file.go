package models

// FileType is a coarse classification of an uploaded file, derived from its
// declared MIME type.
type FileType string

const (
	FileTypeImage       FileType = "image"
	FileTypeDoc         FileType = "doc"
	FileTypeSpreadsheet FileType = "spreadsheet"
	FileTypeVideo       FileType = "video"
	FileTypeMusic       FileType = "music"
	FileTypeUndefined   FileType = "undefined"
)

// FileMetadata describes an uploaded file. The binary payload lives in a
// FileContent record under the same ID; the two are written and deleted as a
// pair.
type FileMetadata struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	FileType  FileType `json:"file_type"`
	SizeBytes int64    `json:"size_bytes"`
	ParentID  string   `json:"parent_id"`
	OwnerID   string   `json:"owner_id"`
}

func (f FileMetadata) Key() string { return f.ID }

// FileContent is the binary payload of a file, keyed by the file ID.
type FileContent struct {
	ID   string `json:"id"`
	Data []byte `json:"-"`
}

func (c FileContent) Key() string { return c.ID }
