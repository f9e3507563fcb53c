package valueobjects

import (
	"fmt"
	"path"
	"strings"
)

type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

var validMediaTypes = map[MediaType]bool{
	MediaImage:    true,
	MediaVideo:    true,
	MediaDocument: true,
}

func (m MediaType) String() string {
	return string(m)
}

func (m MediaType) IsValid() bool {
	return validMediaTypes[m]
}

func NewMediaType(s string) (MediaType, error) {
	v := MediaType(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid media type: %s", s)
	}
	return v, nil
}

var extensionTypes = map[string]MediaType{
	"jpg": MediaImage, "jpeg": MediaImage, "png": MediaImage, "gif": MediaImage, "webp": MediaImage, "svg": MediaImage,
	"mp4": MediaVideo, "mov": MediaVideo, "webm": MediaVideo, "avi": MediaVideo, "mkv": MediaVideo,
}

// MediaTypeFor guesses the type from the file extension. Unknown
// extensions are documents.
func MediaTypeFor(name string) MediaType {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return MediaDocument
}
