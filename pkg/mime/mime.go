package mime

import (
	"net/http"
	"strings"
)

// Type is the coarse kind of a content type, used in log fields.
type Type int32

// DefaultType is used when the caller names no content types.
const DefaultType = "text/plain;charset=utf-8"

const (
	TypeUnknown Type = iota - 1

	TypeText
	TypeImage
	TypePath
	TypeAudio
	TypeVideo
	TypeBinary
)

func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeImage:
		return "image"
	case TypePath:
		return "path"
	case TypeAudio:
		return "audio"
	case TypeVideo:
		return "video"
	case TypeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// SniffLen is the most input From looks at.
const SniffLen = 512

func baseType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

// Classify maps a content type to a coarse kind. Parameters such as
// charset are ignored. X11 atom names that selections still advertise
// count as text.
func Classify(ct string) Type {
	ct = baseType(ct)

	switch {
	case ct == "":
		return TypeUnknown
	case ct == "text/uri-list":
		return TypePath
	case ct == "text", ct == "string", ct == "utf8_string":
		return TypeText
	case strings.HasPrefix(ct, "text/"):
		return TypeText
	case strings.HasPrefix(ct, "image/"):
		return TypeImage
	case strings.HasPrefix(ct, "audio/"):
		return TypeAudio
	case strings.HasPrefix(ct, "video/"):
		return TypeVideo
	default:
		return TypeBinary
	}
}

// From sniffs the leading bytes of src.
func From(src []byte) Type {
	return Classify(http.DetectContentType(src))
}
