package util

import (
	"net/http"
	"strings"
)

// DetectMimeType sniffs the first 512 bytes of data. A declared type is
// preferred when it names audio or video, since sniffing misses several
// container formats.
func DetectMimeType(data []byte, declared string) string {
	if IsAudio(declared) || IsVideo(declared) {
		return declared
	}
	n := len(data)
	if n > 512 {
		n = 512
	}
	detected := http.DetectContentType(data[:n])
	if detected == MimeOctetStream && declared != "" {
		return declared
	}
	return detected
}

func IsAudio(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeAudio)
}

func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeVideo) || mimeType == "application/x-mpegURL"
}
