// Package filex provides small filename helpers shared by the pipeline and
// the folder services.
package filex

import (
	"path/filepath"
	"strings"
)

// OctetStream is the fallback MIME type for unknown extensions.
const OctetStream = "application/octet-stream"

var mimeByExt = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".txt":  "text/plain",
	".csv":  "text/csv",
	".json": "application/json",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".mp3":  "audio/mpeg",
	".mp4":  "video/mp4",
	".zip":  "application/zip",
}

// MIMEByName infers a display MIME type from a filename's extension.
// Unknown or missing extensions fall back to application/octet-stream.
func MIMEByName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := mimeByExt[ext]; ok {
		return mt
	}
	return OctetStream
}
