package storage

import (
	"mime"
	"path"
	"strings"
)

// MIMEOctetStream is returned when no type is known for an extension.
const MIMEOctetStream = "application/octet-stream"

// knownTypes pins the types of the artifacts the site serves so responses do
// not depend on the host's mime.types database.
var knownTypes = map[string]string{
	".json": "application/json",
	".arb":  "application/json",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".txt":  "text/plain; charset=utf-8",
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".webp": "image/webp",
}

// ContentTypeByName returns the MIME type for a file name or key based on
// its extension. Unknown extensions yield MIMEOctetStream.
func ContentTypeByName(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return MIMEOctetStream
	}
	if ct, ok := knownTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return MIMEOctetStream
}
