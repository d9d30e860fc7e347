// Package mimetype guesses mime types from file names. Classification
// is by extension only; nothing here reads file contents.
package mimetype

import (
	"mime"
	"path/filepath"
	"strings"
)

// Directory is the mime type reported for directories.
const Directory = "inode/directory"

// Unknown is the fallback type when no extension matches.
const Unknown = "application/octet-stream"

// compound extensions must match before the plain extension table.
var compound = []struct {
	suffix string
	mime   string
}{
	{".tar.gz", "application/x-compressed-tar"},
	{".tar.bz2", "application/x-bzip-compressed-tar"},
	{".tar.xz", "application/x-xz-compressed-tar"},
}

var byExtension = map[string]string{
	".tgz":     "application/x-compressed-tar",
	".tbz2":    "application/x-bzip-compressed-tar",
	".txz":     "application/x-xz-compressed-tar",
	".tar":     "application/x-tar",
	".gz":      "application/gzip",
	".bz2":     "application/x-bzip",
	".xz":      "application/x-xz",
	".zip":     "application/zip",
	".go":      "text/x-go",
	".rs":      "text/x-rust",
	".py":      "text/x-python",
	".c":       "text/x-c",
	".h":       "text/x-c",
	".sh":      "text/x-shellscript",
	".md":      "text/markdown",
	".txt":     "text/plain",
	".log":     "text/plain",
	".toml":    "application/toml",
	".yaml":    "application/yaml",
	".yml":     "application/yaml",
	".flac":    "audio/flac",
	".mkv":     "video/x-matroska",
	".desktop": "application/x-desktop",
}

// ForName guesses the mime type of a file name. Directories are
// always inode/directory regardless of name.
func ForName(name string, dir bool) string {
	if dir {
		return Directory
	}
	lower := strings.ToLower(name)
	for _, c := range compound {
		if strings.HasSuffix(lower, c.suffix) {
			return c.mime
		}
	}
	ext := filepath.Ext(lower)
	if ext == "" {
		return Unknown
	}
	if t, ok := byExtension[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		return t
	}
	return Unknown
}

// IconName maps a mime type to the themed icon drawn next to it in
// listings.
func IconName(mimeType string) string {
	switch {
	case mimeType == Directory:
		return "folder-symbolic"
	case strings.HasPrefix(mimeType, "image/"):
		return "image-x-generic-symbolic"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio-x-generic-symbolic"
	case strings.HasPrefix(mimeType, "video/"):
		return "video-x-generic-symbolic"
	case strings.HasPrefix(mimeType, "font/"):
		return "font-x-generic-symbolic"
	case strings.HasPrefix(mimeType, "text/"):
		return "text-x-generic-symbolic"
	case mimeType == "application/x-executable" || mimeType == "application/x-sharedlib":
		return "application-x-executable-symbolic"
	case isArchive(mimeType):
		return "package-x-generic-symbolic"
	default:
		return "application-x-generic-symbolic"
	}
}

func isArchive(mimeType string) bool {
	switch mimeType {
	case "application/gzip",
		"application/x-compressed-tar",
		"application/x-tar",
		"application/zip",
		"application/x-bzip",
		"application/x-bzip-compressed-tar",
		"application/x-xz",
		"application/x-xz-compressed-tar":
		return true
	}
	return false
}
