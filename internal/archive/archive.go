// Package archive gates and drives archive extraction and creation.
// The mime set here is what the menus consult; the work itself is
// delegated to the system tar, unzip, and compressor tools.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// supportedTypes are the archive mimes extraction understands.
var supportedTypes = map[string]struct{}{
	"application/gzip":                  {},
	"application/x-compressed-tar":      {},
	"application/x-tar":                 {},
	"application/zip":                   {},
	"application/x-bzip":                {},
	"application/x-bzip-compressed-tar": {},
	"application/x-xz":                  {},
	"application/x-xz-compressed-tar":   {},
}

// ErrUnsupported reports a mime type extraction cannot handle.
var ErrUnsupported = errors.New("unsupported archive type")

// AllSupported reports whether every mime in the list is extractable.
// An empty list is not extractable. Menus use this to gate the
// extract-here item.
func AllSupported(mimeTypes []string) bool {
	if len(mimeTypes) == 0 {
		return false
	}
	for _, m := range mimeTypes {
		if _, ok := supportedTypes[m]; !ok {
			return false
		}
	}
	return true
}

// extractArgv maps an archive to the command that unpacks it into
// destDir. Plain compressed streams decompress next to themselves.
func extractArgv(path, mimeType, destDir string) ([]string, error) {
	switch mimeType {
	case "application/zip":
		return []string{"unzip", "-o", path, "-d", destDir}, nil
	case "application/x-tar",
		"application/x-compressed-tar",
		"application/x-bzip-compressed-tar",
		"application/x-xz-compressed-tar":
		return []string{"tar", "-xf", path, "-C", destDir}, nil
	case "application/gzip":
		return []string{"gzip", "-dk", path}, nil
	case "application/x-bzip":
		return []string{"bzip2", "-dk", path}, nil
	case "application/x-xz":
		return []string{"xz", "-dk", path}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, mimeType)
	}
}

// Extract unpacks one archive into destDir.
func Extract(ctx context.Context, path, mimeType, destDir string) error {
	argv, err := extractArgv(path, mimeType, destDir)
	if err != nil {
		return err
	}
	return run(ctx, argv)
}

// compressArgv builds the command that packs paths (living under dir)
// into the destination tarball.
func compressArgv(dir, dest string, names []string) []string {
	argv := []string{"tar", "-czf", dest, "-C", dir}
	return append(argv, names...)
}

// Compress packs the named entries of dir into a .tar.gz beside them
// and returns the archive path. The archive name derives from the
// first entry when several are packed together.
func Compress(ctx context.Context, dir string, names []string) (string, error) {
	if len(names) == 0 {
		return "", errors.New("nothing to compress")
	}
	base := strings.TrimSuffix(names[0], filepath.Ext(names[0]))
	if base == "" {
		base = names[0]
	}
	dest := filepath.Join(dir, base+".tar.gz")
	if err := run(ctx, compressArgv(dir, dest, names)); err != nil {
		return "", err
	}
	return dest, nil
}

func run(ctx context.Context, argv []string) error {
	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("%s not available: %w", argv[0], err)
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s: %w", argv[0], err)
		}
		return fmt.Errorf("%s: %s", argv[0], msg)
	}
	return nil
}
