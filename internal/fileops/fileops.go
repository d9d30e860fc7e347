// Package fileops holds the small synchronous copy/move helpers the
// Paste action runs. There are no queues and no progress reporting;
// callers run each helper inside a single action.
package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CopyInto copies src into dstDir, picking a collision-free name.
// It returns the destination path.
func CopyInto(src, dstDir string) (string, error) {
	fi, err := os.Stat(src)
	if err != nil {
		return "", err
	}
	dst := availableName(dstDir, filepath.Base(src))
	if fi.IsDir() {
		if err := copyDir(src, dst); err != nil {
			return "", err
		}
		return dst, nil
	}
	if err := copyFile(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// MoveInto moves src into dstDir, picking a collision-free name.
// Cross-device moves fall back to copy and remove.
func MoveInto(src, dstDir string) (string, error) {
	fi, err := os.Stat(src)
	if err != nil {
		return "", err
	}
	dst := availableName(dstDir, filepath.Base(src))
	if err := os.Rename(src, dst); err == nil {
		return dst, nil
	}
	if fi.IsDir() {
		if err := copyDir(src, dst); err != nil {
			return "", err
		}
		return dst, os.RemoveAll(src)
	}
	if err := copyFile(src, dst); err != nil {
		return "", err
	}
	return dst, os.Remove(src)
}

// availableName joins dir and name, appending " (copy)" then
// " (copy N)" before the extension until the path is unused.
func availableName(dir, name string) string {
	dst := filepath.Join(dir, name)
	if _, err := os.Lstat(dst); err != nil {
		return dst
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 0; ; n++ {
		candidate := fmt.Sprintf("%s (copy)%s", stem, ext)
		if n > 0 {
			candidate = fmt.Sprintf("%s (copy %d)%s", stem, n+1, ext)
		}
		dst = filepath.Join(dir, candidate)
		if _, err := os.Lstat(dst); err != nil {
			return dst
		}
	}
}

func copyFile(src, dst string) error {
	sf, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sf.Close()
	fi, err := sf.Stat()
	if err != nil {
		return err
	}
	df, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(df, sf); err != nil {
		df.Close()
		return err
	}
	return df.Close()
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}
