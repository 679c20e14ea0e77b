// Package fileutil provides file reading helpers shared by the converter
// and the catalog scanner.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// ReadTextFile reads the whole file at path into a string. Files ending in
// .xz are decompressed transparently, so sources may be stored compressed
// without the rest of the pipeline knowing.
func ReadTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("xz reader for %s: %w", path, err)
		}
		reader = xzr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), nil
}
