package file

import (
	"os"
	"path/filepath"
	"strings"

	"transcribeflow/internal/errs"
)

// Validate checks that path names a non-empty regular file with a supported
// media extension, no larger than maxSizeBytes. It runs before the pipeline;
// the pipeline trusts this precondition.
func Validate(path string, maxSizeBytes int64, allowedExtensions []string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.New(errs.KindFile, "file does not exist: %s", path)
		}
		return errs.Wrap(errs.KindFile, err, "cannot access %s", path)
	}

	if !info.Mode().IsRegular() {
		return errs.New(errs.KindFile, "path is not a regular file: %s", path)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return errs.New(errs.KindFile, "file has no extension: %s", path)
	}
	if !extensionAllowed(ext, allowedExtensions) {
		return errs.New(errs.KindFile, "unsupported file format: %s. Supported formats: %s",
			ext, strings.Join(allowedExtensions, ", "))
	}

	if info.Size() > maxSizeBytes {
		return errs.New(errs.KindFile, "file size (%.2f MB) exceeds maximum limit of %.2f GB",
			float64(info.Size())/(1024*1024), float64(maxSizeBytes)/(1024*1024*1024))
	}
	if info.Size() == 0 {
		return errs.New(errs.KindFile, "file is empty: %s", path)
	}

	return nil
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(ext, a) {
			return true
		}
	}
	return false
}

// SaveTranscript persists the transcript text to path.
func SaveTranscript(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errs.Wrap(errs.KindFile, err, "failed to save transcript to %s", path)
	}
	return nil
}
