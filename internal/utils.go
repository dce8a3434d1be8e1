package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateObjectKey builds a staging key unique across runs:
// <prefix>/<unix-timestamp>-<short-uuid>-<filename>. The uuid fragment guards
// against two runs starting within the same second.
func GenerateObjectKey(prefix, filePath string) string {
	return fmt.Sprintf("%s/%d-%s-%s",
		prefix, time.Now().Unix(), shortID(), filepath.Base(filePath))
}

// GenerateJobName builds a transcription job name unique across runs:
// <prefix>-<unix-timestamp>-<short-uuid>-<filename-stem>.
func GenerateJobName(prefix, filePath string) string {
	stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return fmt.Sprintf("%s-%d-%s-%s", prefix, time.Now().Unix(), shortID(), stem)
}

func shortID() string {
	return uuid.NewString()[:8]
}
