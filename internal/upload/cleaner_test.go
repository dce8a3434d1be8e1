package upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleaner_Delete(t *testing.T) {
	store := newMockS3()
	cleaner := NewCleaner(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	cleaner.Delete(context.Background(), Location{Bucket: "test-bucket", Key: "transcribe-temp/123-abc-clip.mp4"})

	assert.Equal(t, []string{"transcribe-temp/123-abc-clip.mp4"}, store.deleteKeys)
}

func TestCleaner_Delete_FailureIsSwallowed(t *testing.T) {
	store := newMockS3()
	store.deleteErr = errors.New("access denied")
	cleaner := NewCleaner(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Must not panic or propagate; cleanup is best-effort.
	cleaner.Delete(context.Background(), Location{Bucket: "test-bucket", Key: "k"})

	assert.Len(t, store.deleteKeys, 1)
}
