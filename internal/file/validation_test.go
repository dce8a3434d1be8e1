package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transcribeflow/internal/config"
	"transcribeflow/internal/errs"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	tuning := config.DefaultTuning()

	good := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(good, []byte("data"), 0o644))
	empty := filepath.Join(dir, "empty.wav")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	wrongExt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(wrongExt, []byte("data"), 0o644))
	noExt := filepath.Join(dir, "raw")
	require.NoError(t, os.WriteFile(noExt, []byte("data"), 0o644))

	tests := []struct {
		name    string
		path    string
		maxSize int64
		wantErr string
	}{
		{
			name:    "Valid media file",
			path:    good,
			maxSize: tuning.MaxFileSizeBytes(),
		},
		{
			name:    "Uppercase extension accepted",
			path:    filepath.Join(dir, "CLIP.MP4"),
			maxSize: tuning.MaxFileSizeBytes(),
		},
		{
			name:    "Missing file",
			path:    filepath.Join(dir, "absent.mp4"),
			maxSize: tuning.MaxFileSizeBytes(),
			wantErr: "does not exist",
		},
		{
			name:    "Directory",
			path:    dir,
			maxSize: tuning.MaxFileSizeBytes(),
			wantErr: "not a regular file",
		},
		{
			name:    "Unsupported extension",
			path:    wrongExt,
			maxSize: tuning.MaxFileSizeBytes(),
			wantErr: "unsupported file format",
		},
		{
			name:    "No extension",
			path:    noExt,
			maxSize: tuning.MaxFileSizeBytes(),
			wantErr: "no extension",
		},
		{
			name:    "Empty file",
			path:    empty,
			maxSize: tuning.MaxFileSizeBytes(),
			wantErr: "empty",
		},
		{
			name:    "Over size limit",
			path:    good,
			maxSize: 1,
			wantErr: "exceeds maximum",
		},
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "CLIP.MP4"), []byte("data"), 0o644))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.path, tt.maxSize, tuning.AllowedExtensions)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, errs.KindFile, errs.KindOf(err))
		})
	}
}

func TestSaveTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, SaveTranscript(path, "test transcript"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test transcript", string(data))
}

func TestSaveTranscript_BadPath(t *testing.T) {
	err := SaveTranscript(filepath.Join(t.TempDir(), "missing", "out.txt"), "x")
	require.Error(t, err)
	assert.Equal(t, errs.KindFile, errs.KindOf(err))
}
