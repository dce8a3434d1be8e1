package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	utils "transcribeflow/internal"
	"transcribeflow/internal/errs"
	"transcribeflow/internal/progress"
	"transcribeflow/internal/s3"
)

// readChunkSize is how much the single-shot path reads per iteration, so the
// progress bar moves while the file is buffered.
const readChunkSize = 64 * 1024

// Location identifies where the staged file lives in the object store.
type Location struct {
	Bucket string
	Key    string
}

func (l Location) URI() string {
	return fmt.Sprintf("s3://%s/%s", l.Bucket, l.Key)
}

type Config struct {
	Bucket             string
	KeyPrefix          string
	MultipartThreshold int64
	PartSize           int64

	// NewTracker overrides progress rendering; tests use progress.Discard.
	NewTracker func(total int64, label string) *progress.Tracker
}

// Uploader stages a local media file into the object store, picking a
// single-shot or multipart transfer by file size.
type Uploader struct {
	store      S3API
	cfg        Config
	logger     *slog.Logger
	newTracker func(total int64, label string) *progress.Tracker
}

func NewUploader(store S3API, cfg Config, logger *slog.Logger) *Uploader {
	if logger == nil {
		logger = slog.Default()
	}
	newTracker := cfg.NewTracker
	if newTracker == nil {
		newTracker = progress.NewTracker
	}
	return &Uploader{
		store:      store,
		cfg:        cfg,
		logger:     logger,
		newTracker: newTracker,
	}
}

// Upload transfers the file at path and returns its staged location.
func (u *Uploader) Upload(ctx context.Context, path string) (Location, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Location{}, errs.Wrap(errs.KindFile, err, "cannot stat %s", path)
	}

	key := utils.GenerateObjectKey(u.cfg.KeyPrefix, path)
	loc := Location{Bucket: u.cfg.Bucket, Key: key}
	u.logger.Info("uploading file to S3", "uri", loc.URI(), "size_bytes", info.Size())

	plan := DeterminePlan(info.Size(), u.cfg.MultipartThreshold, u.cfg.PartSize)
	switch plan.Kind {
	case PlanMultipart:
		err = u.uploadMultipart(ctx, key, path, info.Size(), plan.PartSize)
	default:
		err = u.uploadSingle(ctx, key, path, info.Size())
	}
	if err != nil {
		return Location{}, err
	}
	return loc, nil
}

func (u *Uploader) uploadSingle(ctx context.Context, key, path string, size int64) error {
	tracker := u.newTracker(size, filepath.Base(path))

	file, err := os.Open(path)
	if err != nil {
		tracker.Abandon()
		return errs.Wrap(errs.KindFile, err, "cannot open %s", path)
	}
	defer file.Close()

	body := make([]byte, 0, size)
	chunk := make([]byte, readChunkSize)
	for {
		n, rerr := file.Read(chunk)
		if n > 0 {
			body = append(body, chunk[:n]...)
			tracker.Advance(int64(n))
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			tracker.Abandon()
			return errs.Wrap(errs.KindFile, rerr, "cannot read %s", path)
		}
	}

	if err := u.store.PutObject(ctx, key, bytes.NewReader(body)); err != nil {
		tracker.Abandon()
		return errs.Wrap(errs.KindS3, err, "failed to upload file to S3")
	}
	tracker.Finish()
	return nil
}

func (u *Uploader) uploadMultipart(ctx context.Context, key, path string, size, partSize int64) error {
	tracker := u.newTracker(size, filepath.Base(path))

	file, err := os.Open(path)
	if err != nil {
		tracker.Abandon()
		return errs.Wrap(errs.KindFile, err, "cannot open %s", path)
	}
	defer file.Close()

	uploadID, err := u.store.CreateMultipartUpload(ctx, key)
	if err != nil {
		tracker.Abandon()
		return errs.Wrap(errs.KindS3, err, "failed to create multipart upload")
	}

	sess := &session{key: key, id: uploadID}
	buf := make([]byte, partSize)
	partNumber := int32(1)
	for {
		// Read up to partSize bytes; the final part may come up short.
		n, rerr := io.ReadFull(file, buf)
		if rerr == io.EOF {
			break
		}
		if rerr != nil && rerr != io.ErrUnexpectedEOF {
			tracker.Abandon()
			u.abortDetached(sess)
			return errs.Wrap(errs.KindFile, rerr, "cannot read %s", path)
		}

		etag, uerr := u.store.UploadPart(ctx, key, uploadID, partNumber, bytes.NewReader(buf[:n]))
		if uerr != nil {
			tracker.Abandon()
			u.abortDetached(sess)
			return errs.Wrap(errs.KindS3, uerr, "failed to upload part %d", partNumber)
		}
		sess.record(partNumber, etag, int64(n))
		tracker.Advance(int64(n))
		partNumber++

		if rerr == io.ErrUnexpectedEOF {
			break
		}
	}

	if len(sess.parts) == 0 {
		tracker.Abandon()
		u.abort(context.Background(), sess)
		return errs.New(errs.KindS3, "no parts were successfully uploaded")
	}

	if err := u.store.CompleteMultipartUpload(ctx, key, uploadID, sess.parts); err != nil {
		tracker.Abandon()
		u.abort(context.Background(), sess)
		return errs.Wrap(errs.KindS3, err, "failed to complete multipart upload")
	}
	tracker.Finish()
	return nil
}

// abortDetached fires the session abort without blocking error propagation.
// Its outcome is only logged.
func (u *Uploader) abortDetached(sess *session) {
	go u.abort(context.Background(), sess)
}

func (u *Uploader) abort(ctx context.Context, sess *session) {
	if err := u.store.AbortMultipartUpload(ctx, sess.key, sess.id); err != nil {
		u.logger.Warn("failed to abort multipart upload",
			"key", sess.key, "upload_id", sess.id, "error", err)
	}
}

// session tracks one in-flight multipart transfer: the server-side upload
// identifier, the completed parts in order, and the running byte offset.
type session struct {
	key    string
	id     string
	parts  []s3.PartInfo
	offset int64
}

func (s *session) record(partNumber int32, etag string, n int64) {
	s.parts = append(s.parts, s3.PartInfo{ETag: etag, PartNumber: int(partNumber)})
	s.offset += n
}
