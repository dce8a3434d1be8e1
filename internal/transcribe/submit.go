package transcribe

import (
	"context"
	"log/slog"

	"transcribeflow/internal/errs"
)

// Submitter starts transcription jobs. One attempt per call; retrying, if
// ever wanted, is the caller's decision.
type Submitter struct {
	api          API
	languageCode string
	logger       *slog.Logger
}

func NewSubmitter(api API, languageCode string, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{api: api, languageCode: languageCode, logger: logger}
}

// Submit starts a job transcribing the media at mediaURI.
func (s *Submitter) Submit(ctx context.Context, jobName, mediaURI string) error {
	s.logger.Info("starting transcription job", "job", jobName, "media", mediaURI)
	if err := s.api.StartJob(ctx, jobName, mediaURI, s.languageCode); err != nil {
		return errs.Wrap(errs.KindTranscribe, err, "failed to start transcription job %s", jobName)
	}
	s.logger.Info("transcription job started", "job", jobName)
	return nil
}
