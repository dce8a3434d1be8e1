package pipeline

import (
	"context"
	"log/slog"

	utils "transcribeflow/internal"
	"transcribeflow/internal/errs"
	"transcribeflow/internal/transcribe"
	"transcribeflow/internal/upload"
)

// The pipeline's collaborators, narrowed to the one call each stage makes.

type Uploader interface {
	Upload(ctx context.Context, path string) (upload.Location, error)
}

type Cleaner interface {
	Delete(ctx context.Context, loc upload.Location)
}

type Submitter interface {
	Submit(ctx context.Context, jobName, mediaURI string) error
}

type Poller interface {
	Poll(ctx context.Context, jobName string) (transcribe.Status, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, resultURI string) (string, error)
}

// Pipeline sequences upload → submit → poll → fetch, then cleanup. Once the
// upload succeeded, the staged object is deleted no matter how the later
// stages end.
type Pipeline struct {
	uploader  Uploader
	cleaner   Cleaner
	submitter Submitter
	poller    Poller
	fetcher   Fetcher
	jobPrefix string
	logger    *slog.Logger
}

type Config struct {
	JobPrefix string
}

func New(uploader Uploader, cleaner Cleaner, submitter Submitter, poller Poller, fetcher Fetcher, cfg Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		uploader:  uploader,
		cleaner:   cleaner,
		submitter: submitter,
		poller:    poller,
		fetcher:   fetcher,
		jobPrefix: cfg.JobPrefix,
		logger:    logger,
	}
}

// Run transcribes the media file at mediaPath and returns the transcript
// text. The first failing stage decides the run's outcome; a job the service
// reports as failed surfaces here as an error after cleanup.
func (p *Pipeline) Run(ctx context.Context, mediaPath string) (string, error) {
	loc, err := p.uploader.Upload(ctx, mediaPath)
	if err != nil {
		return "", err
	}
	defer p.cleaner.Delete(ctx, loc)

	jobName := utils.GenerateJobName(p.jobPrefix, mediaPath)
	if err := p.submitter.Submit(ctx, jobName, loc.URI()); err != nil {
		return "", err
	}

	status, err := p.poller.Poll(ctx, jobName)
	if err != nil {
		return "", err
	}
	if !status.Completed {
		return "", errs.New(errs.KindTranscribe, "transcription failed: %s", status.Reason)
	}
	p.logger.Info("transcription completed", "job", jobName, "result", status.ResultURI)

	return p.fetcher.Fetch(ctx, status.ResultURI)
}
