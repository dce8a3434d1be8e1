package transcribe

import (
	"context"
	"log/slog"
	"time"

	"transcribeflow/internal/errs"
)

// defaultFailureReason stands in when the service reports a failed job
// without saying why.
const defaultFailureReason = "Unknown failure reason"

// Status is the terminal outcome of a transcription job. A failed job is a
// legitimate business result, so it comes back as a value, not an error;
// in-progress never escapes the poller.
type Status struct {
	Completed bool
	ResultURI string // set when the job completed
	Reason    string // set when the job failed
}

type PollConfig struct {
	InitialWait time.Duration
	MaxWait     time.Duration
	MaxAttempts int
}

func DefaultPollConfig() PollConfig {
	return PollConfig{
		InitialWait: 5 * time.Second,
		MaxWait:     30 * time.Second,
		MaxAttempts: 120,
	}
}

// Poller queries job status until a terminal state, with capped exponential
// backoff between attempts.
type Poller struct {
	api    API
	cfg    PollConfig
	logger *slog.Logger

	// sleep is swapped in tests to record the backoff sequence.
	sleep func(time.Duration)
}

func NewPoller(api API, cfg PollConfig, logger *slog.Logger) *Poller {
	if cfg.InitialWait <= 0 {
		cfg.InitialWait = DefaultPollConfig().InitialWait
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = DefaultPollConfig().MaxWait
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultPollConfig().MaxAttempts
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{api: api, cfg: cfg, logger: logger, sleep: time.Sleep}
}

// Poll drives the job's status to a terminal state. It returns an error on
// transport failures, protocol violations (completed without a transcript
// URI), unrecognized states, and on running out of attempts.
func (p *Poller) Poll(ctx context.Context, jobName string) (Status, error) {
	wait := p.cfg.InitialWait

	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		p.logger.Info("checking transcription job status",
			"job", jobName, "attempt", attempt, "max_attempts", p.cfg.MaxAttempts)

		snapshot, err := p.api.JobStatus(ctx, jobName)
		if err != nil {
			return Status{}, errs.Wrap(errs.KindTranscribe, err, "failed to get status of job %s", jobName)
		}

		switch snapshot.State {
		case StateInProgress:
			p.logger.Info("job still in progress", "job", jobName)
		case StateCompleted:
			if snapshot.TranscriptURI == "" {
				return Status{}, errs.New(errs.KindTranscribe,
					"job %s completed but no transcript URI found", jobName)
			}
			return Status{Completed: true, ResultURI: snapshot.TranscriptURI}, nil
		case StateFailed:
			reason := snapshot.FailureReason
			if reason == "" {
				reason = defaultFailureReason
			}
			return Status{Reason: reason}, nil
		default:
			return Status{}, errs.New(errs.KindTranscribe,
				"unexpected status %q for job %s", string(snapshot.State), jobName)
		}

		if attempt < p.cfg.MaxAttempts {
			p.sleep(wait)
			wait = min(wait*2, p.cfg.MaxWait)
		}
	}

	return Status{}, errs.New(errs.KindTimeout,
		"transcription job %s did not finish within %d status checks", jobName, p.cfg.MaxAttempts)
}
