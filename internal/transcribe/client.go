package transcribe

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awstranscribe "github.com/aws/aws-sdk-go-v2/service/transcribe"
	transcribeTypes "github.com/aws/aws-sdk-go-v2/service/transcribe/types"
)

// JobState is the service-reported lifecycle state of a transcription job.
type JobState string

const (
	StateInProgress JobState = "IN_PROGRESS"
	StateCompleted  JobState = "COMPLETED"
	StateFailed     JobState = "FAILED"
)

// JobSnapshot is one observation of a job's state.
type JobSnapshot struct {
	State         JobState
	TranscriptURI string
	FailureReason string
}

// API is the slice of the Transcribe service the submitter and poller use,
// kept as an interface for dependency injection and testing.
type API interface {
	StartJob(ctx context.Context, jobName, mediaURI, languageCode string) error
	JobStatus(ctx context.Context, jobName string) (JobSnapshot, error)
}

type Client struct {
	tc *awstranscribe.Client
}

func NewClient(ctx context.Context, region, accessKey, secretKey string) (*Client, error) {
	var cfg aws.Config
	var err error

	if accessKey != "" && secretKey != "" {
		cfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		)
	} else {
		cfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{tc: awstranscribe.NewFromConfig(cfg)}, nil
}

func (c *Client) StartJob(ctx context.Context, jobName, mediaURI, languageCode string) error {
	_, err := c.tc.StartTranscriptionJob(ctx, &awstranscribe.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(jobName),
		Media: &transcribeTypes.Media{
			MediaFileUri: aws.String(mediaURI),
		},
		LanguageCode: transcribeTypes.LanguageCode(languageCode),
	})
	return err
}

func (c *Client) JobStatus(ctx context.Context, jobName string) (JobSnapshot, error) {
	result, err := c.tc.GetTranscriptionJob(ctx, &awstranscribe.GetTranscriptionJobInput{
		TranscriptionJobName: aws.String(jobName),
	})
	if err != nil {
		return JobSnapshot{}, err
	}

	job := result.TranscriptionJob
	if job == nil {
		return JobSnapshot{}, fmt.Errorf("job %s not found", jobName)
	}

	snapshot := JobSnapshot{State: JobState(job.TranscriptionJobStatus)}
	if job.Transcript != nil && job.Transcript.TranscriptFileUri != nil {
		snapshot.TranscriptURI = *job.Transcript.TranscriptFileUri
	}
	if job.FailureReason != nil {
		snapshot.FailureReason = *job.FailureReason
	}
	return snapshot, nil
}
