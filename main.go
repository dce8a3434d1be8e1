package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"transcribeflow/internal/config"
	"transcribeflow/internal/errs"
	"transcribeflow/internal/file"
	"transcribeflow/internal/pipeline"
	"transcribeflow/internal/result"
	"transcribeflow/internal/s3"
	"transcribeflow/internal/transcribe"
	"transcribeflow/internal/upload"
)

func main() {
	output := flag.String("o", "", "write the transcript to this file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	mediaFile := flag.Arg(0)
	bucket := flag.Arg(1)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(context.Background(), mediaFile, bucket, *output, logger); err != nil {
		errs.Display(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <media-file> <s3-bucket>\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Transcribes a media file using Amazon Transcribe, staging it in the given S3 bucket.")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}

func run(ctx context.Context, mediaFile, bucket, output string, logger *slog.Logger) error {
	fmt.Println("🎬 Video Transcription CLI")
	fmt.Printf("Media file: %s\n", mediaFile)
	fmt.Printf("S3 bucket: %s\n", bucket)
	if output != "" {
		fmt.Printf("Output file: %s\n", output)
	}

	cfg := config.Load()
	tuning, err := config.LoadTuning()
	if err != nil {
		return errs.Wrap(errs.KindFile, err, "invalid tuning config")
	}

	if err := file.Validate(mediaFile, tuning.MaxFileSizeBytes(), tuning.AllowedExtensions); err != nil {
		return err
	}

	s3Client, err := s3.NewClient(ctx, cfg.Region, bucket, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.S3Endpoint)
	if err != nil {
		return errs.Wrap(errs.KindAWS, err, "failed to initialize S3 client")
	}
	if err := s3Client.VerifyCredentials(ctx); err != nil {
		return errs.Wrap(errs.KindAWS, err, "failed to validate AWS credentials")
	}

	transcribeClient, err := transcribe.NewClient(ctx, cfg.Region, cfg.AWSAccessKey, cfg.AWSSecretKey)
	if err != nil {
		return errs.Wrap(errs.KindAWS, err, "failed to initialize Transcribe client")
	}

	uploader := upload.NewUploader(s3Client, upload.Config{
		Bucket:             bucket,
		KeyPrefix:          cfg.KeyPrefix,
		MultipartThreshold: tuning.MultipartThresholdBytes(),
		PartSize:           tuning.PartSizeBytes(),
	}, logger)
	cleaner := upload.NewCleaner(s3Client, logger)
	submitter := transcribe.NewSubmitter(transcribeClient, cfg.LanguageCode, logger)
	poller := transcribe.NewPoller(transcribeClient, transcribe.PollConfig{
		InitialWait: secondsDuration(tuning.PollInitialSeconds),
		MaxWait:     secondsDuration(tuning.PollMaxSeconds),
		MaxAttempts: tuning.PollMaxAttempts,
	}, logger)
	fetcher := result.NewFetcher(nil)

	pipe := pipeline.New(uploader, cleaner, submitter, poller, fetcher,
		pipeline.Config{JobPrefix: cfg.JobPrefix}, logger)

	transcript, err := pipe.Run(ctx, mediaFile)
	if err != nil {
		return err
	}

	fmt.Println("\n📝 Transcription Results:")
	fmt.Println("─────────────────────────")
	fmt.Println(transcript)
	fmt.Println("─────────────────────────")

	if output != "" {
		if err := file.SaveTranscript(output, transcript); err != nil {
			return err
		}
		fmt.Printf("💾 Transcript saved to: %s\n", output)
	}

	return nil
}

func secondsDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
