package errs

import (
	"errors"
	"fmt"
	"io"
)

// Kind classifies an error so the CLI can print an actionable hint for it.
type Kind int

const (
	KindFile Kind = iota
	KindAWS
	KindS3
	KindTranscribe
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "File error"
	case KindAWS:
		return "AWS error"
	case KindS3:
		return "S3 error"
	case KindTranscribe:
		return "Transcribe error"
	case KindTimeout:
		return "Timeout"
	default:
		return "Error"
	}
}

// E is the application error carried from any pipeline stage up to main.
type E struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *E) Error() string {
	if e.Err != nil && e.Msg != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *E) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *E {
	return &E{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, err error, format string, args ...any) *E {
	return &E{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or KindTranscribe if it carries none.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindTranscribe
}

// IsTimeout reports whether err is a polling timeout.
func IsTimeout(err error) bool {
	var e *E
	return errors.As(err, &e) && e.Kind == KindTimeout
}

func hint(kind Kind) string {
	switch kind {
	case KindFile:
		return "Please verify the file path and permissions."
	case KindAWS:
		return "Please check your AWS credentials and configuration."
	case KindS3:
		return "Please verify the S3 bucket exists and you have access to it."
	case KindTranscribe:
		return "Please check the Amazon Transcribe service status and your permissions."
	case KindTimeout:
		return "The transcription job did not finish in time; check its status in the AWS console."
	default:
		return ""
	}
}

// Display prints err with its actionable hint in the CLI's terminal format.
func Display(w io.Writer, err error) {
	fmt.Fprintf(w, "🛑 Error: %v\n", err)
	if h := hint(KindOf(err)); h != "" {
		fmt.Fprintln(w, h)
	}
}
