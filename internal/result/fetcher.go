package result

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"transcribeflow/internal/errs"
)

// transcriptDocument mirrors the relevant slice of Amazon Transcribe's
// result JSON.
type transcriptDocument struct {
	Results struct {
		Transcripts []struct {
			Transcript string `json:"transcript"`
		} `json:"transcripts"`
	} `json:"results"`
}

// Fetcher downloads a finished job's result artifact and extracts the
// transcript text.
type Fetcher struct {
	httpClient *http.Client
}

func NewFetcher(httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Fetcher{httpClient: httpClient}
}

// Fetch retrieves the result document at resultURI and returns its first
// transcript text. An empty or whitespace-only transcript is an error, not a
// valid empty result.
func (f *Fetcher) Fetch(ctx context.Context, resultURI string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resultURI, nil)
	if err != nil {
		return "", errs.Wrap(errs.KindTranscribe, err, "invalid result URI")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(errs.KindTranscribe, err, "failed to fetch transcription results")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errs.New(errs.KindTranscribe,
			"failed to fetch transcription results: HTTP %s", resp.Status)
	}

	var doc transcriptDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", errs.Wrap(errs.KindTranscribe, err, "failed to parse transcription JSON")
	}

	if len(doc.Results.Transcripts) == 0 {
		return "", errs.New(errs.KindTranscribe, "no transcript text found in results")
	}

	text := doc.Results.Transcripts[0].Transcript
	if strings.TrimSpace(text) == "" {
		return "", errs.New(errs.KindTranscribe, "transcription result is empty")
	}
	return text, nil
}
