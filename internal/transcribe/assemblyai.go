package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const (
	defaultBaseURL      = "https://api.assemblyai.com"
	defaultPollInterval = 3 * time.Second
	statusCompleted     = "completed"
	statusError         = "error"
)

// ServiceError represents a failure reported by the transcription service.
type ServiceError struct {
	HTTPStatus int
	JobID      string
	Message    string
}

func (e *ServiceError) Error() string {
	if e.JobID != "" {
		return fmt.Sprintf("transcription job %s failed: %s", e.JobID, e.Message)
	}
	return fmt.Sprintf("transcription service error (status %d): %s", e.HTTPStatus, e.Message)
}

// AssemblyAIClient implements Client using the AssemblyAI transcription API.
// The client is stateless and safe to share across concurrent pipeline runs.
type AssemblyAIClient struct {
	apiKey       string
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
}

// NewAssemblyAIClient creates a new AssemblyAI client. baseURL may be empty
// to use the production API.
func NewAssemblyAIClient(apiKey, baseURL string) *AssemblyAIClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &AssemblyAIClient{
		apiKey:       apiKey,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 90 * time.Second},
		pollInterval: defaultPollInterval,
	}
}

// Name returns the provider name
func (c *AssemblyAIClient) Name() string {
	return "assemblyai"
}

type transcriptJob struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Text          string  `json:"text"`
	Summary       string  `json:"summary"`
	AudioDuration float64 `json:"audio_duration"`
	Error         string  `json:"error,omitempty"`
}

// Transcribe uploads the audio artifact, submits a transcription job with an
// informative bullet summary enabled, and polls until the job completes. It
// may take substantially longer than extraction; ctx cancellation aborts the
// wait between polls.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	startTime := time.Now()

	uploadURL, err := c.upload(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	job, err := c.submit(ctx, uploadURL)
	if err != nil {
		return nil, err
	}
	log.Printf("[AssemblyAI] Job submitted: %s (status: %s)", job.ID, job.Status)

	for job.Status != statusCompleted {
		if job.Status == statusError {
			return nil, &ServiceError{JobID: job.ID, Message: job.Error}
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for transcription job %s: %w", job.ID, ctx.Err())
		case <-time.After(c.pollInterval):
		}
		job, err = c.poll(ctx, job.ID)
		if err != nil {
			return nil, err
		}
	}

	log.Printf("[AssemblyAI] Job %s completed: transcript=%d chars, summary=%d chars, took %v",
		job.ID, len(job.Text), len(job.Summary), time.Since(startTime))

	return &Result{
		Transcript:    job.Text,
		Summary:       job.Summary,
		Provider:      c.Name(),
		JobID:         job.ID,
		AudioDuration: job.AudioDuration,
	}, nil
}

// upload streams the artifact to the service and returns its temporary URL.
func (c *AssemblyAIClient) upload(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio artifact: %w", err)
	}
	defer f.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/upload", f)
	if err != nil {
		return "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("authorization", c.apiKey)
	req.Header.Set("content-type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ServiceError{HTTPStatus: resp.StatusCode, Message: string(body)}
	}

	var uploaded struct {
		UploadURL string `json:"upload_url"`
	}
	if err := json.Unmarshal(body, &uploaded); err != nil {
		return "", fmt.Errorf("parse upload response: %w", err)
	}
	if uploaded.UploadURL == "" {
		return "", &ServiceError{HTTPStatus: resp.StatusCode, Message: "upload returned no URL"}
	}
	return uploaded.UploadURL, nil
}

// submit creates the transcription job requesting an informative summary in
// bullet form.
func (c *AssemblyAIClient) submit(ctx context.Context, audioURL string) (*transcriptJob, error) {
	params := map[string]any{
		"audio_url":     audioURL,
		"summarization": true,
		"summary_model": "informative",
		"summary_type":  "bullets",
	}
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal transcript params: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/transcript", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create transcript request: %w", err)
	}
	req.Header.Set("authorization", c.apiKey)
	req.Header.Set("content-type", "application/json")

	return c.doJobRequest(req)
}

// poll fetches the current state of a transcription job.
func (c *AssemblyAIClient) poll(ctx context.Context, jobID string) (*transcriptJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/transcript/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("create poll request: %w", err)
	}
	req.Header.Set("authorization", c.apiKey)

	return c.doJobRequest(req)
}

func (c *AssemblyAIClient) doJobRequest(req *http.Request) (*transcriptJob, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call transcription service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{HTTPStatus: resp.StatusCode, Message: string(body)}
	}

	var job transcriptJob
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, fmt.Errorf("parse transcription response: %w", err)
	}
	return &job, nil
}
