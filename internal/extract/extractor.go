package extract

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Artifact is the transient trimmed audio file produced for one pipeline run.
// The caller owns it and is responsible for deleting it.
type Artifact struct {
	Path     string
	Duration float64 // seconds
}

// SourceUnavailableError means the remote video could not be streamed.
type SourceUnavailableError struct {
	Link string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source unavailable for %s: %v", e.Link, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// ExtractionError means the transcode itself failed (codec negotiation,
// truncated stream, disk full).
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("audio extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extractor produces trimmed mp3 artifacts from remote videos. It streams the
// lowest-bitrate audio-only rendition through yt-dlp into ffmpeg, so no video
// track and no full download are ever materialized on disk.
type Extractor struct {
	workDir string
	ytdlp   string
	ffmpeg  string
}

// New creates an Extractor writing artifacts into workDir.
func New(workDir string) *Extractor {
	return &Extractor{
		workDir: workDir,
		ytdlp:   "yt-dlp",
		ffmpeg:  "ffmpeg",
	}
}

// Extract streams the audio rendition of link, trims it to
// [startAt, endAt) during transcoding, and writes a uniquely named 128 kbps
// mp3 into the work dir. Cancelling ctx kills both processes; a partially
// written file is removed on every failure path.
func (e *Extractor) Extract(ctx context.Context, link string, startAt, endAt float64) (*Artifact, error) {
	duration := endAt - startAt

	if err := os.MkdirAll(e.workDir, 0755); err != nil {
		return nil, &ExtractionError{Err: fmt.Errorf("create work dir: %w", err)}
	}
	outPath := newArtifactPath(e.workDir)

	download := exec.CommandContext(ctx, e.ytdlp, downloadArgs(link)...)
	var downloadStderr bytes.Buffer
	download.Stderr = &downloadStderr

	audio, err := download.StdoutPipe()
	if err != nil {
		return nil, &SourceUnavailableError{Link: link, Err: err}
	}

	transcode := exec.CommandContext(ctx, e.ffmpeg, transcodeArgs(startAt, duration, outPath)...)
	transcode.Stdin = audio
	var transcodeStderr bytes.Buffer
	transcode.Stderr = &transcodeStderr

	if err := download.Start(); err != nil {
		return nil, &SourceUnavailableError{Link: link, Err: err}
	}
	if err := transcode.Start(); err != nil {
		_ = download.Process.Kill()
		_ = download.Wait()
		return nil, &ExtractionError{Err: err}
	}

	transcodeErr := transcode.Wait()

	// ffmpeg exits as soon as the trim window is written, while yt-dlp keeps
	// streaming the rest of the source. Drop our read end before waiting so
	// the downloader cannot block forever on a full pipe.
	_ = audio.Close()

	if transcodeErr == nil {
		// The artifact is complete; the downloader only dies because its
		// remaining output has nowhere to go.
		_ = download.Process.Kill()
		_ = download.Wait()
		log.Printf("[Extract] Wrote %.1fs artifact: %s", duration, outPath)
		return &Artifact{Path: outPath, Duration: duration}, nil
	}

	downloadErr := download.Wait()
	removeArtifact(outPath)

	// A failed download drags ffmpeg down with it (empty pipe), so when both
	// report errors the source error is the real cause.
	if downloadErr != nil {
		return nil, &SourceUnavailableError{
			Link: link,
			Err:  commandError(downloadErr, downloadStderr.String()),
		}
	}
	return nil, &ExtractionError{
		Err: commandError(transcodeErr, transcodeStderr.String()),
	}
}

// newArtifactPath returns a collision-free mp3 path in dir. The uuid token
// keeps concurrent pipeline runs from sharing a filename.
func newArtifactPath(dir string) string {
	return filepath.Join(dir, uuid.NewString()+".mp3")
}

func downloadArgs(link string) []string {
	return []string{
		"--no-playlist",
		"--quiet",
		"-f", "worstaudio",
		"-o", "-",
		link,
	}
}

func transcodeArgs(startAt, duration float64, outPath string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", "pipe:0",
		"-vn",
		"-ss", formatSeconds(startAt),
		"-t", formatSeconds(duration),
		"-codec:a", "libmp3lame",
		"-b:a", "128k",
		"-f", "mp3",
		"-y",
		outPath,
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func commandError(err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, stderr)
}

func removeArtifact(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[Extract] Warning: failed to remove partial artifact %s: %v", path, err)
	}
}
