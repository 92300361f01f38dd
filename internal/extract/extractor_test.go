package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDownloadArgs(t *testing.T) {
	link := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	args := downloadArgs(link)

	if args[len(args)-1] != link {
		t.Errorf("last arg = %q, want the link", args[len(args)-1])
	}
	if !slices.Contains(args, "worstaudio") {
		t.Errorf("args %v do not request the lowest-bitrate audio rendition", args)
	}
	if !slices.Contains(args, "--no-playlist") {
		t.Errorf("args %v do not restrict to a single video", args)
	}
	// Output must stream to stdout, never to a file.
	i := slices.Index(args, "-o")
	if i < 0 || args[i+1] != "-" {
		t.Errorf("args %v do not stream to stdout", args)
	}
}

func TestTranscodeArgs(t *testing.T) {
	args := transcodeArgs(10, 15, "/tmp/out.mp3")

	pairs := map[string]string{
		"-ss":      "10",
		"-t":       "15",
		"-codec:a": "libmp3lame",
		"-b:a":     "128k",
		"-f":       "mp3",
	}
	for flag, want := range pairs {
		i := slices.Index(args, flag)
		if i < 0 || i+1 >= len(args) {
			t.Fatalf("args %v missing %s", args, flag)
		}
		if args[i+1] != want {
			t.Errorf("%s = %q, want %q", flag, args[i+1], want)
		}
	}
	if !slices.Contains(args, "-vn") {
		t.Errorf("args %v materialize a video track", args)
	}
	if args[len(args)-1] != "/tmp/out.mp3" {
		t.Errorf("last arg = %q, want output path", args[len(args)-1])
	}
}

func TestTranscodeArgsFractionalSeconds(t *testing.T) {
	args := transcodeArgs(1.5, 2.25, "out.mp3")
	i := slices.Index(args, "-ss")
	if args[i+1] != "1.5" {
		t.Errorf("-ss = %q, want 1.5", args[i+1])
	}
	i = slices.Index(args, "-t")
	if args[i+1] != "2.25" {
		t.Errorf("-t = %q, want 2.25", args[i+1])
	}
}

func TestNewArtifactPathUnique(t *testing.T) {
	dir := t.TempDir()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := newArtifactPath(dir)
		if seen[p] {
			t.Fatalf("duplicate artifact path: %s", p)
		}
		seen[p] = true
		if filepath.Dir(p) != dir {
			t.Errorf("path %s not in work dir %s", p, dir)
		}
		if !strings.HasSuffix(p, ".mp3") {
			t.Errorf("path %s is not an mp3", p)
		}
	}
}

// writeStub installs an executable shell script standing in for yt-dlp or
// ffmpeg, so Extract's process plumbing can run without the real binaries.
func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

// The downloader keeps streaming long after ffmpeg has written the trim
// window and exited. Extract must return the finished artifact promptly
// instead of waiting on a downloader blocked against a full pipe.
func TestExtractReturnsOnceTranscodeFinishes(t *testing.T) {
	bin := t.TempDir()
	work := t.TempDir()

	// An endless source: never exits on its own.
	ytdlp := writeStub(t, bin, "yt-dlp", "#!/bin/sh\nexec cat /dev/zero\n")
	// Reads a little input, writes the artifact named by its last arg, exits.
	ffmpeg := writeStub(t, bin, "ffmpeg", `#!/bin/sh
for out in "$@"; do :; done
head -c 1024 >/dev/null
printf 'audio' > "$out"
`)

	e := &Extractor{workDir: work, ytdlp: ytdlp, ffmpeg: ffmpeg}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	started := time.Now()
	artifact, err := e.Extract(ctx, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", 10, 25)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if elapsed := time.Since(started); elapsed > 10*time.Second {
		t.Errorf("Extract took %v against an endless source", elapsed)
	}
	if artifact.Duration != 15 {
		t.Errorf("Duration = %v, want 15", artifact.Duration)
	}
	if _, statErr := os.Stat(artifact.Path); statErr != nil {
		t.Errorf("artifact missing after successful extraction: %v", statErr)
	}
}

func TestExtractDownloadFailure(t *testing.T) {
	bin := t.TempDir()
	work := t.TempDir()

	ytdlp := writeStub(t, bin, "yt-dlp", "#!/bin/sh\necho 'ERROR: video unavailable' >&2\nexit 1\n")
	// ffmpeg sees an empty pipe and fails, like the real binary would.
	ffmpeg := writeStub(t, bin, "ffmpeg", "#!/bin/sh\ncat >/dev/null\nexit 1\n")

	e := &Extractor{workDir: work, ytdlp: ytdlp, ffmpeg: ffmpeg}

	_, err := e.Extract(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ", 0, 5)
	var unavailable *SourceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want SourceUnavailableError", err)
	}
	if !strings.Contains(err.Error(), "video unavailable") {
		t.Errorf("error %q does not carry the downloader's stderr", err)
	}

	entries, readErr := os.ReadDir(work)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("work dir not clean after failure: %v", entries)
	}
}

func TestExtractMissingDownloader(t *testing.T) {
	dir := t.TempDir()
	e := &Extractor{
		workDir: dir,
		ytdlp:   "clipnotes-no-such-binary",
		ffmpeg:  "clipnotes-no-such-binary",
	}

	_, err := e.Extract(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ", 0, 5)
	var unavailable *SourceUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want SourceUnavailableError", err)
	}

	// No partial artifact may survive a failed run.
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("work dir not clean after failure: %v", entries)
	}
}
