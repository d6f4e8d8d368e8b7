package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

// Normalizer re-encodes arbitrary audio blobs into MP3 for the recognition
// client. Decoding happens out of process via ffmpeg, so any container the
// local ffmpeg build understands is accepted.
type Normalizer struct {
	ffmpegPath string
	timeout    time.Duration
}

func NewNormalizer(timeout time.Duration) *Normalizer {
	return &Normalizer{
		ffmpegPath: "ffmpeg",
		timeout:    timeout,
	}
}

// Normalize converts data to MP3 and returns the re-encoded bytes. The
// input slice is never modified. Corrupt or unsupported input surfaces as
// an error.
func (n *Normalizer) Normalize(ctx context.Context, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio input")
	}

	tmpDir, err := os.MkdirTemp("", "songsnap-audio-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	inFile := filepath.Join(tmpDir, "input")
	outFile := filepath.Join(tmpDir, "output.mp3")

	if err := os.WriteFile(inFile, data, 0644); err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}

	ffmpegCtx := ctx
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ffmpegCtx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ffmpegCtx, n.ffmpegPath,
		"-i", inFile,
		"-f", "mp3",
		"-acodec", "libmp3lame",
		"-ar", "44100",
		"-loglevel", "error",
		outFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		log.Errorf("ffmpeg failed to decode input: %v: %s", err, stderr.String())
		return nil, fmt.Errorf("ffmpeg conversion failed: %w", err)
	}

	mp3, err := os.ReadFile(outFile)
	if err != nil {
		return nil, fmt.Errorf("read converted file: %w", err)
	}

	log.Debugf("Converted %d input bytes to %d bytes of mp3 in %v", len(data), len(mp3), time.Since(start))
	return mp3, nil
}
