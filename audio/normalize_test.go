package audio

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"
)

func TestNormalizeEmptyInput(t *testing.T) {
	n := NewNormalizer(5 * time.Second)
	if _, err := n.Normalize(context.Background(), nil); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestNormalizeCorruptInput(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}

	n := NewNormalizer(10 * time.Second)
	input := []byte("this is definitely not audio data")
	original := make([]byte, len(input))
	copy(original, input)

	if _, err := n.Normalize(context.Background(), input); err == nil {
		t.Error("Expected error for corrupt input")
	}

	if !bytes.Equal(input, original) {
		t.Error("Normalize mutated the input buffer")
	}
}
