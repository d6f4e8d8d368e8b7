package shazam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"songsnap/models"
)

// Client talks to the acoustic fingerprinting API. The service is an
// opaque black box: we post a normalized sample and get back a track
// block, or nothing.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
}

func New(apiURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiURL: apiURL,
		apiKey: apiKey,
	}
}

type recognizeResponse struct {
	Track *models.RecognitionResult `json:"track"`
}

// Recognize submits normalized MP3 bytes to the fingerprinting service.
// A (nil, nil) return means the service answered but found no match; an
// error means the service or the network failed.
func (c *Client) Recognize(ctx context.Context, data []byte) (*models.RecognitionResult, error) {
	span := sentry.StartSpan(ctx, "shazam.recognize")
	span.Description = "Recognize track via fingerprinting API"
	defer span.Finish()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/songs/detect", bytes.NewReader(data))
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}
	req.Header.Set("Content-Type", "audio/mpeg")
	if c.apiKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Recognition request failed: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("recognition API returned status %d", resp.StatusCode)
		log.Errorf("Recognition failed: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	var out recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	if out.Track == nil {
		log.Debugf("Recognition found no match for %d bytes of audio", len(data))
		span.Status = sentry.SpanStatusNotFound
		return nil, nil
	}

	log.Debugf("Recognized '%s' by '%s'", out.Track.Title, out.Track.Subtitle)
	span.Status = sentry.SpanStatusOK
	return out.Track, nil
}
