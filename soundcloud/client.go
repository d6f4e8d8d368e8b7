package soundcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"songsnap/models"
)

// Client searches the SoundCloud track catalog. The same client ID gates
// both the search call and playback of the returned stream URL.
type Client struct {
	httpClient *http.Client
	apiURL     string
	clientID   string
}

func New(apiURL, clientID string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiURL:   apiURL,
		clientID: clientID,
	}
}

type trackRow struct {
	Title      string `json:"title"`
	ArtworkURL string `json:"artwork_url"`
	StreamURL  string `json:"stream_url"`
	User       struct {
		Username  string `json:"username"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user"`
}

// Search runs a limit-1 catalog query for "artist - title" and maps the
// best match onto an EnrichedTrack. (nil, nil) means no result; that is
// also what a missing client ID returns, without any network call.
func (c *Client) Search(ctx context.Context, artist, title string) (*models.EnrichedTrack, error) {
	if c.clientID == "" {
		log.Debug("SOUNDCLOUD_CLIENT_ID is not set, skipping catalog search")
		return nil, nil
	}

	span := sentry.StartSpan(ctx, "soundcloud.search")
	span.Description = "Search SoundCloud track catalog"
	span.SetTag("artist", artist)
	span.SetTag("title", title)
	defer span.Finish()

	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("q", fmt.Sprintf("%s - %s", artist, title))
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/tracks?"+params.Encode(), nil)
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("SoundCloud search request failed: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("SoundCloud API returned status %d", resp.StatusCode)
		log.Errorf("SoundCloud search failed: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	var rows []trackRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	if len(rows) == 0 {
		log.Debugf("No SoundCloud tracks found for '%s - %s'", artist, title)
		span.Status = sentry.SpanStatusNotFound
		return nil, nil
	}

	row := rows[0]

	// Fall back to the uploader's avatar when the track has no artwork
	var artwork *string
	if row.ArtworkURL != "" {
		artwork = &row.ArtworkURL
	} else if row.User.AvatarURL != "" {
		artwork = &row.User.AvatarURL
	}

	// The raw stream URL is not playable without the client ID
	var stream *string
	if row.StreamURL != "" {
		s := row.StreamURL + "?client_id=" + c.clientID
		stream = &s
	}

	log.Debugf("SoundCloud matched '%s' by '%s'", row.Title, row.User.Username)
	span.Status = sentry.SpanStatusOK
	return &models.EnrichedTrack{
		Title:      row.Title,
		Artist:     row.User.Username,
		ArtworkURL: artwork,
		StreamURL:  stream,
	}, nil
}
