package recognize

import (
	"context"

	log "github.com/sirupsen/logrus"

	"songsnap/models"
)

// Normalizer re-encodes an arbitrary audio blob into the fixed target
// codec the recognition service expects.
type Normalizer interface {
	Normalize(ctx context.Context, data []byte) ([]byte, error)
}

// Recognizer identifies a track from a normalized sample. A nil result
// with a nil error is the expected no-match case.
type Recognizer interface {
	Recognize(ctx context.Context, data []byte) (*models.RecognitionResult, error)
}

// Searcher looks up playable-track metadata for an artist/title pair.
// A nil result with a nil error means no catalog match.
type Searcher interface {
	Search(ctx context.Context, artist, title string) (*models.EnrichedTrack, error)
}

type Status int

const (
	// StatusNotFound: decoding or recognition failed, or nothing matched.
	StatusNotFound Status = iota
	// StatusPartial: recognized, but the catalog had nothing. Track is
	// built from recognition fields only, stream URL nil.
	StatusPartial
	// StatusFull: recognized and enriched. Track is the catalog row.
	StatusFull
)

// Outcome is the tagged result of one recognition request.
type Outcome struct {
	Status Status
	Track  *models.EnrichedTrack
}

// Compose merges a recognition result and an optional catalog match under
// the fallback policy: no recognition is terminal, a catalog match
// supersedes recognition fields, and a missing catalog match degrades to
// the recognition fields with a nil stream URL.
func Compose(rec *models.RecognitionResult, match *models.EnrichedTrack) Outcome {
	if rec == nil {
		return Outcome{Status: StatusNotFound}
	}
	if match == nil {
		return Outcome{
			Status: StatusPartial,
			Track: &models.EnrichedTrack{
				Title:      rec.Title,
				Artist:     rec.Subtitle,
				ArtworkURL: rec.FirstImageURL(),
				StreamURL:  nil,
			},
		}
	}
	return Outcome{Status: StatusFull, Track: match}
}

// Pipeline runs one request through decode, recognize and enrich,
// strictly in that order. It holds no per-request state.
type Pipeline struct {
	Normalizer Normalizer
	Recognizer Recognizer
	Searcher   Searcher
}

func NewPipeline(normalizer Normalizer, recognizer Recognizer, searcher Searcher) *Pipeline {
	return &Pipeline{
		Normalizer: normalizer,
		Recognizer: recognizer,
		Searcher:   searcher,
	}
}

// Run takes the raw uploaded bytes and produces an Outcome. Failures in
// decoding and recognition collapse into NotFound; a failed or empty
// catalog lookup degrades silently to a Partial outcome.
func (p *Pipeline) Run(ctx context.Context, data []byte) Outcome {
	normalized, err := p.Normalizer.Normalize(ctx, data)
	if err != nil {
		log.Warnf("Audio could not be decoded: %v", err)
		return Outcome{Status: StatusNotFound}
	}

	rec, err := p.Recognizer.Recognize(ctx, normalized)
	if err != nil {
		log.Errorf("Recognition failed: %v", err)
		return Outcome{Status: StatusNotFound}
	}
	if rec == nil {
		return Outcome{Status: StatusNotFound}
	}

	// An empty subtitle still goes to search; the catalog copes with a
	// bare title query.
	match, err := p.Searcher.Search(ctx, rec.Subtitle, rec.Title)
	if err != nil {
		log.Errorf("Catalog search failed, degrading to recognition fields: %v", err)
		match = nil
	}

	return Compose(rec, match)
}
