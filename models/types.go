package models

// RecognitionResult is the track block returned by the fingerprinting
// service. All fields are optional; a nil result means no match.
type RecognitionResult struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Images   []Image `json:"images"`
}

type Image struct {
	URL string `json:"url"`
}

// FirstImageURL returns the URL of the first image, or nil when the
// recognition service attached no artwork.
func (r *RecognitionResult) FirstImageURL() *string {
	if r == nil || len(r.Images) == 0 || r.Images[0].URL == "" {
		return nil
	}
	url := r.Images[0].URL
	return &url
}

// EnrichedTrack is the single entity returned to callers of /recognize.
// StreamURL is nil when the catalog lookup failed or was unavailable.
type EnrichedTrack struct {
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	ArtworkURL *string `json:"artwork_url"`
	StreamURL  *string `json:"stream_url"`
}
