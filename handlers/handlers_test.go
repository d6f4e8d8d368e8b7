package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"songsnap/models"
	"songsnap/recognize"
)

type stubNormalizer struct{ err error }

func (s *stubNormalizer) Normalize(ctx context.Context, data []byte) ([]byte, error) {
	return data, s.err
}

type stubRecognizer struct{ out *models.RecognitionResult }

func (s *stubRecognizer) Recognize(ctx context.Context, data []byte) (*models.RecognitionResult, error) {
	return s.out, nil
}

type stubSearcher struct{ out *models.EnrichedTrack }

func (s *stubSearcher) Search(ctx context.Context, artist, title string) (*models.EnrichedTrack, error) {
	return s.out, nil
}

func newTestRouter(pipeline *recognize.Pipeline) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(pipeline, 10)
	router := gin.New()
	router.GET("/", handler.Index)
	router.POST("/recognize", handler.Recognize)
	return router
}

func uploadRequest(t *testing.T, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "clip.ogg")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/recognize", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestRecognizeReturnsEnrichedTrack(t *testing.T) {
	stream := "https://stream.example/1?client_id=cid"
	pipeline := recognize.NewPipeline(
		&stubNormalizer{},
		&stubRecognizer{out: &models.RecognitionResult{Title: "Song", Subtitle: "Artist"}},
		&stubSearcher{out: &models.EnrichedTrack{Title: "Song", Artist: "uploader", StreamURL: &stream}},
	)
	router := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, []byte("audio")))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body: %s", w.Code, w.Body.String())
	}

	var track models.EnrichedTrack
	if err := json.Unmarshal(w.Body.Bytes(), &track); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if track.Title != "Song" || track.Artist != "uploader" {
		t.Errorf("Got track %+v", track)
	}
	if track.StreamURL == nil || *track.StreamURL != stream {
		t.Errorf("StreamURL = %v; want %q", track.StreamURL, stream)
	}
}

func TestRecognizeNotFound(t *testing.T) {
	pipeline := recognize.NewPipeline(
		&stubNormalizer{err: errors.New("corrupt")},
		&stubRecognizer{},
		&stubSearcher{},
	)
	router := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, []byte("garbage")))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Track not recognized.") {
		t.Errorf("body = %s; want detail message", w.Body.String())
	}
}

func TestRecognizeMissingFile(t *testing.T) {
	pipeline := recognize.NewPipeline(&stubNormalizer{}, &stubRecognizer{}, &stubSearcher{})
	router := newTestRouter(pipeline)

	req := httptest.NewRequest(http.MethodPost, "/recognize", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "detail") {
		t.Errorf("body = %s; want a detail message", w.Body.String())
	}
}

func TestIndexServesHTML(t *testing.T) {
	pipeline := recognize.NewPipeline(&stubNormalizer{}, &stubRecognizer{}, &stubSearcher{})
	router := newTestRouter(pipeline)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q; want text/html", ct)
	}
	if !strings.Contains(w.Body.String(), "/recognize") {
		t.Error("index page should reference the recognize endpoint")
	}
}
