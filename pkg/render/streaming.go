package render

import (
	"net/http"
)

// StreamingRenderer renders pages to an http.ResponseWriter and flushes
// after the head so the browser can start fetching scripts and styles.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       http.ResponseWriter
}

// NewStreamingRenderer creates a streaming renderer. Flushing is skipped
// when w does not implement http.Flusher.
func NewStreamingRenderer(w http.ResponseWriter, config Config) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage writes the page with a text/html content type.
func (s *StreamingRenderer) RenderPage(page Page) error {
	if s.w.Header().Get("Content-Type") == "" {
		s.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if err := s.renderDocumentHead(s.w, page); err != nil {
		return err
	}
	s.flush()
	if err := s.renderDocumentBody(s.w, page); err != nil {
		return err
	}
	s.flush()
	return nil
}

func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}
