package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/roughcut/roughcut/backend-go/internal/document"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler serves snapshot export endpoints. The client posts a serialized
// CanvasState and gets the encoded file back.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Export handles POST /export/{format} with format svg, pdf, png or json.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	format := mux.Vars(r)["format"]

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "request too large", http.StatusBadRequest)
		return
	}

	state, err := document.Parse(body)
	if err != nil {
		if errors.Is(err, document.ErrInvalidDocument) {
			http.Error(w, "invalid file", http.StatusBadRequest)
			return
		}
		slog.Error("parse export payload", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "canvas"
	}
	name = sanitizeName(name)

	var buf bytes.Buffer
	var contentType string

	switch format {
	case "svg":
		contentType = "image/svg+xml"
		err = SVG(&buf, state)
	case "pdf":
		contentType = "application/pdf"
		err = PDF(&buf, state)
	case "png":
		contentType = "image/png"
		err = PNG(&buf, state)
	case "json":
		contentType = "application/json"
		var data []byte
		data, err = document.Serialize(state)
		buf.Write(data)
	default:
		http.Error(w, "invalid format: must be svg, pdf, png, or json", http.StatusBadRequest)
		return
	}

	if err != nil {
		slog.Error("export failed", "format", format, "error", err)
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, format))
	w.Write(buf.Bytes())

	slog.Info("export complete", "format", format, "size", buf.Len())
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
}
