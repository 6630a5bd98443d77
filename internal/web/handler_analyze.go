package web

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/collectorlens/collectorlens/internal/prompt"
	"github.com/collectorlens/collectorlens/internal/service"
	"github.com/collectorlens/collectorlens/internal/vision"
)

const maxUploadSize = 50 * 1024 * 1024 // 50 MB across all parts

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	mode := prompt.ParseMode(r.FormValue("mode"))
	provider := strings.TrimSpace(r.FormValue("provider"))
	if provider == "" {
		provider = vision.ProviderOpenAI
	}
	userDescription := strings.TrimSpace(r.FormValue("userDescription"))

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "No images uploaded.")
		return
	}

	images := make([][]byte, 0, len(files))
	for _, fh := range files {
		data, err := readPart(fh, s.logger)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to read uploaded file")
			s.logger.Error("read upload failed", "file", fh.Filename, "error", err)
			return
		}
		images = append(images, data)
	}

	// The claude path is deliberately short-circuited: the provider value is
	// only honored when a credential is configured, and that combination is
	// permanently unavailable. Without the credential the request silently
	// falls through to the openai path.
	if provider == vision.ProviderClaude && s.cfg.AnthropicAPIKey != "" {
		writeError(w, http.StatusServiceUnavailable, "Anthropic Claude integration is temporarily disabled.")
		return
	}

	if s.cfg.OpenAIAPIKey == "" {
		writeError(w, http.StatusInternalServerError, "Missing OPENAI_API_KEY")
		return
	}

	doc, rep, err := s.service.Analyze(r.Context(), service.AnalyzeRequest{
		Mode:      mode,
		Provider:  provider,
		UserNotes: userDescription,
		Images:    images,
	})
	if err != nil {
		var exErr *service.ExtractionError
		if errors.As(err, &exErr) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": "Could not parse JSON from OpenAI response.",
				"raw":   exErr.Raw,
			})
			return
		}
		s.logger.Error("analyze failed", "mode", mode, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result": doc.Fields,
		"report": rep,
	})
}

func readPart(fh *multipart.FileHeader, logger *slog.Logger) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Error("failed to close upload part", "file", fh.Filename, "error", err)
		}
	}()
	return io.ReadAll(f)
}
