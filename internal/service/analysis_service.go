// Package service orchestrates one analysis request: image normalization,
// prompt construction, the single model invocation, extraction, decoding,
// normalization, and projection.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/collectorlens/collectorlens/internal/analysis"
	"github.com/collectorlens/collectorlens/internal/imaging"
	"github.com/collectorlens/collectorlens/internal/prompt"
	"github.com/collectorlens/collectorlens/internal/report"
	"github.com/collectorlens/collectorlens/internal/vision"
)

// AnalyzeRequest is one user submission. Images are the raw uploaded bytes in
// upload order; the service normalizes them before they leave the process.
type AnalyzeRequest struct {
	Mode      prompt.Mode
	Provider  string
	UserNotes string
	Images    [][]byte
}

// ExtractionError means the model replied but no usable JSON came out of the
// reply. Raw carries the full model text so a human can diagnose prompt
// drift; the transport layer attaches it to the error envelope.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not parse JSON from model response: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

type AnalysisService struct {
	analyzer vision.Analyzer
	roi      analysis.ROIConfig
	logger   *slog.Logger
}

func NewAnalysisService(analyzer vision.Analyzer, roi analysis.ROIConfig, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		analyzer: analyzer,
		roi:      roi,
		logger:   logger,
	}
}

// Analyze runs the full pipeline and returns the augmented document plus its
// view model. The model is called exactly once; any failure aborts the
// request with no retry.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*analysis.Document, *report.Report, error) {
	start := time.Now()

	images := make([][]byte, 0, len(req.Images))
	for i, img := range req.Images {
		jpg, err := imaging.NormalizeJPEG(img)
		if err != nil {
			return nil, nil, fmt.Errorf("normalize image %d: %w", i+1, err)
		}
		images = append(images, jpg)
	}

	instruction := prompt.WithUserNotes(prompt.BuildInstruction(req.Mode), req.UserNotes) +
		" Analyze these images as described above.\n" + prompt.JSONEnvelope()

	text, err := s.analyzer.Analyze(ctx, instruction, images)
	if err != nil {
		return nil, nil, fmt.Errorf("model invocation: %w", err)
	}
	s.logger.Debug("raw model text", "mode", req.Mode, "text", text)

	raw, err := analysis.ExtractJSON(text)
	if err != nil {
		return nil, nil, &ExtractionError{Raw: text, Err: err}
	}
	doc, err := analysis.Decode(raw)
	if err != nil {
		return nil, nil, &ExtractionError{Raw: text, Err: err}
	}

	analysis.Normalize(doc, req.Mode, s.roi)
	rep := report.Build(doc)

	s.logger.Info("analysis complete",
		"mode", req.Mode,
		"provider", req.Provider,
		"images", len(images),
		"variant", doc.Variant,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return doc, rep, nil
}
