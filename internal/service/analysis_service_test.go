package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collectorlens/collectorlens/internal/analysis"
	"github.com/collectorlens/collectorlens/internal/prompt"
	"github.com/collectorlens/collectorlens/internal/report"
)

// stubAnalyzer records what it was asked and replies with canned text.
type stubAnalyzer struct {
	text           string
	err            error
	gotInstruction string
	gotImages      [][]byte
}

func (s *stubAnalyzer) Analyze(_ context.Context, instruction string, images [][]byte) (string, error) {
	s.gotInstruction = instruction
	s.gotImages = images
	return s.text, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2)), nil))
	return buf.Bytes()
}

var roiCfg = analysis.ROIConfig{FeeRate: 0.135, GradingAllInUSD: 35}

func TestAnalyzePipeline(t *testing.T) {
	stub := &stubAnalyzer{text: `<<<JSON
{"coinIdentification": {"confidenceLevel": "high", "year": "1909", "country": "US", "denomination": "1C"}}
JSON>>>`}
	svc := NewAnalysisService(stub, roiCfg, testLogger())

	doc, rep, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Mode:      prompt.ModeCoin,
		Provider:  "openai",
		UserNotes: "found in attic",
		Images:    [][]byte{testJPEG(t), testJPEG(t)},
	})
	require.NoError(t, err)

	// The instruction carries the template, the user notes, and the envelope.
	assert.Contains(t, stub.gotInstruction, `"coinIdentification"`)
	assert.Contains(t, stub.gotInstruction, "USER-PROVIDED DETAILS: found in attic")
	assert.Contains(t, stub.gotInstruction, "<<<JSON")

	// Every uploaded image is normalized and forwarded in order.
	assert.Len(t, stub.gotImages, 2)

	assert.Equal(t, analysis.VariantVerbose, doc.Variant)
	assert.Equal(t, doc.Fields["coinIdentification"], doc.Fields["identification"])
	assert.NotContains(t, doc.Fields, "gradingROI")
	assert.Equal(t, "1909 US 1C", rep.Title)
}

func TestAnalyzeCardModeAttachesROI(t *testing.T) {
	stub := &stubAnalyzer{text: `{"cardIdentification": {"confidenceLevel": "low"}, "followUpSuggestions": ["Photograph the back"]}`}
	svc := NewAnalysisService(stub, roiCfg, testLogger())

	doc, rep, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Mode:   prompt.ModeCard,
		Images: [][]byte{testJPEG(t)},
	})
	require.NoError(t, err)

	roi, ok := doc.Fields["gradingROI"].(analysis.GradingROI)
	require.True(t, ok)
	assert.False(t, roi.Ready)
	assert.Equal(t, report.DecisionBundle, rep.Bundle.Decision)
}

func TestAnalyzeExtractionFailureCarriesRawText(t *testing.T) {
	stub := &stubAnalyzer{text: "I am sorry, I cannot identify this item."}
	svc := NewAnalysisService(stub, roiCfg, testLogger())

	_, _, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Mode:   prompt.ModeCard,
		Images: [][]byte{testJPEG(t)},
	})

	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, stub.text, exErr.Raw)
	assert.ErrorIs(t, err, analysis.ErrNotJSON)
}

func TestAnalyzeModelFailure(t *testing.T) {
	stub := &stubAnalyzer{err: errors.New("upstream exploded")}
	svc := NewAnalysisService(stub, roiCfg, testLogger())

	_, _, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Mode:   prompt.ModeCoin,
		Images: [][]byte{testJPEG(t)},
	})
	require.Error(t, err)
	var exErr *ExtractionError
	assert.False(t, errors.As(err, &exErr))
}

func TestAnalyzeBadImageFails(t *testing.T) {
	stub := &stubAnalyzer{text: "{}"}
	svc := NewAnalysisService(stub, roiCfg, testLogger())

	_, _, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Mode:   prompt.ModeCoin,
		Images: [][]byte{[]byte("not an image")},
	})
	assert.Error(t, err)
	assert.Empty(t, stub.gotInstruction)
}
