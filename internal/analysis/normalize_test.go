package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collectorlens/collectorlens/internal/prompt"
)

var testROI = ROIConfig{FeeRate: 0.135, GradingAllInUSD: 35}

func decodeT(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Decode(json.RawMessage(s))
	require.NoError(t, err)
	return doc
}

func TestNormalizeAliasesCoinIdentification(t *testing.T) {
	doc := decodeT(t, `{"coinIdentification": {"country": "US", "year": "1909", "confidenceLevel": "high"}}`)

	Normalize(doc, prompt.ModeCoin, testROI)

	assert.Equal(t, doc.Fields["coinIdentification"], doc.Fields["identification"])
}

func TestNormalizeAliasPriorityCoinOverCard(t *testing.T) {
	doc := decodeT(t, `{
		"coinIdentification": {"country": "US"},
		"cardIdentification": {"player": "Jordan"}
	}`)

	Normalize(doc, prompt.ModeCoin, testROI)

	assert.Equal(t, doc.Fields["coinIdentification"], doc.Fields["identification"])
}

func TestNormalizeKeepsExistingIdentification(t *testing.T) {
	doc := decodeT(t, `{
		"identification": {"title": "already here"},
		"finalListing": {"ready": false}
	}`)

	Normalize(doc, prompt.ModeCurrency, testROI)

	ident, ok := doc.Fields["identification"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "already here", ident["title"])
}

func TestNormalizeTreatsNullIdentificationAsAbsent(t *testing.T) {
	doc := decodeT(t, `{
		"identification": null,
		"currencyIdentification": {"country": "US"}
	}`)

	Normalize(doc, prompt.ModeCurrency, testROI)

	assert.Equal(t, doc.Fields["currencyIdentification"], doc.Fields["identification"])
}

func TestNormalizeAttachesROIOnlyInCardMode(t *testing.T) {
	coin := decodeT(t, `{"coinIdentification": {"confidenceLevel": "high"}}`)
	Normalize(coin, prompt.ModeCoin, testROI)
	assert.NotContains(t, coin.Fields, "gradingROI")

	card := decodeT(t, `{"cardIdentification": {"confidenceLevel": "high"}}`)
	Normalize(card, prompt.ModeCard, testROI)
	assert.Contains(t, card.Fields, "gradingROI")
}

func TestComputeGradingROINotEligible(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"low confidence",
			`{"cardIdentification": {"confidenceLevel": "low"},
			  "valueEstimation": {"estimatedRawValueRange": "$10-$30", "estimatedGradedValueRange": "$50-$90"}}`,
		},
		{
			"missing graded range",
			`{"cardIdentification": {"confidenceLevel": "high"},
			  "valueEstimation": {"estimatedRawValueRange": "$10-$30", "estimatedGradedValueRange": ""}}`,
		},
		{
			"no value estimation at all",
			`{"cardIdentification": {"confidenceLevel": "high"}}`,
		},
		{
			"simple variant has no card identification",
			`{"identification": {"confidence": "high"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roi := ComputeGradingROI(decodeT(t, tt.doc), testROI)

			assert.False(t, roi.Ready)
			assert.Equal(t, "Needs confidenceLevel=high and both value ranges to compute ROI.", roi.Reason)
			assert.Equal(t, 0.135, roi.FeeRate)
			assert.Equal(t, 35.0, roi.GradingAllIn)
			assert.Nil(t, roi.RawRange)
			assert.Nil(t, roi.GradedRange)
		})
	}
}

func TestComputeGradingROIEligibleStillNotImplemented(t *testing.T) {
	doc := decodeT(t, `{
		"cardIdentification": {"confidenceLevel": "high"},
		"valueEstimation": {
			"estimatedRawValueRange": "$20-$40",
			"estimatedGradedValueRange": "$80-$150"
		}
	}`)

	roi := ComputeGradingROI(doc, testROI)

	assert.False(t, roi.Ready)
	assert.Equal(t, "ROI calculation not implemented (ported as-is from smoke test).", roi.Reason)
	assert.Equal(t, &MoneyRange{Low: 20, High: 40}, roi.RawRange)
	assert.Equal(t, &MoneyRange{Low: 80, High: 150}, roi.GradedRange)
}

func TestComputeGradingROINilDocument(t *testing.T) {
	roi := ComputeGradingROI(nil, testROI)

	assert.False(t, roi.Ready)
	assert.Equal(t, "Needs confidenceLevel=high and both value ranges to compute ROI.", roi.Reason)
}
