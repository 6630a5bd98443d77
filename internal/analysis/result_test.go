package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVerbose(t *testing.T) {
	raw := json.RawMessage(`{
		"cardIdentification": {
			"player": "Ken Griffey Jr.",
			"year": "1989",
			"manufacturer": "Upper Deck",
			"cardSet": "Upper Deck",
			"confidenceLevel": "high"
		},
		"valueEstimation": {
			"estimatedRawValueRange": "$20-$40",
			"estimatedGradedValueRange": "$80-$150"
		},
		"finalListing": {
			"ready": true,
			"suggestedTitle": "1989 Upper Deck Ken Griffey Jr. #1 Rookie",
			"itemSpecifics": {"Player": "Ken Griffey Jr.", "Year": "1989"}
		},
		"followUpSuggestions": []
	}`)

	doc, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, VariantVerbose, doc.Variant)
	require.NotNil(t, doc.Verbose)
	assert.Nil(t, doc.Simple)
	require.NotNil(t, doc.Verbose.CardIdentification)
	assert.Equal(t, "high", doc.Verbose.CardIdentification.ConfidenceLevel)
	require.NotNil(t, doc.Verbose.FinalListing)
	assert.True(t, doc.Verbose.FinalListing.Ready)
	assert.Contains(t, doc.Fields, "cardIdentification")
}

func TestDecodeSimple(t *testing.T) {
	raw := json.RawMessage(`{
		"category": "coins",
		"identification": {
			"title": "1943 Steel Cent",
			"subtitle": null,
			"confidence": "medium",
			"reasons": ["zinc-coated steel visible"],
			"key_fields": {"year": "1943", "mint": null}
		},
		"pricing": {
			"recommendation": "research_comps",
			"ebay_range_usd": {"low": 1, "high": 5},
			"suggested_format": "auction",
			"suggested_start_or_bin_usd": 0.99
		},
		"selling_strategy": {
			"sell_as": "lot",
			"next_steps": ["Photograph the mint mark"]
		}
	}`)

	doc, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, VariantSimple, doc.Variant)
	require.NotNil(t, doc.Simple)
	assert.Nil(t, doc.Verbose)
	assert.Equal(t, "1943 Steel Cent", doc.Simple.Identification.Title)
	assert.Equal(t, &MoneyRange{Low: 1, High: 5}, doc.Simple.Pricing.EbayRangeUSD)
	assert.Equal(t, []string{"Photograph the mint mark"}, doc.Simple.SellingStrategy.NextSteps)
}

func TestDecodeVerboseWinsWhenBothShapesPresent(t *testing.T) {
	raw := json.RawMessage(`{
		"identification": {"title": "x", "confidence": "low"},
		"finalListing": {"ready": false}
	}`)

	doc, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, VariantVerbose, doc.Variant)
}

func TestDecodeUnknown(t *testing.T) {
	doc, err := Decode(json.RawMessage(`{"somethingElse": 1}`))
	require.NoError(t, err)

	assert.Equal(t, VariantUnknown, doc.Variant)
	assert.Nil(t, doc.Verbose)
	assert.Nil(t, doc.Simple)
	assert.Contains(t, doc.Fields, "somethingElse")
}

func TestDecodeNonObject(t *testing.T) {
	_, err := Decode(json.RawMessage(`[1, 2, 3]`))
	assert.Error(t, err)
}

func TestDecodeTypeMismatchFails(t *testing.T) {
	_, err := Decode(json.RawMessage(`{"finalListing": {"ready": "yes"}}`))
	assert.Error(t, err)
}

func TestIdentificationPriorityOrder(t *testing.T) {
	coin := &VerboseIdentification{Country: "US", ConfidenceLevel: "high"}
	card := &VerboseIdentification{Player: "Jordan"}

	doc := &Document{
		Variant: VariantVerbose,
		Verbose: &VerboseResult{CoinIdentification: coin, CardIdentification: card},
	}
	assert.Same(t, coin, doc.Identification())

	doc.Verbose.CoinIdentification = nil
	assert.Same(t, card, doc.Identification())

	doc.Verbose.CardIdentification = nil
	assert.Nil(t, doc.Identification())
}
