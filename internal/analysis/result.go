package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Variant is the mandatory discriminant between the two response shapes the
// model is known to produce. It is detected once, here at the trust boundary;
// downstream consumers branch on it instead of probing for keys.
type Variant string

const (
	// VariantVerbose is the category-specific shape: *Identification block,
	// conditionAssessment, valueEstimation, finalListing, followUpSuggestions.
	VariantVerbose Variant = "verbose"
	// VariantSimple is the compact shape: identification, condition, pricing,
	// selling_strategy.
	VariantSimple Variant = "simple"
	// VariantUnknown marks structurally alien output. It still renders, with
	// every projection falling back to its placeholder.
	VariantUnknown Variant = "unknown"
)

// Document is a decoded model response. Fields preserves the full generic
// object for transport so keys the typed structs do not know about survive
// the round trip; Verbose/Simple hold the typed view matching Variant.
type Document struct {
	Variant Variant
	Fields  map[string]any
	Verbose *VerboseResult
	Simple  *SimpleResult
}

// VerboseIdentification is the union of the per-category identification
// fields the projections read. Unused fields stay empty for other categories.
type VerboseIdentification struct {
	Country          string `json:"country"`
	Denomination     string `json:"denomination"`
	Year             string `json:"year"`
	SeriesOrType     string `json:"seriesOrType"`
	SeriesYearOrDate string `json:"seriesYearOrDate"`
	Player           string `json:"player"`
	Manufacturer     string `json:"manufacturer"`
	CardSet          string `json:"cardSet"`
	ConfidenceLevel  string `json:"confidenceLevel"`
	Uncertainties    string `json:"uncertainties"`
}

type ValueEstimation struct {
	EstimatedRawValueRange    string `json:"estimatedRawValueRange"`
	EstimatedGradedValueRange string `json:"estimatedGradedValueRange"`
	Assumptions               string `json:"assumptions"`
	PricingConfidence         string `json:"pricingConfidence"`
}

type FinalListing struct {
	Ready          bool              `json:"ready"`
	SuggestedTitle string            `json:"suggestedTitle"`
	KeyDetails     map[string]string `json:"keyDetails"`
	ItemSpecifics  map[string]string `json:"itemSpecifics"`
}

type VerboseResult struct {
	CoinIdentification     *VerboseIdentification `json:"coinIdentification"`
	CurrencyIdentification *VerboseIdentification `json:"currencyIdentification"`
	CardIdentification     *VerboseIdentification `json:"cardIdentification"`
	ValueEstimation        *ValueEstimation       `json:"valueEstimation"`
	FinalListing           *FinalListing          `json:"finalListing"`
	FollowUpSuggestions    []string               `json:"followUpSuggestions"`
}

type SimpleIdentification struct {
	Title      string             `json:"title"`
	Subtitle   *string            `json:"subtitle"`
	Confidence string             `json:"confidence"`
	Reasons    []string           `json:"reasons"`
	KeyFields  map[string]*string `json:"key_fields"`
}

type SimpleCondition struct {
	GuessedGradeBand string   `json:"guessed_grade_band"`
	Notes            []string `json:"notes"`
	RedFlags         []string `json:"red_flags"`
}

type SimplePricing struct {
	Recommendation         string      `json:"recommendation"`
	EbayRangeUSD           *MoneyRange `json:"ebay_range_usd"`
	SuggestedFormat        string      `json:"suggested_format"`
	SuggestedStartOrBinUSD *float64    `json:"suggested_start_or_bin_usd"`
	Rationale              []string    `json:"rationale"`
}

type SellingStrategy struct {
	SellAs                 string   `json:"sell_as"`
	LottingNotes           []string `json:"lotting_notes"`
	TitleTemplate          string   `json:"title_template"`
	PhotoChecklist         []string `json:"photo_checklist"`
	ShippingRecommendation string   `json:"shipping_recommendation"`
	Warnings               []string `json:"warnings"`
	NextSteps              []string `json:"next_steps"`
}

type SimpleResult struct {
	Category        string                `json:"category"`
	Identification  *SimpleIdentification `json:"identification"`
	Condition       *SimpleCondition      `json:"condition"`
	Pricing         *SimplePricing        `json:"pricing"`
	SellingStrategy *SellingStrategy      `json:"selling_strategy"`
}

// verboseKeys and simpleKeys decide the variant. Checked in this order, so an
// object carrying keys from both shapes counts as verbose.
var (
	verboseKeys = []string{
		"cardIdentification", "coinIdentification", "currencyIdentification",
		"finalListing", "valueEstimation",
	}
	simpleKeys = []string{"identification", "pricing", "selling_strategy"}
)

func detectVariant(raw json.RawMessage) Variant {
	for _, k := range verboseKeys {
		if gjson.GetBytes(raw, k).Exists() {
			return VariantVerbose
		}
	}
	for _, k := range simpleKeys {
		if gjson.GetBytes(raw, k).Exists() {
			return VariantSimple
		}
	}
	return VariantUnknown
}

// Decode validates raw as a JSON object, stamps the variant discriminant, and
// unmarshals the matching typed view. Type mismatches against the known
// schemas fail here rather than surfacing mid-projection.
func Decode(raw json.RawMessage) (*Document, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}

	doc := &Document{
		Variant: detectVariant(raw),
		Fields:  fields,
	}

	switch doc.Variant {
	case VariantVerbose:
		var v VerboseResult
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode verbose result: %w", err)
		}
		doc.Verbose = &v
	case VariantSimple:
		var s SimpleResult
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode simple result: %w", err)
		}
		doc.Simple = &s
	}

	return doc, nil
}

// Identification returns the verbose identification block in the aliasing
// priority order (coin, then currency, then card), or nil.
func (d *Document) Identification() *VerboseIdentification {
	if d.Verbose == nil {
		return nil
	}
	switch {
	case d.Verbose.CoinIdentification != nil:
		return d.Verbose.CoinIdentification
	case d.Verbose.CurrencyIdentification != nil:
		return d.Verbose.CurrencyIdentification
	case d.Verbose.CardIdentification != nil:
		return d.Verbose.CardIdentification
	}
	return nil
}
