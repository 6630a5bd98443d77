// Package report projects a decoded analysis document onto the single view
// model every surface renders from. All functions are pure and total over
// missing fields: an empty document still yields a renderable report with
// placeholder values.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/collectorlens/collectorlens/internal/analysis"
)

// Fallback literals for fields the model did not populate.
const (
	fallbackTitle      = "Result"
	fallbackConfidence = "unknown"
	fallbackValue      = "—"
)

// Bundle decision values.
const (
	DecisionSellIndividually = "Sell Individually"
	DecisionBundle           = "Bundle"
)

type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Bundle struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// Report is the display-ready projection of one analysis result.
type Report struct {
	Title        string   `json:"title"`
	Confidence   string   `json:"confidence"`
	PriceLine    string   `json:"priceLine,omitempty"`
	KeyDetails   []Detail `json:"keyDetails"`
	ListingReady bool     `json:"listingReady"`
	FollowUps    []string `json:"followUps"`
	Bundle       Bundle   `json:"bundle"`
	Variant      string   `json:"variant"`
}

// Build produces the view model for doc. A nil document yields the all-
// fallback report rather than an error; the page renders it the same way.
func Build(doc *analysis.Document) *Report {
	variant := analysis.VariantUnknown
	if doc != nil {
		variant = doc.Variant
	}
	return &Report{
		Title:        Title(doc),
		Confidence:   Confidence(doc),
		PriceLine:    PriceLine(doc),
		KeyDetails:   KeyDetails(doc),
		ListingReady: ListingReady(doc),
		FollowUps:    FollowUps(doc),
		Bundle:       BundleRecommendation(doc),
		Variant:      string(variant),
	}
}

// Title picks the best display title available: the simple identification
// title, the suggested listing title, or one assembled from the category
// identification fields.
func Title(doc *analysis.Document) string {
	switch {
	case doc == nil:
		return fallbackTitle

	case doc.Simple != nil:
		if id := doc.Simple.Identification; id != nil && id.Title != "" {
			return id.Title
		}
		return fallbackTitle

	case doc.Verbose != nil:
		v := doc.Verbose
		if fl := v.FinalListing; fl != nil && fl.SuggestedTitle != "" {
			return fl.SuggestedTitle
		}
		if ci := v.CardIdentification; ci != nil {
			return joinFields("Sports Card", ci.Year, ci.Manufacturer, ci.CardSet, ci.Player)
		}
		if ci := v.CoinIdentification; ci != nil {
			return joinFields("Coin", ci.Year, ci.Country, ci.Denomination, ci.SeriesOrType)
		}
		if cu := v.CurrencyIdentification; cu != nil {
			return joinFields("Currency", cu.SeriesYearOrDate, cu.Country, cu.Denomination)
		}
	}
	return fallbackTitle
}

// joinFields joins the non-empty parts with single spaces, falling back when
// every part is empty.
func joinFields(fallback string, parts ...string) string {
	joined := strings.Join(parts, " ")
	trimmed := strings.Join(strings.Fields(joined), " ")
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func Confidence(doc *analysis.Document) string {
	switch {
	case doc == nil:
		return fallbackConfidence

	case doc.Simple != nil:
		if id := doc.Simple.Identification; id != nil && id.Confidence != "" {
			return id.Confidence
		}

	case doc.Verbose != nil:
		v := doc.Verbose
		for _, id := range []*analysis.VerboseIdentification{
			v.CardIdentification, v.CoinIdentification, v.CurrencyIdentification,
		} {
			if id != nil && id.ConfidenceLevel != "" {
				return id.ConfidenceLevel
			}
		}
	}
	return fallbackConfidence
}

// PriceLine formats the human-readable price summary, or "" when the result
// carries no pricing information.
func PriceLine(doc *analysis.Document) string {
	switch {
	case doc == nil:
		return ""

	case doc.Simple != nil:
		p := doc.Simple.Pricing
		if p == nil || p.EbayRangeUSD == nil {
			return ""
		}
		line := fmt.Sprintf("Estimated eBay range: $%.0f–$%.0f", p.EbayRangeUSD.Low, p.EbayRangeUSD.High)
		if p.SuggestedStartOrBinUSD != nil {
			format := "format"
			if p.SuggestedFormat != "" {
				format = strings.ReplaceAll(p.SuggestedFormat, "_", " ")
			}
			line += fmt.Sprintf(" • Suggested %s: $%.0f", format, *p.SuggestedStartOrBinUSD)
		}
		return line

	case doc.Verbose != nil:
		ve := doc.Verbose.ValueEstimation
		if ve == nil {
			return ""
		}
		switch {
		case ve.EstimatedRawValueRange != "" && ve.EstimatedGradedValueRange != "":
			return "Estimated raw: " + ve.EstimatedRawValueRange + " • Estimated graded: " + ve.EstimatedGradedValueRange
		case ve.EstimatedRawValueRange != "":
			return "Estimated raw: " + ve.EstimatedRawValueRange
		}
	}
	return ""
}

// KeyDetails returns labeled identification pairs, sorted by label for stable
// rendering. Missing values show the placeholder so the label set stays
// visible even when the model leaves fields blank.
func KeyDetails(doc *analysis.Document) []Detail {
	switch {
	case doc == nil:
		return nil

	case doc.Simple != nil:
		id := doc.Simple.Identification
		if id == nil || len(id.KeyFields) == 0 {
			return nil
		}
		details := make([]Detail, 0, len(id.KeyFields))
		for label, value := range id.KeyFields {
			d := Detail{Label: label, Value: fallbackValue}
			if value != nil && *value != "" {
				d.Value = *value
			}
			details = append(details, d)
		}
		sortDetails(details)
		return details

	case doc.Verbose != nil:
		fl := doc.Verbose.FinalListing
		if fl == nil {
			return nil
		}
		pairs := fl.KeyDetails
		if len(pairs) == 0 {
			pairs = fl.ItemSpecifics
		}
		if len(pairs) == 0 {
			return nil
		}
		details := make([]Detail, 0, len(pairs))
		for label, value := range pairs {
			if value == "" {
				value = fallbackValue
			}
			details = append(details, Detail{Label: label, Value: value})
		}
		sortDetails(details)
		return details
	}
	return nil
}

func sortDetails(details []Detail) {
	sort.Slice(details, func(i, j int) bool { return details[i].Label < details[j].Label })
}

// ListingReady reports whether the result presents the item as sale-ready:
// the finality gate for the verbose shape, the listing recommendation for the
// simple one.
func ListingReady(doc *analysis.Document) bool {
	switch {
	case doc == nil:
		return false
	case doc.Simple != nil:
		return doc.Simple.Pricing != nil && doc.Simple.Pricing.Recommendation == "list_on_ebay"
	case doc.Verbose != nil:
		return doc.Verbose.FinalListing != nil && doc.Verbose.FinalListing.Ready
	}
	return false
}

func FollowUps(doc *analysis.Document) []string {
	switch {
	case doc == nil:
		return nil
	case doc.Simple != nil:
		if ss := doc.Simple.SellingStrategy; ss != nil {
			return ss.NextSteps
		}
	case doc.Verbose != nil:
		return doc.Verbose.FollowUpSuggestions
	}
	return nil
}

// BundleRecommendation decides between selling the item alone or bundling it
// with similar items. High confidence plus a sale-ready listing is the only
// path to an individual sale; everything else bundles, with the reason
// reflecting whether follow-ups explain what is missing.
func BundleRecommendation(doc *analysis.Document) Bundle {
	if doc != nil && doc.Simple != nil {
		conf := Confidence(doc)
		if conf == "high" && ListingReady(doc) {
			return Bundle{
				Decision: DecisionSellIndividually,
				Reason:   "High confidence + eBay-ready guidance suggests listing this item alone for best return.",
			}
		}
		return Bundle{
			Decision: DecisionBundle,
			Reason:   "When confidence/value is uncertain, bundling with similar items reduces risk and can improve sell-through.",
		}
	}

	if doc != nil && doc.Verbose != nil {
		if Confidence(doc) == "high" && ListingReady(doc) {
			return Bundle{
				Decision: DecisionSellIndividually,
				Reason:   "Clear ID + listing ready usually performs best as a single listing.",
			}
		}
		if len(doc.Verbose.FollowUpSuggestions) > 0 {
			return Bundle{
				Decision: DecisionBundle,
				Reason:   "Uncertainty/missing details often sell better when grouped with similar items.",
			}
		}
	}

	return Bundle{
		Decision: DecisionBundle,
		Reason:   "When details are unclear, bundling reduces time-to-sell and downside risk.",
	}
}
