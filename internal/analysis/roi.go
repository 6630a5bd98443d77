package analysis

// ROIConfig carries the fee constants the grading-ROI block reports. They
// come from the process configuration, never from the environment at call
// time.
type ROIConfig struct {
	FeeRate         float64
	GradingAllInUSD float64
}

// GradingROI describes whether a grade-then-sell ROI estimate could be
// produced for a card. The computation itself is an acknowledged stub: both
// branches report Ready=false, either because the inputs do not qualify or
// because the monetary math was never finished. Consumers must treat
// Ready=false as the only state this feature currently has.
type GradingROI struct {
	Ready        bool        `json:"ready"`
	Reason       string      `json:"reason"`
	FeeRate      float64     `json:"feeRate"`
	GradingAllIn float64     `json:"gradingAllIn"`
	RawRange     *MoneyRange `json:"rawRange,omitempty"`
	GradedRange  *MoneyRange `json:"gradedRange,omitempty"`
}

const (
	roiReasonNotEligible    = "Needs confidenceLevel=high and both value ranges to compute ROI."
	roiReasonNotImplemented = "ROI calculation not implemented (ported as-is from smoke test)."
)

// ComputeGradingROI gates on high card-identification confidence plus two
// parseable value ranges. Qualifying input reaches the not-implemented
// terminal state with the parsed ranges attached for diagnostics.
func ComputeGradingROI(doc *Document, cfg ROIConfig) GradingROI {
	roi := GradingROI{
		FeeRate:      cfg.FeeRate,
		GradingAllIn: cfg.GradingAllInUSD,
	}

	var (
		confidence  string
		rawRange    *MoneyRange
		gradedRange *MoneyRange
	)
	if doc != nil && doc.Verbose != nil {
		if ci := doc.Verbose.CardIdentification; ci != nil {
			confidence = ci.ConfidenceLevel
		}
		if ve := doc.Verbose.ValueEstimation; ve != nil {
			rawRange = ParseMoneyRange(ve.EstimatedRawValueRange)
			gradedRange = ParseMoneyRange(ve.EstimatedGradedValueRange)
		}
	}

	if confidence != "high" || rawRange == nil || gradedRange == nil {
		roi.Reason = roiReasonNotEligible
		return roi
	}

	roi.Reason = roiReasonNotImplemented
	roi.RawRange = rawRange
	roi.GradedRange = gradedRange
	return roi
}
