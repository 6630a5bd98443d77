package analysis

import "github.com/collectorlens/collectorlens/internal/prompt"

// identificationAliases lists the verbose identification keys in aliasing
// priority order.
var identificationAliases = []string{
	"coinIdentification",
	"currencyIdentification",
	"cardIdentification",
}

// Normalize augments the transport fields in place so every consumer has one
// stable read path:
//
//   - when no usable "identification" key exists, alias whichever verbose
//     identification block is present, in coin/currency/card priority order;
//   - in card mode, attach the gradingROI block.
//
// Null-valued keys count as absent, matching how the consumers treat them.
func Normalize(doc *Document, mode prompt.Mode, cfg ROIConfig) {
	if doc == nil || doc.Fields == nil {
		return
	}

	if v, ok := doc.Fields["identification"]; !ok || v == nil {
		for _, key := range identificationAliases {
			if v, ok := doc.Fields[key]; ok && v != nil {
				doc.Fields["identification"] = v
				break
			}
		}
	}

	if mode == prompt.ModeCard {
		doc.Fields["gradingROI"] = ComputeGradingROI(doc, cfg)
	}
}
