package services

import "math"

const (
	processorFeeRate  = 0.029
	processorFeeFixed = 30 // minor units
	platformFeeRate   = 0.15
)

// FeeBreakdown is a minor-unit (cent) split of a booking total.
type FeeBreakdown struct {
	TotalMinor     int64 `json:"totalMinor"`
	ProcessorFee   int64 `json:"processorFee"`
	PlatformFee    int64 `json:"platformFee"`
	BusinessPayout int64 `json:"businessPayout"`
}

// CalculateFees splits a decimal amount into processor fee, platform fee
// and business payout, all in minor units. Each fee is rounded on its own;
// the payout is whatever remains, so the three parts always sum to the
// total even where the two fees drift from a single combined rounding.
func CalculateFees(amount float64) FeeBreakdown {
	minor := int64(math.Round(amount * 100))
	processor := int64(math.Round(float64(minor)*processorFeeRate + processorFeeFixed))
	platform := int64(math.Round(float64(minor) * platformFeeRate))

	return FeeBreakdown{
		TotalMinor:     minor,
		ProcessorFee:   processor,
		PlatformFee:    platform,
		BusinessPayout: minor - processor - platform,
	}
}
