package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	// ChanceBaseline is the chance of a player with no deposits
	ChanceBaseline = 30

	// ChanceCeiling is the hard upper bound regardless of deposits
	ChanceCeiling = 85
)

// ComputeChance maps a cumulative deposit total onto a win chance in [30, 85].
//
//	total <= 100       30 + floor(total/5)           -> [30, 50]
//	100 < total <= 300 50 + floor((total-100)/10)    -> [50, 70]
//	total > 300        70 + floor(min(total-300, 750)/50) -> [70, 85]
//
// The total must be finite and non-negative; ValidateDepositAmount guards deposits.
func ComputeChance(total float64) int {
	var chance int
	switch {
	case total <= 100:
		chance = 30 + int(math.Floor(math.Min(total, 100)/5))
	case total <= 300:
		chance = 50 + int(math.Floor(math.Min(total-100, 200)/10))
	default:
		chance = 70 + int(math.Floor(math.Min(total-300, 750)/50))
	}

	if chance > ChanceCeiling {
		return ChanceCeiling
	}
	if chance < ChanceBaseline {
		return ChanceBaseline
	}
	return chance
}

// ParseDepositAmount parses a raw amount into a finite, strictly positive number
func ParseDepositAmount(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, NewInvalidAmountError(raw)
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, NewInvalidAmountError(raw)
	}
	if err := ValidateDepositAmount(amount); err != nil {
		return 0, err
	}
	return RoundCents(amount), nil
}

// RoundCents rounds x half away from zero to the two decimals deposit_total stores
func RoundCents(x float64) float64 {
	return math.Round(x*100) / 100
}

// ValidateDepositAmount rejects NaN, infinities and amounts that are not positive once rounded to cents
func ValidateDepositAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || RoundCents(amount) <= 0 {
		return NewInvalidAmountError(strconv.FormatFloat(amount, 'f', -1, 64))
	}
	return nil
}
