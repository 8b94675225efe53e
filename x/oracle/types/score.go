package types

import (
	"math"

	sdkmath "cosmossdk.io/math"
)

const (
	// ScorePrecision is the fixed-point scale of contributor scores: 1e9 is 1.0.
	ScorePrecision uint64 = 1_000_000_000

	// InitialScore is the compliance and reliability score of a new contributor.
	InitialScore = ScorePrecision

	// MaxScore is the upper bound of both scores (100.0).
	MaxScore = 100 * ScorePrecision

	// PermanentBan is the BanExpiry sentinel of a permanently banned contributor.
	PermanentBan uint64 = math.MaxUint64
)

// ScoreToDec converts a fixed-point score to a decimal.
func ScoreToDec(score uint64) sdkmath.LegacyDec {
	return sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromUint64(score)).QuoInt64(int64(ScorePrecision))
}

// ScoreFromDec converts a decimal to a fixed-point score, truncating. Negative
// values become zero.
func ScoreFromDec(d sdkmath.LegacyDec) uint64 {
	if !d.IsPositive() {
		return 0
	}
	scaled := d.MulInt64(int64(ScorePrecision)).TruncateInt()
	if !scaled.IsUint64() {
		return math.MaxUint64
	}
	return scaled.Uint64()
}

// ClampScore bounds a fixed-point score to [0, MaxScore].
func ClampScore(score uint64) uint64 {
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// FormatScore renders a fixed-point score as a decimal string.
func FormatScore(score uint64) string {
	return ScoreToDec(score).String()
}
