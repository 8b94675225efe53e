package keeper

import (
	"math"
	"strconv"

	sdkmath "cosmossdk.io/math"

	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

var (
	baseScoreIncrement   = sdkmath.LegacyNewDec(20)
	basePenalty          = sdkmath.LegacyNewDec(20)
	streakFactor         = sdkmath.LegacyNewDecWithPrec(1, 1) // 0.1 per report in the streak
	failureFactor        = sdkmath.LegacyNewDecWithPrec(5, 1) // 0.5 per consensus failure
	maxStreakMultiplier  = sdkmath.LegacyNewDec(2)
	maxStreakBonus       = sdkmath.LegacyNewDec(3)
	maxPenaltyMultiplier = sdkmath.LegacyNewDec(3)
	maxScoreDec          = sdkmath.LegacyNewDec(100)
)

const (
	secondsPerHour    = 3600
	timeWeightHours   = 480 // 20 days
	dailyDecayRate    = 0.99
	logisticSteepness = 0.1
	logisticMidpoint  = 50.0
)

// UpdateContributor applies the outcome of one finalized report to c. It is a
// no-op returning false when c is banned at now.
func UpdateContributor(c types.Contributor, now uint64, accurate bool, params types.Params) (types.Contributor, bool) {
	if c.IsBanned(now) {
		return c, false
	}

	var elapsed uint64
	if now > c.LastActiveTimestamp {
		elapsed = now - c.LastActiveTimestamp
	}
	hours := sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromUint64(elapsed)).QuoInt64(secondsPerHour)
	streak := sdkmath.LegacyNewDec(int64(c.CurrentStreak)).Mul(streakFactor)

	score := types.ScoreToDec(c.ComplianceScore).Mul(decayFactor(hours))

	c.TotalReportsSubmitted++
	if accurate {
		c.AccurateReportsCount++
		c.CurrentStreak++

		multiplier := sdkmath.LegacyMinDec(sdkmath.LegacyOneDec().Add(streak), maxStreakMultiplier)
		timeWeight := sdkmath.LegacyOneDec().Quo(sdkmath.LegacyOneDec().Add(hours.QuoInt64(timeWeightHours)))
		increment := baseScoreIncrement.Mul(multiplier).Mul(timeWeight).Add(sdkmath.LegacyMinDec(streak, maxStreakBonus))
		score = score.Add(increment)
	} else {
		c.CurrentStreak = 0
		c.ConsensusFailures++

		failures := sdkmath.LegacyNewDec(int64(c.ConsensusFailures))
		multiplier := sdkmath.LegacyMinDec(sdkmath.LegacyOneDec().Add(failures.Mul(failureFactor)), maxPenaltyMultiplier)
		score = sdkmath.LegacyMaxDec(score.Sub(basePenalty.Mul(multiplier)), sdkmath.LegacyZeroDec())
	}

	reliability := sdkmath.LegacyNewDec(int64(c.AccurateReportsCount)).QuoInt64(int64(c.TotalReportsSubmitted))
	reliability = sdkmath.LegacyMinDec(sdkmath.LegacyMaxDec(reliability, sdkmath.LegacyZeroDec()), sdkmath.LegacyOneDec())

	score = sdkmath.LegacyMinDec(score.Mul(reliability), maxScoreDec)
	score = logistic(score)

	c.ComplianceScore = types.ClampScore(types.ScoreFromDec(score))
	c.ReliabilityScore = types.ClampScore(types.ScoreFromDec(reliability.MulInt64(100)))
	c.LastActiveTimestamp = now

	if !accurate {
		c = applyBans(c, now, params)
	}

	return c.RefreshStatuses(now, params), true
}

// applyBans checks the permanent threshold first; the temporary ban triggers
// on every TemporaryBanThreshold-th failure once enough reports were made.
func applyBans(c types.Contributor, now uint64, params types.Params) types.Contributor {
	switch {
	case c.TotalReportsSubmitted >= params.ContributionsForPermanentBan &&
		c.ConsensusFailures >= params.PermanentBanThreshold:
		c.BanExpiry = types.PermanentBan
	case c.TotalReportsSubmitted >= params.ContributionsForTemporaryBan &&
		c.ConsensusFailures%params.TemporaryBanThreshold == 0:
		c.BanExpiry = now + params.TemporaryBanDuration
	}
	return c
}

// decayFactor returns 0.99^(hours/24).
func decayFactor(hours sdkmath.LegacyDec) sdkmath.LegacyDec {
	return floatToDec(math.Pow(dailyDecayRate, hours.MustFloat64()/24))
}

// logistic maps a score in [0, 100] to 100 / (1 + e^(-0.1 × (score - 50))).
func logistic(score sdkmath.LegacyDec) sdkmath.LegacyDec {
	x := score.MustFloat64()
	return floatToDec(100 / (1 + math.Exp(-logisticSteepness*(x-logisticMidpoint))))
}

func floatToDec(f float64) sdkmath.LegacyDec {
	if math.IsNaN(f) || f <= 0 {
		return sdkmath.LegacyZeroDec()
	}
	return sdkmath.LegacyMustNewDecFromStr(strconv.FormatFloat(f, 'f', sdkmath.LegacyPrecision, 64))
}
