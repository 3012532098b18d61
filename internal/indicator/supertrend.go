package indicator

// supertrend runs the banded trend recurrence over the full windowed row
// range. It is the one derivation that cannot be a vectorized transform:
// each row's bands depend on the previous row's bands and on whether the
// previous close broke through them.
//
// Band transitions: a band only tightens toward price (upper moves down,
// lower moves up) unless the prior close already broke through it, in which
// case it resets to the raw band. The trend line then flips between the two
// bands on close crossings.
//
// When a band freezes, the trend line can in principle have been assigned
// from the other side, so that trendLine[i-1] matches neither band exactly.
// That branch is carried forward unchanged (trendLine[i] = trendLine[i-1])
// to keep the output deterministic.
func supertrend(closes, mid, atr []float64, multiplier float64) (upperBand, lowerBand, trendLine []float64) {
	n := len(closes)
	upperBand = make([]float64, n)
	lowerBand = make([]float64, n)
	trendLine = make([]float64, n)
	if n == 0 {
		return
	}

	rawUpper := make([]float64, n)
	rawLower := make([]float64, n)
	for i := range rawUpper {
		rawUpper[i] = mid[i] + multiplier*atr[i]
		rawLower[i] = mid[i] - multiplier*atr[i]
	}

	upperBand[0] = rawUpper[0]
	lowerBand[0] = rawLower[0]
	if closes[0] <= upperBand[0] {
		trendLine[0] = upperBand[0]
	} else {
		trendLine[0] = lowerBand[0]
	}

	for i := 1; i < n; i++ {
		if rawUpper[i] < upperBand[i-1] || closes[i-1] > upperBand[i-1] {
			upperBand[i] = rawUpper[i]
		} else {
			upperBand[i] = upperBand[i-1]
		}

		if rawLower[i] > lowerBand[i-1] || closes[i-1] < lowerBand[i-1] {
			lowerBand[i] = rawLower[i]
		} else {
			lowerBand[i] = lowerBand[i-1]
		}

		switch trendLine[i-1] {
		case upperBand[i-1]:
			if closes[i] <= upperBand[i] {
				trendLine[i] = upperBand[i]
			} else {
				trendLine[i] = lowerBand[i]
			}
		case lowerBand[i-1]:
			if closes[i] > lowerBand[i] {
				trendLine[i] = lowerBand[i]
			} else {
				trendLine[i] = upperBand[i]
			}
		default:
			trendLine[i] = trendLine[i-1]
		}
	}
	return
}
