package pattern

import "math"

// Built-in candlestick classifiers. Shapes are measured against the candle
// range with the usual body/shadow ratios; multi-candle patterns that need
// trend context approximate it with the close five bars back. Each emits
// 100 for a bullish signal, -100 for bearish, 0 otherwise.

const (
	dojiBodyMax    = 0.10 // body <= 10% of range
	shadowDominant = 0.60 // one shadow carries most of the range
	shadowTiny     = 0.10
	marubozuBody   = 0.95
	spinBodyMax    = 0.35
	starGapRatio   = 0.30 // star body small vs first candle body
)

func body(o, c float64) float64       { return math.Abs(c - o) }
func bodyTop(o, c float64) float64    { return math.Max(o, c) }
func bodyBottom(o, c float64) float64 { return math.Min(o, c) }
func candleRange(h, l float64) float64 {
	return h - l
}
func upperShadow(o, h, c float64) float64 { return h - bodyTop(o, c) }
func lowerShadow(o, l, c float64) float64 { return bodyBottom(o, c) - l }
func isBull(o, c float64) bool            { return c > o }
func isBear(o, c float64) bool            { return c < o }

func isDoji(o, h, l, c float64) bool {
	r := candleRange(h, l)
	return r > 0 && body(o, c) <= dojiBodyMax*r
}

// hammerShape: small body near the top, long lower shadow, little above.
func hammerShape(o, h, l, c float64) bool {
	r := candleRange(h, l)
	if r <= 0 {
		return false
	}
	b := body(o, c)
	return b > 0 && b <= spinBodyMax*r &&
		lowerShadow(o, l, c) >= 2*b &&
		upperShadow(o, h, c) <= shadowTiny*r
}

// invertedHammerShape: small body near the bottom, long upper shadow.
func invertedHammerShape(o, h, l, c float64) bool {
	r := candleRange(h, l)
	if r <= 0 {
		return false
	}
	b := body(o, c)
	return b > 0 && b <= spinBodyMax*r &&
		upperShadow(o, h, c) >= 2*b &&
		lowerShadow(o, l, c) <= shadowTiny*r
}

// downtrend approximates trend context: price below where it stood five
// bars earlier.
func downtrend(closes []float64, i int) bool {
	if i < 5 {
		return false
	}
	return closes[i-1] < closes[i-5]
}

func uptrend(closes []float64, i int) bool {
	if i < 5 {
		return false
	}
	return closes[i-1] > closes[i-5]
}

// perRow builds a classifier from a per-row predicate returning the signal
// code for row i. The predicate sees the full arrays so multi-candle
// patterns can look back.
func perRow(fn func(open, high, low, closes []float64, i int) int32) Func {
	return func(open, high, low, closes []float64) []int32 {
		out := make([]int32, len(closes))
		for i := range out {
			out[i] = fn(open, high, low, closes, i)
		}
		return out
	}
}

// DefaultCatalog returns the standard classifier set in display order.
func DefaultCatalog() Catalog {
	return Catalog{
		{"doji", perRow(func(o, h, l, c []float64, i int) int32 {
			if isDoji(o[i], h[i], l[i], c[i]) {
				return 100
			}
			return 0
		})},
		{"dragonfly_doji", perRow(func(o, h, l, c []float64, i int) int32 {
			r := candleRange(h[i], l[i])
			if isDoji(o[i], h[i], l[i], c[i]) &&
				lowerShadow(o[i], l[i], c[i]) >= shadowDominant*r &&
				upperShadow(o[i], h[i], c[i]) <= shadowTiny*r {
				return 100
			}
			return 0
		})},
		{"gravestone_doji", perRow(func(o, h, l, c []float64, i int) int32 {
			r := candleRange(h[i], l[i])
			if isDoji(o[i], h[i], l[i], c[i]) &&
				upperShadow(o[i], h[i], c[i]) >= shadowDominant*r &&
				lowerShadow(o[i], l[i], c[i]) <= shadowTiny*r {
				return -100
			}
			return 0
		})},
		{"hammer", perRow(func(o, h, l, c []float64, i int) int32 {
			if downtrend(c, i) && hammerShape(o[i], h[i], l[i], c[i]) {
				return 100
			}
			return 0
		})},
		{"inverted_hammer", perRow(func(o, h, l, c []float64, i int) int32 {
			if downtrend(c, i) && invertedHammerShape(o[i], h[i], l[i], c[i]) {
				return 100
			}
			return 0
		})},
		{"hanging_man", perRow(func(o, h, l, c []float64, i int) int32 {
			if uptrend(c, i) && hammerShape(o[i], h[i], l[i], c[i]) {
				return -100
			}
			return 0
		})},
		{"shooting_star", perRow(func(o, h, l, c []float64, i int) int32 {
			if uptrend(c, i) && invertedHammerShape(o[i], h[i], l[i], c[i]) {
				return -100
			}
			return 0
		})},
		{"marubozu", perRow(func(o, h, l, c []float64, i int) int32 {
			r := candleRange(h[i], l[i])
			if r <= 0 || body(o[i], c[i]) < marubozuBody*r {
				return 0
			}
			if isBull(o[i], c[i]) {
				return 100
			}
			if isBear(o[i], c[i]) {
				return -100
			}
			return 0
		})},
		{"spinning_top", perRow(func(o, h, l, c []float64, i int) int32 {
			r := candleRange(h[i], l[i])
			b := body(o[i], c[i])
			if r <= 0 || b == 0 || b > spinBodyMax*r ||
				upperShadow(o[i], h[i], c[i]) <= b || lowerShadow(o[i], l[i], c[i]) <= b {
				return 0
			}
			if isBull(o[i], c[i]) {
				return 100
			}
			return -100
		})},
		{"engulfing", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 1 {
				return 0
			}
			if isBear(o[i-1], c[i-1]) && isBull(o[i], c[i]) &&
				o[i] <= c[i-1] && c[i] >= o[i-1] && body(o[i], c[i]) > body(o[i-1], c[i-1]) {
				return 100
			}
			if isBull(o[i-1], c[i-1]) && isBear(o[i], c[i]) &&
				o[i] >= c[i-1] && c[i] <= o[i-1] && body(o[i], c[i]) > body(o[i-1], c[i-1]) {
				return -100
			}
			return 0
		})},
		{"harami", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 1 {
				return 0
			}
			inside := bodyTop(o[i], c[i]) < bodyTop(o[i-1], c[i-1]) &&
				bodyBottom(o[i], c[i]) > bodyBottom(o[i-1], c[i-1])
			if !inside {
				return 0
			}
			if isBear(o[i-1], c[i-1]) && isBull(o[i], c[i]) {
				return 100
			}
			if isBull(o[i-1], c[i-1]) && isBear(o[i], c[i]) {
				return -100
			}
			return 0
		})},
		{"piercing", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 1 || !downtrend(c, i) {
				return 0
			}
			mid := (o[i-1] + c[i-1]) / 2
			if isBear(o[i-1], c[i-1]) && isBull(o[i], c[i]) &&
				o[i] < c[i-1] && c[i] > mid && c[i] < o[i-1] {
				return 100
			}
			return 0
		})},
		{"dark_cloud_cover", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 1 || !uptrend(c, i) {
				return 0
			}
			mid := (o[i-1] + c[i-1]) / 2
			if isBull(o[i-1], c[i-1]) && isBear(o[i], c[i]) &&
				o[i] > c[i-1] && c[i] < mid && c[i] > o[i-1] {
				return -100
			}
			return 0
		})},
		{"morning_star", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 2 || !downtrend(c, i-1) {
				return 0
			}
			first := body(o[i-2], c[i-2])
			star := body(o[i-1], c[i-1])
			if isBear(o[i-2], c[i-2]) && first > 0 && star <= starGapRatio*first &&
				bodyTop(o[i-1], c[i-1]) < c[i-2] &&
				isBull(o[i], c[i]) && c[i] > (o[i-2]+c[i-2])/2 {
				return 100
			}
			return 0
		})},
		{"evening_star", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 2 || !uptrend(c, i-1) {
				return 0
			}
			first := body(o[i-2], c[i-2])
			star := body(o[i-1], c[i-1])
			if isBull(o[i-2], c[i-2]) && first > 0 && star <= starGapRatio*first &&
				bodyBottom(o[i-1], c[i-1]) > c[i-2] &&
				isBear(o[i], c[i]) && c[i] < (o[i-2]+c[i-2])/2 {
				return -100
			}
			return 0
		})},
		{"three_white_soldiers", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 2 {
				return 0
			}
			for j := i - 2; j <= i; j++ {
				if !isBull(o[j], c[j]) {
					return 0
				}
			}
			if c[i-1] > c[i-2] && c[i] > c[i-1] &&
				o[i-1] > o[i-2] && o[i-1] < c[i-2] &&
				o[i] > o[i-1] && o[i] < c[i-1] {
				return 100
			}
			return 0
		})},
		{"three_black_crows", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 2 {
				return 0
			}
			for j := i - 2; j <= i; j++ {
				if !isBear(o[j], c[j]) {
					return 0
				}
			}
			if c[i-1] < c[i-2] && c[i] < c[i-1] &&
				o[i-1] < o[i-2] && o[i-1] > c[i-2] &&
				o[i] < o[i-1] && o[i] > c[i-1] {
				return -100
			}
			return 0
		})},
		{"two_crows", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 2 || !uptrend(c, i-1) {
				return 0
			}
			if isBull(o[i-2], c[i-2]) &&
				isBear(o[i-1], c[i-1]) && bodyBottom(o[i-1], c[i-1]) > c[i-2] &&
				isBear(o[i], c[i]) && o[i] > c[i-1] && c[i] < c[i-2] && c[i] > o[i-2] {
				return -100
			}
			return 0
		})},
		{"three_inside", perRow(func(o, h, l, c []float64, i int) int32 {
			if i < 2 {
				return 0
			}
			inside := bodyTop(o[i-1], c[i-1]) < bodyTop(o[i-2], c[i-2]) &&
				bodyBottom(o[i-1], c[i-1]) > bodyBottom(o[i-2], c[i-2])
			if !inside {
				return 0
			}
			if isBear(o[i-2], c[i-2]) && isBull(o[i-1], c[i-1]) && c[i] > bodyTop(o[i-2], c[i-2]) {
				return 100
			}
			if isBull(o[i-2], c[i-2]) && isBear(o[i-1], c[i-1]) && c[i] < bodyBottom(o[i-2], c[i-2]) {
				return -100
			}
			return 0
		})},
	}
}
