package indicator

import (
	"math"

	"github.com/markcheno/go-talib"
)

// indicatorSteps returns the standard derivation set in dependency order.
// Column names follow the persisted schema. Sanitization is applied per
// column right where it is produced: ratio and difference formulas replace
// NaN+Inf, smoothing outputs replace NaN only. Scratch columns shared
// across steps (m_price, prev_close, tr, hl_avg, ...) are stored on the
// frame like any other column so later steps read exactly what the
// producing step sanitized.
func indicatorSteps() []Step {
	return []Step{
		{
			Name:   "macd",
			Reads:  []string{ColClose},
			Writes: []string{"macd", "macds", "macdh"},
			Run: func(f *Frame) {
				macd, macds, macdh := taMacd(f.Col(ColClose), 12, 26, 9)
				replaceNaN(macd)
				replaceNaN(macds)
				replaceNaN(macdh)
				f.Set("macd", macd)
				f.Set("macds", macds)
				f.Set("macdh", macdh)
			},
		},
		{
			Name:   "kdj",
			Reads:  []string{ColHigh, ColLow, ColClose},
			Writes: []string{"kdjk", "kdjd", "kdjj"},
			Run: func(f *Frame) {
				k, d := taStoch(f.Col(ColHigh), f.Col(ColLow), f.Col(ColClose), 9, 5, talib.EMA, 5, talib.EMA)
				replaceNaN(k)
				replaceNaN(d)
				j := make([]float64, f.Len())
				for i := range j {
					j[i] = 3*k[i] - 2*d[i]
				}
				f.Set("kdjk", k)
				f.Set("kdjd", d)
				f.Set("kdjj", j)
			},
		},
		{
			Name:   "boll",
			Reads:  []string{ColClose},
			Writes: []string{"boll_ub", "boll", "boll_lb"},
			Run: func(f *Frame) {
				ub, mid, lb := taBBands(f.Col(ColClose), 20, 2, 2, talib.SMA)
				replaceNaN(ub)
				replaceNaN(mid)
				replaceNaN(lb)
				f.Set("boll_ub", ub)
				f.Set("boll", mid)
				f.Set("boll_lb", lb)
			},
		},
		{
			Name:   "trix",
			Reads:  []string{ColClose},
			Writes: []string{"trix", "trix_20_sma"},
			Run: func(f *Frame) {
				trix := taTrix(f.Col(ColClose), 12)
				replaceNaN(trix)
				sma := taMa(trix, 20, talib.SMA)
				replaceNaN(sma)
				f.Set("trix", trix)
				f.Set("trix_20_sma", sma)
			},
		},
		{
			Name:   "cr",
			Reads:  []string{ColHigh, ColLow, ColVolume, ColAmount},
			Writes: []string{"m_price", "cr", "cr-ma1", "cr-ma2", "cr-ma3"},
			Run: func(f *Frame) {
				// Mid price is amount/volume; a zero-volume bar leaves NaN
				// here on purpose, downstream consumers sanitize.
				mPrice := divide(f.Col(ColAmount), f.Col(ColVolume))
				f.Set("m_price", mPrice)

				prev := shift(mPrice, 1)
				high := f.Col(ColHigh)
				low := f.Col(ColLow)
				hm := make([]float64, f.Len())
				ml := make([]float64, f.Len())
				for i := range hm {
					hm[i] = high[i] - math.Min(prev[i], high[i])
					ml[i] = prev[i] - math.Min(prev[i], low[i])
				}
				cr := divide(taSum(hm, 26), taSum(ml, 26))
				replaceNaNInf(cr)
				cr = scale(cr, 100)
				f.Set("cr", cr)

				ma1 := taMa(cr, 5, talib.SMA)
				replaceNaN(ma1)
				ma2 := taMa(cr, 10, talib.SMA)
				replaceNaN(ma2)
				ma3 := taMa(cr, 20, talib.SMA)
				replaceNaN(ma3)
				f.Set("cr-ma1", ma1)
				f.Set("cr-ma2", ma2)
				f.Set("cr-ma3", ma3)
			},
		},
		{
			Name:   "rsi",
			Reads:  []string{ColClose},
			Writes: []string{"rsi", "rsi_6", "rsi_12", "rsi_24"},
			Run: func(f *Frame) {
				for _, p := range []struct {
					name   string
					period int
				}{{"rsi", 14}, {"rsi_6", 6}, {"rsi_12", 12}, {"rsi_24", 24}} {
					v := taRsi(f.Col(ColClose), p.period)
					replaceNaN(v)
					f.Set(p.name, v)
				}
			},
		},
		{
			Name:   "vr",
			Reads:  []string{ColVolume, ColPChange},
			Writes: []string{"vr", "vr_6_sma"},
			Run: func(f *Frame) {
				volume := f.Col(ColVolume)
				pchange := f.Col(ColPChange)
				up := make([]float64, f.Len())
				down := make([]float64, f.Len())
				flat := make([]float64, f.Len())
				for i := range volume {
					switch {
					case pchange[i] > 0:
						up[i] = volume[i]
					case pchange[i] < 0:
						down[i] = volume[i]
					default:
						flat[i] = volume[i]
					}
				}
				ups := taSum(up, 26)
				downs := taSum(down, 26)
				flats := taSum(flat, 26)
				vr := make([]float64, f.Len())
				for i := range vr {
					vr[i] = (ups[i] + flats[i]/2) / (downs[i] + flats[i]/2)
				}
				replaceNaNInf(vr)
				vr = scale(vr, 100)
				f.Set("vr", vr)

				sma := taMa(vr, 6, talib.SMA)
				replaceNaN(sma)
				f.Set("vr_6_sma", sma)
			},
		},
		{
			Name:   "atr",
			Reads:  []string{ColHigh, ColLow, ColClose},
			Writes: []string{"prev_close", "h_l", "h_cy", "cy_l", "tr", "atr"},
			Run: func(f *Frame) {
				prevClose := shift(f.Col(ColClose), 1)
				hl := subtract(f.Col(ColHigh), f.Col(ColLow))
				hcy := subtract(f.Col(ColHigh), prevClose)
				cyl := subtract(prevClose, f.Col(ColLow))
				tr := make([]float64, f.Len())
				for i := range tr {
					tr[i] = math.Max(hl[i], math.Max(math.Abs(hcy[i]), math.Abs(cyl[i])))
				}
				replaceNaN(tr)
				atr := taAtr(f.Col(ColHigh), f.Col(ColLow), f.Col(ColClose), 14)
				replaceNaN(atr)

				f.Set("prev_close", prevClose)
				f.Set("h_l", hl)
				f.Set("h_cy", hcy)
				f.Set("cy_l", cyl)
				f.Set("tr", tr)
				f.Set("atr", atr)
			},
		},
		{
			Name:   "dmi",
			Reads:  []string{ColHigh, ColLow, "atr"},
			Writes: []string{"pdi", "mdi", "dx", "adx", "adxr"},
			Run: func(f *Frame) {
				highDelta := diff(f.Col(ColHigh))
				lowDelta := scale(diff(f.Col(ColLow)), -1)
				highMove := make([]float64, f.Len())
				lowMove := make([]float64, f.Len())
				for i := range highMove {
					highMove[i] = (highDelta[i] + math.Abs(highDelta[i])) / 2
					lowMove[i] = (lowDelta[i] + math.Abs(lowDelta[i])) / 2
				}
				gatedHigh := make([]float64, f.Len())
				gatedLow := make([]float64, f.Len())
				for i := range gatedHigh {
					if highMove[i] > lowMove[i] {
						gatedHigh[i] = highMove[i]
					}
					if lowMove[i] > highMove[i] {
						gatedLow[i] = lowMove[i]
					}
				}
				pdm := taEma(gatedHigh, 14)
				replaceNaN(pdm)
				pdi := divide(pdm, f.Col("atr"))
				replaceNaNInf(pdi)
				pdi = scale(pdi, 100)
				f.Set("pdi", pdi)

				mdm := taEma(gatedLow, 14)
				replaceNaN(mdm)
				mdi := divide(mdm, f.Col("atr"))
				replaceNaNInf(mdi)
				mdi = scale(mdi, 100)
				f.Set("mdi", mdi)

				dx := make([]float64, f.Len())
				for i := range dx {
					dx[i] = math.Abs(pdi[i]-mdi[i]) / (pdi[i] + mdi[i])
				}
				replaceNaNInf(dx)
				dx = scale(dx, 100)
				f.Set("dx", dx)

				adx := taEma(dx, 6)
				replaceNaN(adx)
				f.Set("adx", adx)
				adxr := taEma(adx, 6)
				replaceNaN(adxr)
				f.Set("adxr", adxr)
			},
		},
		{
			Name:   "wr",
			Reads:  []string{ColHigh, ColLow, ColClose},
			Writes: []string{"wr_6", "wr_10", "wr_14"},
			Run: func(f *Frame) {
				for _, p := range []struct {
					name   string
					period int
				}{{"wr_6", 6}, {"wr_10", 10}, {"wr_14", 14}} {
					v := taWillR(f.Col(ColHigh), f.Col(ColLow), f.Col(ColClose), p.period)
					replaceNaN(v)
					f.Set(p.name, v)
				}
			},
		},
		{
			Name:   "cci",
			Reads:  []string{ColHigh, ColLow, ColClose},
			Writes: []string{"cci", "cci_84"},
			Run: func(f *Frame) {
				cci := taCci(f.Col(ColHigh), f.Col(ColLow), f.Col(ColClose), 14)
				replaceNaN(cci)
				f.Set("cci", cci)
				cci84 := taCci(f.Col(ColHigh), f.Col(ColLow), f.Col(ColClose), 84)
				replaceNaN(cci84)
				f.Set("cci_84", cci84)
			},
		},
		{
			Name:   "dma",
			Reads:  []string{ColClose},
			Writes: []string{"ma10", "ma50", "dma", "dma_10_sma"},
			Run: func(f *Frame) {
				ma10 := taMa(f.Col(ColClose), 10, talib.SMA)
				replaceNaN(ma10)
				ma50 := taMa(f.Col(ColClose), 50, talib.SMA)
				replaceNaN(ma50)
				dma := subtract(ma10, ma50)
				sma := taMa(dma, 10, talib.SMA)
				replaceNaN(sma)
				f.Set("ma10", ma10)
				f.Set("ma50", ma50)
				f.Set("dma", dma)
				f.Set("dma_10_sma", sma)
			},
		},
		{
			Name:   "tema",
			Reads:  []string{ColClose},
			Writes: []string{"tema"},
			Run: func(f *Frame) {
				tema := taTema(f.Col(ColClose), 14)
				replaceNaN(tema)
				f.Set("tema", tema)
			},
		},
		{
			Name:   "mfi",
			Reads:  []string{ColHigh, ColLow, ColClose, ColVolume},
			Writes: []string{"mfi", "mfisma"},
			Run: func(f *Frame) {
				mfi := taMfi(f.Col(ColHigh), f.Col(ColLow), f.Col(ColClose), f.Col(ColVolume), 14)
				replaceNaN(mfi)
				f.Set("mfi", mfi)
				f.Set("mfisma", taMa(mfi, 6, talib.SMA))
			},
		},
		{
			Name:   "vwma",
			Reads:  []string{ColVolume, ColAmount},
			Writes: []string{"vwma", "mvwma"},
			Run: func(f *Frame) {
				vwma := divide(taSum(f.Col(ColAmount), 14), taSum(f.Col(ColVolume), 14))
				replaceNaNInf(vwma)
				f.Set("vwma", vwma)
				f.Set("mvwma", taMa(vwma, 6, talib.SMA))
			},
		},
		{
			Name:   "ppo",
			Reads:  []string{ColClose},
			Writes: []string{"ppo", "ppos", "ppoh"},
			Run: func(f *Frame) {
				ppo := taPpo(f.Col(ColClose), 12, 26, talib.EMA)
				replaceNaN(ppo)
				ppos := taEma(ppo, 9)
				replaceNaN(ppos)
				f.Set("ppo", ppo)
				f.Set("ppos", ppos)
				f.Set("ppoh", subtract(ppo, ppos))
			},
		},
		{
			Name:   "stochrsi",
			Reads:  []string{"rsi"},
			Writes: []string{"stochrsi_k", "stochrsi_d"},
			Run: func(f *Frame) {
				rsi := f.Col("rsi")
				lo := taMin(rsi, 14)
				hi := taMax(rsi, 14)
				k := make([]float64, f.Len())
				for i := range k {
					k[i] = (rsi[i] - lo[i]) / (hi[i] - lo[i])
				}
				replaceNaNInf(k)
				k = scale(k, 100)
				f.Set("stochrsi_k", k)
				f.Set("stochrsi_d", taMa(k, 3, talib.SMA))
			},
		},
		{
			Name:   "wt",
			Reads:  []string{"m_price"},
			Writes: []string{"wt1", "wt2"},
			Run: func(f *Frame) {
				mPrice := f.Col("m_price")
				esa := taEma(mPrice, 10)
				replaceNaN(esa)
				dev := taEma(absAll(subtract(mPrice, esa)), 10)
				ci := make([]float64, f.Len())
				for i := range ci {
					ci[i] = (mPrice[i] - esa[i]) / (0.015 * dev[i])
				}
				replaceNaNInf(ci)
				wt1 := taEma(ci, 21)
				replaceNaN(wt1)
				wt2 := taMa(wt1, 4, talib.SMA)
				replaceNaN(wt2)
				f.Set("wt1", wt1)
				f.Set("wt2", wt2)
			},
		},
		{
			Name:   "supertrend",
			Reads:  []string{ColHigh, ColLow, ColClose, "atr"},
			Writes: []string{"hl_avg", "supertrend_ub", "supertrend_lb", "supertrend"},
			Run: func(f *Frame) {
				high := f.Col(ColHigh)
				low := f.Col(ColLow)
				hlAvg := make([]float64, f.Len())
				for i := range hlAvg {
					hlAvg[i] = (high[i] + low[i]) / 2
				}
				f.Set("hl_avg", hlAvg)

				ub, lb, st := supertrend(f.Col(ColClose), hlAvg, f.Col("atr"), 3)
				f.Set("supertrend_ub", ub)
				f.Set("supertrend_lb", lb)
				f.Set("supertrend", st)
			},
		},
		{
			Name:   "roc",
			Reads:  []string{ColClose},
			Writes: []string{"roc", "rocma", "rocema"},
			Run: func(f *Frame) {
				roc := taRoc(f.Col(ColClose), 12)
				replaceNaN(roc)
				rocma := taMa(roc, 6, talib.SMA)
				replaceNaN(rocma)
				rocema := taEma(roc, 9)
				replaceNaN(rocema)
				f.Set("roc", roc)
				f.Set("rocma", rocma)
				f.Set("rocema", rocema)
			},
		},
		{
			Name:   "obv",
			Reads:  []string{ColClose, ColVolume},
			Writes: []string{"obv"},
			Run: func(f *Frame) {
				obv := taObv(f.Col(ColClose), f.Col(ColVolume))
				replaceNaN(obv)
				f.Set("obv", obv)
			},
		},
		{
			Name:   "sar",
			Reads:  []string{ColHigh, ColLow},
			Writes: []string{"sar"},
			Run: func(f *Frame) {
				sar := taSar(f.Col(ColHigh), f.Col(ColLow), 0.02, 0.2)
				replaceNaN(sar)
				f.Set("sar", sar)
			},
		},
		{
			Name:   "psy",
			Reads:  []string{ColClose, "prev_close"},
			Writes: []string{"psy", "psyma"},
			Run: func(f *Frame) {
				closes := f.Col(ColClose)
				prev := f.Col("prev_close")
				priceUp := make([]float64, f.Len())
				for i := range priceUp {
					if closes[i] > prev[i] {
						priceUp[i] = 1
					}
				}
				psy := scale(taSum(priceUp, 12), 1.0/12)
				replaceNaN(psy)
				psy = scale(psy, 100)
				f.Set("psy", psy)
				f.Set("psyma", taMa(psy, 6, talib.SMA))
			},
		},
		{
			Name:   "brar",
			Reads:  []string{ColOpen, ColHigh, ColLow, "h_cy", "cy_l"},
			Writes: []string{"ar", "br"},
			Run: func(f *Frame) {
				ho := subtract(f.Col(ColHigh), f.Col(ColOpen))
				ol := subtract(f.Col(ColOpen), f.Col(ColLow))
				ar := divide(taSum(ho, 26), taSum(ol, 26))
				replaceNaNInf(ar)
				f.Set("ar", scale(ar, 100))

				br := divide(taSum(f.Col("h_cy"), 26), taSum(f.Col("cy_l"), 26))
				replaceNaNInf(br)
				f.Set("br", scale(br, 100))
			},
		},
		{
			Name:   "emv",
			Reads:  []string{ColHigh, ColLow, ColAmount, "hl_avg", "h_l"},
			Writes: []string{"prev_high", "prev_low", "emv", "emva"},
			Run: func(f *Frame) {
				prevHigh := shift(f.Col(ColHigh), 1)
				prevLow := shift(f.Col(ColLow), 1)
				f.Set("prev_high", prevHigh)
				f.Set("prev_low", prevLow)

				hlAvg := f.Col("hl_avg")
				hl := f.Col("h_l")
				amount := f.Col(ColAmount)
				em := make([]float64, f.Len())
				for i := range em {
					em[i] = (hlAvg[i] - (prevHigh[i]+prevLow[i])/2) * hl[i] / amount[i]
				}
				emv := taSum(em, 14)
				replaceNaN(emv)
				emva := taMa(emv, 9, talib.SMA)
				replaceNaN(emva)
				f.Set("emv", emv)
				f.Set("emva", emva)
			},
		},
		{
			Name:   "bias",
			Reads:  []string{ColClose},
			Writes: []string{"ma6", "ma12", "ma24", "bias", "bias_12", "bias_24"},
			Run: func(f *Frame) {
				closes := f.Col(ColClose)
				for _, b := range []struct {
					ma, bias string
					period   int
				}{
					{"ma6", "bias", 6},
					{"ma12", "bias_12", 12},
					{"ma24", "bias_24", 24},
				} {
					ma := taMa(closes, b.period, talib.SMA)
					replaceNaN(ma)
					f.Set(b.ma, ma)
					bias := divide(subtract(closes, ma), ma)
					replaceNaNInf(bias)
					f.Set(b.bias, scale(bias, 100))
				}
			},
		},
		{
			Name:   "dpo",
			Reads:  []string{ColClose},
			Writes: []string{"dpo", "madpo"},
			Run: func(f *Frame) {
				ma11 := taMa(f.Col(ColClose), 11, talib.SMA)
				dpo := subtract(f.Col(ColClose), shift(ma11, 1))
				// The shifted average is only defined from row 11; the lead-in
				// would otherwise carry the raw close.
				zeroPrefix(dpo, 11)
				replaceNaN(dpo)
				madpo := taMa(dpo, 6, talib.SMA)
				replaceNaN(madpo)
				f.Set("dpo", dpo)
				f.Set("madpo", madpo)
			},
		},
		{
			Name:   "vhf",
			Reads:  []string{ColClose, "prev_close"},
			Writes: []string{"vhf"},
			Run: func(f *Frame) {
				closes := f.Col(ColClose)
				span := subtract(taMax(closes, 28), taMin(closes, 28))
				replaceNaN(span)
				vhf := divide(span, taSum(absAll(subtract(closes, f.Col("prev_close"))), 28))
				replaceNaN(vhf)
				f.Set("vhf", vhf)
			},
		},
		{
			Name:   "rvi",
			Reads:  []string{ColOpen, ColHigh, ColLow, ColClose, "prev_close", "prev_high", "prev_low"},
			Writes: []string{"rvi", "rvis"},
			Run: func(f *Frame) {
				open := f.Col(ColOpen)
				closes := f.Col(ColClose)
				num := make([]float64, f.Len())
				den := make([]float64, f.Len())
				prevClose := f.Col("prev_close")
				prevOpen := shift(open, 1)
				close2, open2 := shift(closes, 2), shift(open, 2)
				close3, open3 := shift(closes, 3), shift(open, 3)
				high, low := f.Col(ColHigh), f.Col(ColLow)
				prevHigh, prevLow := f.Col("prev_high"), f.Col("prev_low")
				high2, low2 := shift(high, 2), shift(low, 2)
				high3, low3 := shift(high, 3), shift(low, 3)
				for i := range num {
					num[i] = ((closes[i] - open[i]) + 2*(prevClose[i]-prevOpen[i]) +
						2*(close2[i]-open2[i]) + (close3[i] - open3[i])) / 6
					den[i] = ((high[i] - low[i]) + 2*(prevHigh[i]-prevLow[i]) +
						2*(high2[i]-low2[i]) + (high3[i] - low3[i])) / 6
				}
				rvi := divide(taMa(num, 10, talib.SMA), taMa(den, 10, talib.SMA))
				replaceNaNInf(rvi)
				f.Set("rvi", rvi)

				rvi1, rvi2, rvi3 := shift(rvi, 1), shift(rvi, 2), shift(rvi, 3)
				rvis := make([]float64, f.Len())
				for i := range rvis {
					rvis[i] = (rvi[i] + 2*rvi1[i] + 2*rvi2[i] + rvi3[i]) / 6
				}
				f.Set("rvis", rvis)
			},
		},
		{
			Name:   "fi",
			Reads:  []string{ColClose, ColVolume},
			Writes: []string{"force_2", "force_13"},
			Run: func(f *Frame) {
				fi := make([]float64, f.Len())
				d := diff(f.Col(ColClose))
				volume := f.Col(ColVolume)
				for i := range fi {
					fi[i] = d[i] * volume[i]
				}
				force2 := taEma(fi, 2)
				replaceNaN(force2)
				force13 := taEma(fi, 13)
				replaceNaN(force13)
				f.Set("force_2", force2)
				f.Set("force_13", force13)
			},
		},
		{
			Name:   "ene",
			Reads:  []string{"ma10"},
			Writes: []string{"ene_ue", "ene_le", "ene"},
			Run: func(f *Frame) {
				ue := scale(f.Col("ma10"), 1+11.0/100)
				le := scale(f.Col("ma10"), 1-9.0/100)
				mid := make([]float64, f.Len())
				for i := range mid {
					mid[i] = (ue[i] + le[i]) / 2
				}
				f.Set("ene_ue", ue)
				f.Set("ene_le", le)
				f.Set("ene", mid)
			},
		},
		{
			Name:   "vol",
			Reads:  []string{ColVolume},
			Writes: []string{"vol_5", "vol_10"},
			Run: func(f *Frame) {
				vol5 := taMa(f.Col(ColVolume), 5, talib.SMA)
				replaceNaN(vol5)
				vol10 := taMa(f.Col(ColVolume), 10, talib.SMA)
				replaceNaN(vol10)
				f.Set("vol_5", vol5)
				f.Set("vol_10", vol10)
			},
		},
		{
			Name:   "ma",
			Reads:  []string{ColClose},
			Writes: []string{"ma20", "ma200"},
			Run: func(f *Frame) {
				ma20 := taMa(f.Col(ColClose), 20, talib.SMA)
				replaceNaN(ma20)
				ma200 := taMa(f.Col(ColClose), 200, talib.SMA)
				replaceNaN(ma200)
				f.Set("ma20", ma20)
				f.Set("ma200", ma200)
			},
		},
	}
}
