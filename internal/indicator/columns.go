package indicator

// DefaultColumns is the persisted/presented column surface of a derived
// frame, in pipeline order. Cross-step scratch columns (m_price,
// prev_close, h_l, h_cy, cy_l, hl_avg, prev_high, prev_low) stay internal
// to the frame and are not listed.
var DefaultColumns = []string{
	"macd", "macds", "macdh",
	"kdjk", "kdjd", "kdjj",
	"boll_ub", "boll", "boll_lb",
	"trix", "trix_20_sma",
	"cr", "cr-ma1", "cr-ma2", "cr-ma3",
	"rsi", "rsi_6", "rsi_12", "rsi_24",
	"vr", "vr_6_sma",
	"tr", "atr",
	"pdi", "mdi", "dx", "adx", "adxr",
	"wr_6", "wr_10", "wr_14",
	"cci", "cci_84",
	"ma10", "ma50", "dma", "dma_10_sma",
	"tema",
	"mfi", "mfisma",
	"vwma", "mvwma",
	"ppo", "ppos", "ppoh",
	"stochrsi_k", "stochrsi_d",
	"wt1", "wt2",
	"supertrend_ub", "supertrend_lb", "supertrend",
	"roc", "rocma", "rocema",
	"obv",
	"sar",
	"psy", "psyma",
	"ar", "br",
	"emv", "emva",
	"ma6", "ma12", "ma24", "bias", "bias_12", "bias_24",
	"dpo", "madpo",
	"vhf",
	"rvi", "rvis",
	"force_2", "force_13",
	"ene_ue", "ene_le", "ene",
	"vol_5", "vol_10",
	"ma20", "ma200",
}
