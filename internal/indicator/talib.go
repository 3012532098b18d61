package indicator

import "github.com/markcheno/go-talib"

// go-talib primitives assume at least one full look-back of input and read
// past the slice end on shorter windows. These wrappers check the minimum
// length first and return zero columns below it, which is the same shape an
// under-filled window degrades to anyway. Minimums are the ta-lib look-back
// of each function plus one.

func zeros(n int) []float64 { return make([]float64, n) }

func taMa(values []float64, period int, maType talib.MaType) []float64 {
	if len(values) < period {
		return zeros(len(values))
	}
	return talib.Ma(values, period, maType)
}

func taEma(values []float64, period int) []float64 {
	if len(values) < period {
		return zeros(len(values))
	}
	return talib.Ema(values, period)
}

func taSum(values []float64, period int) []float64 {
	if len(values) < period {
		return zeros(len(values))
	}
	return talib.Sum(values, period)
}

func taMacd(values []float64, fast, slow, signal int) ([]float64, []float64, []float64) {
	if len(values) < slow+signal-1 {
		n := len(values)
		return zeros(n), zeros(n), zeros(n)
	}
	return talib.Macd(values, fast, slow, signal)
}

func taStoch(high, low, closes []float64, kPeriod, slowK int, kType talib.MaType, slowD int, dType talib.MaType) ([]float64, []float64) {
	if len(closes) < kPeriod+slowK+slowD-2 {
		n := len(closes)
		return zeros(n), zeros(n)
	}
	return talib.Stoch(high, low, closes, kPeriod, slowK, kType, slowD, dType)
}

func taBBands(values []float64, period int, devUp, devDown float64, maType talib.MaType) ([]float64, []float64, []float64) {
	if len(values) < period {
		n := len(values)
		return zeros(n), zeros(n), zeros(n)
	}
	return talib.BBands(values, period, devUp, devDown, maType)
}

func taTrix(values []float64, period int) []float64 {
	if len(values) < 3*period-1 {
		return zeros(len(values))
	}
	return talib.Trix(values, period)
}

func taRsi(values []float64, period int) []float64 {
	if len(values) < period+1 {
		return zeros(len(values))
	}
	return talib.Rsi(values, period)
}

func taAtr(high, low, closes []float64, period int) []float64 {
	if len(closes) < period+1 {
		return zeros(len(closes))
	}
	return talib.Atr(high, low, closes, period)
}

func taWillR(high, low, closes []float64, period int) []float64 {
	if len(closes) < period {
		return zeros(len(closes))
	}
	return talib.WillR(high, low, closes, period)
}

func taCci(high, low, closes []float64, period int) []float64 {
	if len(closes) < period {
		return zeros(len(closes))
	}
	return talib.Cci(high, low, closes, period)
}

func taTema(values []float64, period int) []float64 {
	if len(values) < 3*period-1 {
		return zeros(len(values))
	}
	return talib.Tema(values, period)
}

func taMfi(high, low, closes, volume []float64, period int) []float64 {
	if len(closes) < period+1 {
		return zeros(len(closes))
	}
	return talib.Mfi(high, low, closes, volume, period)
}

func taPpo(values []float64, fast, slow int, maType talib.MaType) []float64 {
	if len(values) < slow {
		return zeros(len(values))
	}
	return talib.Ppo(values, fast, slow, maType)
}

func taMin(values []float64, period int) []float64 {
	if len(values) < period {
		return zeros(len(values))
	}
	return talib.Min(values, period)
}

func taMax(values []float64, period int) []float64 {
	if len(values) < period {
		return zeros(len(values))
	}
	return talib.Max(values, period)
}

func taRoc(values []float64, period int) []float64 {
	if len(values) < period+1 {
		return zeros(len(values))
	}
	return talib.Roc(values, period)
}

func taObv(values, volume []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	return talib.Obv(values, volume)
}

func taSar(high, low []float64, accel, maxAccel float64) []float64 {
	if len(high) < 2 {
		return zeros(len(high))
	}
	return talib.Sar(high, low, accel, maxAccel)
}
