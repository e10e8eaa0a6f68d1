// Package indicator computes technical indicators over daily OHLCV series.
package indicator

import (
	"errors"
	"math"

	"margin-tracker/internal/tracker/dto"
)

// ErrInsufficientData is returned when a series is shorter than the
// indicator's period requires.
var ErrInsufficientData = errors.New("insufficient data for indicator")

// Closes extracts closing prices from a series.
func Closes(series []dto.OHLCV) []float64 {
	closes := make([]float64, len(series))
	for i, bar := range series {
		closes[i] = bar.Close
	}
	return closes
}

// SMA returns the simple moving average of the last period values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 || len(values) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		sum += v
	}
	return sum / float64(period), nil
}

// EMASeries returns the exponential moving average at every index from
// period-1 onward; earlier indexes hold zero.
func EMASeries(values []float64, period int) ([]float64, error) {
	if period <= 0 || len(values) < period {
		return nil, ErrInsufficientData
	}
	out := make([]float64, len(values))
	sum := 0.0
	for _, v := range values[:period] {
		sum += v
	}
	out[period-1] = sum / float64(period)
	k := 2.0 / (float64(period) + 1.0)
	for i := period; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out, nil
}

// EMA returns the exponential moving average of the full series.
func EMA(values []float64, period int) (float64, error) {
	series, err := EMASeries(values, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

// RSI returns the relative strength index using Wilder smoothing.
func RSI(values []float64, period int) (float64, error) {
	if period <= 0 || len(values) < period+1 {
		return 0, ErrInsufficientData
	}

	avgGain, avgLoss := 0.0, 0.0
	for i := 1; i <= period; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100, nil
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), nil
}

// MACD returns the MACD line and its signal line (12/26/9) aligned with the
// input series. Indexes before the warm-up hold zero.
func MACD(values []float64) (macd, signal []float64, err error) {
	const (
		fastPeriod   = 12
		slowPeriod   = 26
		signalPeriod = 9
	)
	if len(values) < slowPeriod+signalPeriod {
		return nil, nil, ErrInsufficientData
	}

	fast, err := EMASeries(values, fastPeriod)
	if err != nil {
		return nil, nil, err
	}
	slow, err := EMASeries(values, slowPeriod)
	if err != nil {
		return nil, nil, err
	}

	macd = make([]float64, len(values))
	for i := slowPeriod - 1; i < len(values); i++ {
		macd[i] = fast[i] - slow[i]
	}

	signalInput := macd[slowPeriod-1:]
	signalTail, err := EMASeries(signalInput, signalPeriod)
	if err != nil {
		return nil, nil, err
	}
	signal = make([]float64, len(values))
	copy(signal[slowPeriod-1:], signalTail)

	return macd, signal, nil
}

// Bollinger returns the upper, middle, and lower bands over the last period
// values with k standard deviations.
func Bollinger(values []float64, period int, k float64) (upper, middle, lower float64, err error) {
	middle, err = SMA(values, period)
	if err != nil {
		return 0, 0, 0, err
	}
	variance := 0.0
	for _, v := range values[len(values)-period:] {
		diff := v - middle
		variance += diff * diff
	}
	stddev := math.Sqrt(variance / float64(period))
	return middle + k*stddev, middle, middle - k*stddev, nil
}

// ATR returns the average true range over the last period bars.
func ATR(series []dto.OHLCV, period int) (float64, error) {
	if period <= 0 || len(series) < period+1 {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(series) - period; i < len(series); i++ {
		sum += trueRange(series[i], series[i-1])
	}
	return sum / float64(period), nil
}

func trueRange(current, previous dto.OHLCV) float64 {
	highLow := current.High - current.Low
	highClose := math.Abs(current.High - previous.Close)
	lowClose := math.Abs(current.Low - previous.Close)
	return math.Max(highLow, math.Max(highClose, lowClose))
}
