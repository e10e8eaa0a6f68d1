package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/indicator"
	"margin-tracker/internal/tracker/repository"
)

// alertMatch is one satisfied configuration/position pair produced by an
// evaluator.
type alertMatch struct {
	CurrentValue float64
	TargetValue  float64
	Message      string
}

// evalInput carries the per-pass market snapshot and the evaluation time so
// every evaluator in one pass sees the same data.
type evalInput struct {
	snap *marketSnapshot
	now  time.Time
}

// Evaluator decides whether a configuration matches one position. A nil match
// with a nil error means the condition did not hold.
type Evaluator func(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error)

// marketSnapshot memoizes quotes and history series for the duration of a
// single evaluation pass so N configurations on one symbol cost one fetch.
type marketSnapshot struct {
	market    repository.MarketDataRepository
	quotes    map[string]*dto.Quote
	histories map[string][]dto.OHLCV
}

func newMarketSnapshot(market repository.MarketDataRepository) *marketSnapshot {
	return &marketSnapshot{
		market:    market,
		quotes:    map[string]*dto.Quote{},
		histories: map[string][]dto.OHLCV{},
	}
}

func (s *marketSnapshot) Quote(ctx context.Context, symbol string) (*dto.Quote, error) {
	if quote, ok := s.quotes[symbol]; ok {
		return quote, nil
	}
	quote, err := s.market.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	s.quotes[symbol] = quote
	return quote, nil
}

func (s *marketSnapshot) History(ctx context.Context, symbol string, period dto.HistoryPeriod) ([]dto.OHLCV, error) {
	key := symbol + ":" + string(period)
	if series, ok := s.histories[key]; ok {
		return series, nil
	}
	series, err := s.market.GetHistory(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	s.histories[key] = series
	return series, nil
}

// newEvaluatorTable registers one evaluator per supported alert type. Types
// absent from the table are skipped during evaluation.
func newEvaluatorTable() map[entity.AlertType]Evaluator {
	return map[entity.AlertType]Evaluator{
		// Profit-taking.
		entity.AlertTypePriceTarget:    evalPriceTarget,
		entity.AlertTypePercentageGain: evalPercentageGain,
		entity.AlertTypeROITarget:      evalROITarget,
		entity.AlertTypeDailyGain:      evalDailyGain,

		// Stop-loss.
		entity.AlertTypeStopLoss:       evalStopLoss,
		entity.AlertTypeHardStop:       evalHardStop,
		entity.AlertTypePercentageLoss: evalPercentageLoss,
		entity.AlertTypeTrailingStop:   evalTrailingStop,
		entity.AlertTypeDrawdownLimit:  evalDrawdownLimit,
		entity.AlertTypeDailyLoss:      evalDailyLoss,

		// Time-based.
		entity.AlertTypeHoldingPeriod:     evalHoldingPeriod,
		entity.AlertTypeExpirationWarning: evalExpirationWarning,
		entity.AlertTypePositionExpired:   evalPositionExpired,

		// Advanced risk.
		entity.AlertTypeMarginCallRisk:          evalMarginCallRisk,
		entity.AlertTypeMarginInterestThreshold: evalMarginInterest,

		// Volume.
		entity.AlertTypeVolumeSpike:        evalVolumeSpike,
		entity.AlertTypeVolumeAboveAverage: evalVolumeAboveAverage,

		// Market condition.
		entity.AlertTypeFiftyTwoWeekHigh:   evalFiftyTwoWeekHigh,
		entity.AlertTypeFiftyTwoWeekLow:    evalFiftyTwoWeekLow,
		entity.AlertTypePriceChangePercent: evalPriceChangePercent,

		// Fundamental.
		entity.AlertTypePEAbove: evalPEAbove,
		entity.AlertTypePEBelow: evalPEBelow,

		// Technical.
		entity.AlertTypeRSIOverbought:          evalRSIOverbought,
		entity.AlertTypeRSIOversold:            evalRSIOversold,
		entity.AlertTypeSMACrossAbove:          evalSMACrossAbove,
		entity.AlertTypeSMACrossBelow:          evalSMACrossBelow,
		entity.AlertTypeGoldenCross:            evalGoldenCross,
		entity.AlertTypeDeathCross:             evalDeathCross,
		entity.AlertTypeMACDBullishCross:       evalMACDBullishCross,
		entity.AlertTypeMACDBearishCross:       evalMACDBearishCross,
		entity.AlertTypeBollingerBreakoutUpper: evalBollingerUpper,
		entity.AlertTypeBollingerBreakoutLower: evalBollingerLower,
		entity.AlertTypeATRSpike:               evalATRSpike,
	}
}

func evalPriceTarget(_ context.Context, _ *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	target := cfg.Threshold()
	if target <= 0 || pos.CurrentPrice < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: pos.CurrentPrice,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s reached the price target %.2f (now %.2f)", pos.Symbol, target, pos.CurrentPrice),
	}, nil
}

func evalPercentageGain(_ context.Context, _ *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	if pos.EntryPrice <= 0 {
		return nil, nil
	}
	gain := (pos.CurrentPrice - pos.EntryPrice) / pos.EntryPrice * 100
	target := cfg.Threshold()
	if gain < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: gain,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s is up %.2f%% from entry (target %.2f%%)", pos.Symbol, gain, target),
	}, nil
}

func evalROITarget(_ context.Context, _ *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	target := cfg.Threshold()
	if pos.CurrentROI < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: pos.CurrentROI,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s ROI reached %.2f%% (target %.2f%%)", pos.Symbol, pos.CurrentROI, target),
	}, nil
}

func evalDailyGain(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	quote, err := in.snap.Quote(ctx, pos.Symbol)
	if err != nil {
		return nil, err
	}
	target := cfg.Threshold()
	if quote.ChangePercent < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: quote.ChangePercent,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s gained %.2f%% today (target %.2f%%)", pos.Symbol, quote.ChangePercent, target),
	}, nil
}

func evalStopLoss(_ context.Context, _ *evalInput, _ *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	if pos.StopLossPrice <= 0 || pos.CurrentPrice > pos.StopLossPrice {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: pos.CurrentPrice,
		TargetValue:  pos.StopLossPrice,
		Message:      fmt.Sprintf("%s at %.2f hit the stop-loss price %.2f", pos.Symbol, pos.CurrentPrice, pos.StopLossPrice),
	}, nil
}

func evalHardStop(_ context.Context, _ *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	target := cfg.Threshold()
	if target <= 0 || pos.CurrentPrice > target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: pos.CurrentPrice,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s at %.2f breached the hard stop %.2f", pos.Symbol, pos.CurrentPrice, target),
	}, nil
}

func evalPercentageLoss(_ context.Context, _ *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	if pos.EntryPrice <= 0 {
		return nil, nil
	}
	loss := (pos.EntryPrice - pos.CurrentPrice) / pos.EntryPrice * 100
	// Loss thresholds may be stored as negative values; compare magnitudes.
	target := math.Abs(cfg.Threshold())
	if target == 0 || loss < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: loss,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s is down %.2f%% from entry (limit %.2f%%)", pos.Symbol, loss, target),
	}, nil
}

func evalTrailingStop(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	target := math.Abs(cfg.Threshold())
	if target == 0 {
		return nil, nil
	}
	peak, err := peakClose(ctx, in, pos.Symbol, dto.PeriodThreeMonths)
	if err != nil {
		return nil, err
	}
	if peak <= 0 {
		return nil, nil
	}
	drop := (peak - pos.CurrentPrice) / peak * 100
	if drop < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: drop,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s fell %.2f%% from its recent peak %.2f (trail %.2f%%)", pos.Symbol, drop, peak, target),
	}, nil
}

func evalDrawdownLimit(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	target := math.Abs(cfg.Threshold())
	if target == 0 {
		return nil, nil
	}
	peak, err := peakClose(ctx, in, pos.Symbol, dto.PeriodSixMonths)
	if err != nil {
		return nil, err
	}
	if peak <= 0 {
		return nil, nil
	}
	drawdown := (peak - pos.CurrentPrice) / peak * 100
	if drawdown < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: drawdown,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s drawdown reached %.2f%% (limit %.2f%%)", pos.Symbol, drawdown, target),
	}, nil
}

func evalDailyLoss(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	quote, err := in.snap.Quote(ctx, pos.Symbol)
	if err != nil {
		return nil, err
	}
	target := math.Abs(cfg.Threshold())
	loss := -quote.ChangePercent
	if target == 0 || loss < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: loss,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s lost %.2f%% today (limit %.2f%%)", pos.Symbol, loss, target),
	}, nil
}

func evalHoldingPeriod(_ context.Context, _ *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	target := cfg.Threshold()
	if target <= 0 || float64(pos.DaysElapsed) < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: float64(pos.DaysElapsed),
		TargetValue:  target,
		Message:      fmt.Sprintf("%s has been held %d days (threshold %.0f)", pos.Symbol, pos.DaysElapsed, target),
	}, nil
}

func evalExpirationWarning(_ context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	warnDays := cfg.Threshold()
	if warnDays <= 0 {
		warnDays = 7
	}
	remaining := pos.ExpirationDate.Sub(in.now).Hours() / 24
	if remaining < 0 || remaining > warnDays {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: remaining,
		TargetValue:  warnDays,
		Message:      fmt.Sprintf("%s expires in %.1f days", pos.Symbol, remaining),
	}, nil
}

func evalPositionExpired(_ context.Context, in *evalInput, _ *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	if in.now.Before(pos.ExpirationDate) {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: float64(pos.DaysElapsed),
		TargetValue:  float64(pos.DurationDays),
		Message:      fmt.Sprintf("%s passed its expiration date %s", pos.Symbol, pos.ExpirationDate.Format("2006-01-02")),
	}, nil
}

func evalMarginCallRisk(_ context.Context, _ *evalInput, _ *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	marginCallPrice := pos.MarginCallPrice()
	if marginCallPrice <= 0 || pos.CurrentPrice > marginCallPrice {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: pos.CurrentPrice,
		TargetValue:  marginCallPrice,
		Message:      fmt.Sprintf("%s at %.2f is at or below the margin-call price %.2f", pos.Symbol, pos.CurrentPrice, marginCallPrice),
	}, nil
}

func evalMarginInterest(_ context.Context, _ *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	target := cfg.Threshold()
	if target <= 0 || pos.TotalInterest < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: pos.TotalInterest,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s accrued $%.2f margin interest (threshold $%.2f)", pos.Symbol, pos.TotalInterest, target),
	}, nil
}

func evalVolumeSpike(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	quote, err := in.snap.Quote(ctx, pos.Symbol)
	if err != nil {
		return nil, err
	}
	multiple := cfg.Threshold()
	if multiple <= 0 {
		multiple = 2
	}
	if quote.AverageVolume <= 0 {
		return nil, nil
	}
	ratio := float64(quote.Volume) / float64(quote.AverageVolume)
	if ratio < multiple {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: ratio,
		TargetValue:  multiple,
		Message:      fmt.Sprintf("%s volume is %.1fx its 3-month average", pos.Symbol, ratio),
	}, nil
}

func evalVolumeAboveAverage(ctx context.Context, in *evalInput, _ *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	quote, err := in.snap.Quote(ctx, pos.Symbol)
	if err != nil {
		return nil, err
	}
	if quote.AverageVolume <= 0 || quote.Volume <= quote.AverageVolume {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: float64(quote.Volume),
		TargetValue:  float64(quote.AverageVolume),
		Message:      fmt.Sprintf("%s volume %d is above its average %d", pos.Symbol, quote.Volume, quote.AverageVolume),
	}, nil
}

func evalFiftyTwoWeekHigh(ctx context.Context, in *evalInput, _ *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	quote, err := in.snap.Quote(ctx, pos.Symbol)
	if err != nil {
		return nil, err
	}
	if quote.FiftyTwoWeekHigh <= 0 || quote.Price < quote.FiftyTwoWeekHigh {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: quote.Price,
		TargetValue:  quote.FiftyTwoWeekHigh,
		Message:      fmt.Sprintf("%s is trading at its 52-week high %.2f", pos.Symbol, quote.Price),
	}, nil
}

func evalFiftyTwoWeekLow(ctx context.Context, in *evalInput, _ *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	quote, err := in.snap.Quote(ctx, pos.Symbol)
	if err != nil {
		return nil, err
	}
	if quote.FiftyTwoWeekLow <= 0 || quote.Price > quote.FiftyTwoWeekLow {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: quote.Price,
		TargetValue:  quote.FiftyTwoWeekLow,
		Message:      fmt.Sprintf("%s is trading at its 52-week low %.2f", pos.Symbol, quote.Price),
	}, nil
}

func evalPriceChangePercent(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	quote, err := in.snap.Quote(ctx, pos.Symbol)
	if err != nil {
		return nil, err
	}
	target := cfg.Threshold()
	move := math.Abs(quote.ChangePercent)
	if target <= 0 || move < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: move,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s moved %.2f%% today (threshold %.2f%%)", pos.Symbol, move, target),
	}, nil
}

func evalPEAbove(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	quote, err := in.snap.Quote(ctx, pos.Symbol)
	if err != nil {
		return nil, err
	}
	target := cfg.Threshold()
	if target <= 0 || quote.TrailingPE <= 0 || quote.TrailingPE < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: quote.TrailingPE,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s trailing P/E %.1f is above %.1f", pos.Symbol, quote.TrailingPE, target),
	}, nil
}

func evalPEBelow(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	quote, err := in.snap.Quote(ctx, pos.Symbol)
	if err != nil {
		return nil, err
	}
	target := cfg.Threshold()
	if target <= 0 || quote.TrailingPE <= 0 || quote.TrailingPE > target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: quote.TrailingPE,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s trailing P/E %.1f is below %.1f", pos.Symbol, quote.TrailingPE, target),
	}, nil
}

func evalRSIOverbought(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	rsi, err := latestRSI(ctx, in, pos.Symbol)
	if err != nil {
		return nil, err
	}
	target := cfg.Threshold()
	if target <= 0 {
		target = 70
	}
	if rsi < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: rsi,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s RSI(14) at %.1f is overbought (threshold %.1f)", pos.Symbol, rsi, target),
	}, nil
}

func evalRSIOversold(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	rsi, err := latestRSI(ctx, in, pos.Symbol)
	if err != nil {
		return nil, err
	}
	target := cfg.Threshold()
	if target <= 0 {
		target = 30
	}
	if rsi > target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: rsi,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s RSI(14) at %.1f is oversold (threshold %.1f)", pos.Symbol, rsi, target),
	}, nil
}

func evalSMACrossAbove(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	return evalSMACross(ctx, in, cfg, pos, true)
}

func evalSMACrossBelow(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	return evalSMACross(ctx, in, cfg, pos, false)
}

func evalSMACross(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition, above bool) (*alertMatch, error) {
	period := int(cfg.Threshold())
	if period <= 0 {
		period = 50
	}
	closes, err := historyCloses(ctx, in, pos.Symbol, dto.PeriodSixMonths)
	if err != nil {
		return nil, err
	}
	if len(closes) < period+1 {
		return nil, indicator.ErrInsufficientData
	}
	smaNow, err := indicator.SMA(closes, period)
	if err != nil {
		return nil, err
	}
	smaPrev, err := indicator.SMA(closes[:len(closes)-1], period)
	if err != nil {
		return nil, err
	}
	last := closes[len(closes)-1]
	prev := closes[len(closes)-2]

	crossed := false
	direction := "above"
	if above {
		crossed = prev <= smaPrev && last > smaNow
	} else {
		crossed = prev >= smaPrev && last < smaNow
		direction = "below"
	}
	if !crossed {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: last,
		TargetValue:  smaNow,
		Message:      fmt.Sprintf("%s crossed %s its SMA(%d) at %.2f", pos.Symbol, direction, period, smaNow),
	}, nil
}

func evalGoldenCross(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	return evalLongCross(ctx, in, cfg, pos, true)
}

func evalDeathCross(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	return evalLongCross(ctx, in, cfg, pos, false)
}

// evalLongCross detects the 50/200-day SMA cross over a one-year series.
func evalLongCross(ctx context.Context, in *evalInput, _ *entity.AlertConfiguration, pos *entity.TrackedPosition, golden bool) (*alertMatch, error) {
	const shortPeriod, longPeriod = 50, 200
	closes, err := historyCloses(ctx, in, pos.Symbol, dto.PeriodOneYear)
	if err != nil {
		return nil, err
	}
	if len(closes) < longPeriod+1 {
		return nil, indicator.ErrInsufficientData
	}

	shortNow, err := indicator.SMA(closes, shortPeriod)
	if err != nil {
		return nil, err
	}
	longNow, err := indicator.SMA(closes, longPeriod)
	if err != nil {
		return nil, err
	}
	shortPrev, err := indicator.SMA(closes[:len(closes)-1], shortPeriod)
	if err != nil {
		return nil, err
	}
	longPrev, err := indicator.SMA(closes[:len(closes)-1], longPeriod)
	if err != nil {
		return nil, err
	}

	if golden {
		if !(shortPrev <= longPrev && shortNow > longNow) {
			return nil, nil
		}
		return &alertMatch{
			CurrentValue: shortNow,
			TargetValue:  longNow,
			Message:      fmt.Sprintf("%s golden cross: SMA(50) %.2f crossed above SMA(200) %.2f", pos.Symbol, shortNow, longNow),
		}, nil
	}
	if !(shortPrev >= longPrev && shortNow < longNow) {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: shortNow,
		TargetValue:  longNow,
		Message:      fmt.Sprintf("%s death cross: SMA(50) %.2f crossed below SMA(200) %.2f", pos.Symbol, shortNow, longNow),
	}, nil
}

func evalMACDBullishCross(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	return evalMACDCross(ctx, in, cfg, pos, true)
}

func evalMACDBearishCross(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	return evalMACDCross(ctx, in, cfg, pos, false)
}

func evalMACDCross(ctx context.Context, in *evalInput, _ *entity.AlertConfiguration, pos *entity.TrackedPosition, bullish bool) (*alertMatch, error) {
	closes, err := historyCloses(ctx, in, pos.Symbol, dto.PeriodSixMonths)
	if err != nil {
		return nil, err
	}
	macd, signal, err := indicator.MACD(closes)
	if err != nil {
		return nil, err
	}
	n := len(macd)
	if n < 2 {
		return nil, indicator.ErrInsufficientData
	}

	crossed := false
	direction := "above"
	if bullish {
		crossed = macd[n-2] <= signal[n-2] && macd[n-1] > signal[n-1]
	} else {
		crossed = macd[n-2] >= signal[n-2] && macd[n-1] < signal[n-1]
		direction = "below"
	}
	if !crossed {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: macd[n-1],
		TargetValue:  signal[n-1],
		Message:      fmt.Sprintf("%s MACD crossed %s its signal line (%.3f vs %.3f)", pos.Symbol, direction, macd[n-1], signal[n-1]),
	}, nil
}

func evalBollingerUpper(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	return evalBollinger(ctx, in, cfg, pos, true)
}

func evalBollingerLower(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	return evalBollinger(ctx, in, cfg, pos, false)
}

func evalBollinger(ctx context.Context, in *evalInput, _ *entity.AlertConfiguration, pos *entity.TrackedPosition, upperBreak bool) (*alertMatch, error) {
	closes, err := historyCloses(ctx, in, pos.Symbol, dto.PeriodThreeMonths)
	if err != nil {
		return nil, err
	}
	upper, _, lower, err := indicator.Bollinger(closes, 20, 2)
	if err != nil {
		return nil, err
	}
	last := closes[len(closes)-1]

	if upperBreak {
		if last <= upper {
			return nil, nil
		}
		return &alertMatch{
			CurrentValue: last,
			TargetValue:  upper,
			Message:      fmt.Sprintf("%s closed above its upper Bollinger band %.2f", pos.Symbol, upper),
		}, nil
	}
	if last >= lower {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: last,
		TargetValue:  lower,
		Message:      fmt.Sprintf("%s closed below its lower Bollinger band %.2f", pos.Symbol, lower),
	}, nil
}

func evalATRSpike(ctx context.Context, in *evalInput, cfg *entity.AlertConfiguration, pos *entity.TrackedPosition) (*alertMatch, error) {
	series, err := in.snap.History(ctx, pos.Symbol, dto.PeriodThreeMonths)
	if err != nil {
		return nil, err
	}
	atr, err := indicator.ATR(series, 14)
	if err != nil {
		return nil, err
	}
	if pos.CurrentPrice <= 0 {
		return nil, nil
	}
	target := cfg.Threshold()
	if target <= 0 {
		target = 5
	}
	atrPercent := atr / pos.CurrentPrice * 100
	if atrPercent < target {
		return nil, nil
	}
	return &alertMatch{
		CurrentValue: atrPercent,
		TargetValue:  target,
		Message:      fmt.Sprintf("%s daily range averages %.2f%% of price (threshold %.2f%%)", pos.Symbol, atrPercent, target),
	}, nil
}

func historyCloses(ctx context.Context, in *evalInput, symbol string, period dto.HistoryPeriod) ([]float64, error) {
	series, err := in.snap.History(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	return indicator.Closes(series), nil
}

func latestRSI(ctx context.Context, in *evalInput, symbol string) (float64, error) {
	closes, err := historyCloses(ctx, in, symbol, dto.PeriodThreeMonths)
	if err != nil {
		return 0, err
	}
	return indicator.RSI(closes, 14)
}

func peakClose(ctx context.Context, in *evalInput, symbol string, period dto.HistoryPeriod) (float64, error) {
	closes, err := historyCloses(ctx, in, symbol, period)
	if err != nil {
		return 0, err
	}
	peak := 0.0
	for _, c := range closes {
		if c > peak {
			peak = c
		}
	}
	return peak, nil
}
