package entity

// AlertCategory groups alert types for listing and filtering.
type AlertCategory string

const (
	CategoryProfitTaking    AlertCategory = "profit_taking"
	CategoryStopLoss        AlertCategory = "stop_loss"
	CategoryTimeBased       AlertCategory = "time_based"
	CategoryTechnical       AlertCategory = "technical"
	CategoryVolume          AlertCategory = "volume"
	CategoryMarketCondition AlertCategory = "market_condition"
	CategoryFundamental     AlertCategory = "fundamental"
	CategoryAdvancedRisk    AlertCategory = "advanced_risk"
	CategoryBehavioral      AlertCategory = "behavioral"
)

// AlertType is the closed enum of configurable alert kinds.
type AlertType string

const (
	// Profit-taking.
	AlertTypePriceTarget    AlertType = "price_target"
	AlertTypePercentageGain AlertType = "percentage_gain"
	AlertTypeROITarget      AlertType = "roi_target"
	AlertTypeTrailingProfit AlertType = "trailing_profit"
	AlertTypeProfitLockIn   AlertType = "profit_lock_in"
	AlertTypeDailyGain      AlertType = "daily_gain"
	AlertTypeWeeklyGain     AlertType = "weekly_gain"
	AlertTypeMonthlyGain    AlertType = "monthly_gain"
	AlertTypePartialExit    AlertType = "partial_exit"
	AlertTypeScaleOutTarget AlertType = "scale_out_target"

	// Stop-loss.
	AlertTypeStopLoss       AlertType = "stop_loss"
	AlertTypeTrailingStop   AlertType = "trailing_stop"
	AlertTypePercentageLoss AlertType = "percentage_loss"
	AlertTypeHardStop       AlertType = "hard_stop"
	AlertTypeDailyLoss      AlertType = "daily_loss"
	AlertTypeDrawdownLimit  AlertType = "drawdown_limit"
	AlertTypeBreakEvenStop  AlertType = "break_even_stop"

	// Time-based.
	AlertTypeHoldingPeriod     AlertType = "holding_period"
	AlertTypeExpirationWarning AlertType = "expiration_warning"
	AlertTypePositionExpired   AlertType = "position_expired"
	AlertTypeTimeDecay         AlertType = "time_decay"
	AlertTypeEndOfDay          AlertType = "end_of_day"
	AlertTypeEarningsDate      AlertType = "earnings_date"
	AlertTypeMarketOpen        AlertType = "market_open"
	AlertTypeMarketClose       AlertType = "market_close"

	// Technical.
	AlertTypeRSIOverbought          AlertType = "rsi_overbought"
	AlertTypeRSIOversold            AlertType = "rsi_oversold"
	AlertTypeMACDBullishCross       AlertType = "macd_bullish_cross"
	AlertTypeMACDBearishCross       AlertType = "macd_bearish_cross"
	AlertTypeSMACrossAbove          AlertType = "sma_cross_above"
	AlertTypeSMACrossBelow          AlertType = "sma_cross_below"
	AlertTypeGoldenCross            AlertType = "golden_cross"
	AlertTypeDeathCross             AlertType = "death_cross"
	AlertTypeBollingerBreakoutUpper AlertType = "bollinger_breakout_upper"
	AlertTypeBollingerBreakoutLower AlertType = "bollinger_breakout_lower"
	AlertTypeATRSpike               AlertType = "atr_spike"
	AlertTypeMomentumShift          AlertType = "momentum_shift"
	AlertTypeSupportBreak           AlertType = "support_break"
	AlertTypeResistanceBreak        AlertType = "resistance_break"

	// Volume.
	AlertTypeVolumeSpike        AlertType = "volume_spike"
	AlertTypeVolumeDryUp        AlertType = "volume_dry_up"
	AlertTypeUnusualVolume      AlertType = "unusual_volume"
	AlertTypeVolumeAboveAverage AlertType = "volume_above_average"
	AlertTypeVolumeBreakout     AlertType = "volume_breakout"

	// Market condition.
	AlertTypeFiftyTwoWeekHigh   AlertType = "fifty_two_week_high"
	AlertTypeFiftyTwoWeekLow    AlertType = "fifty_two_week_low"
	AlertTypeGapUp              AlertType = "gap_up"
	AlertTypeGapDown            AlertType = "gap_down"
	AlertTypeMarketVolatility   AlertType = "market_volatility"
	AlertTypeSectorMove         AlertType = "sector_move"
	AlertTypeBetaSpike          AlertType = "beta_spike"
	AlertTypePriceChangePercent AlertType = "price_change_percent"

	// Fundamental.
	AlertTypePEAbove          AlertType = "pe_above"
	AlertTypePEBelow          AlertType = "pe_below"
	AlertTypeMarketCapChange  AlertType = "market_cap_change"
	AlertTypeEarningsSurprise AlertType = "earnings_surprise"
	AlertTypeDividendDate     AlertType = "dividend_date"
	AlertTypeAnalystUpgrade   AlertType = "analyst_upgrade"
	AlertTypeAnalystDowngrade AlertType = "analyst_downgrade"

	// Advanced risk.
	AlertTypeMarginCallRisk          AlertType = "margin_call_risk"
	AlertTypeMarginInterestThreshold AlertType = "margin_interest_threshold"
	AlertTypeLeverageLimit           AlertType = "leverage_limit"
	AlertTypeExposureLimit           AlertType = "exposure_limit"
	AlertTypeVaRBreach               AlertType = "var_breach"
	AlertTypeCorrelationSpike        AlertType = "correlation_spike"
	AlertTypeLiquidityRisk           AlertType = "liquidity_risk"

	// Behavioral.
	AlertTypeOvertrading         AlertType = "overtrading"
	AlertTypeRevengeTrading      AlertType = "revenge_trading"
	AlertTypePositionSizeAnomaly AlertType = "position_size_anomaly"
	AlertTypeRapidReentry        AlertType = "rapid_reentry"
	AlertTypeLossStreak          AlertType = "loss_streak"
	AlertTypeWinStreak           AlertType = "win_streak"
)

var alertTypeCategories = map[AlertType]AlertCategory{
	AlertTypePriceTarget:    CategoryProfitTaking,
	AlertTypePercentageGain: CategoryProfitTaking,
	AlertTypeROITarget:      CategoryProfitTaking,
	AlertTypeTrailingProfit: CategoryProfitTaking,
	AlertTypeProfitLockIn:   CategoryProfitTaking,
	AlertTypeDailyGain:      CategoryProfitTaking,
	AlertTypeWeeklyGain:     CategoryProfitTaking,
	AlertTypeMonthlyGain:    CategoryProfitTaking,
	AlertTypePartialExit:    CategoryProfitTaking,
	AlertTypeScaleOutTarget: CategoryProfitTaking,

	AlertTypeStopLoss:       CategoryStopLoss,
	AlertTypeTrailingStop:   CategoryStopLoss,
	AlertTypePercentageLoss: CategoryStopLoss,
	AlertTypeHardStop:       CategoryStopLoss,
	AlertTypeDailyLoss:      CategoryStopLoss,
	AlertTypeDrawdownLimit:  CategoryStopLoss,
	AlertTypeBreakEvenStop:  CategoryStopLoss,

	AlertTypeHoldingPeriod:     CategoryTimeBased,
	AlertTypeExpirationWarning: CategoryTimeBased,
	AlertTypePositionExpired:   CategoryTimeBased,
	AlertTypeTimeDecay:         CategoryTimeBased,
	AlertTypeEndOfDay:          CategoryTimeBased,
	AlertTypeEarningsDate:      CategoryTimeBased,
	AlertTypeMarketOpen:        CategoryTimeBased,
	AlertTypeMarketClose:       CategoryTimeBased,

	AlertTypeRSIOverbought:          CategoryTechnical,
	AlertTypeRSIOversold:            CategoryTechnical,
	AlertTypeMACDBullishCross:       CategoryTechnical,
	AlertTypeMACDBearishCross:       CategoryTechnical,
	AlertTypeSMACrossAbove:          CategoryTechnical,
	AlertTypeSMACrossBelow:          CategoryTechnical,
	AlertTypeGoldenCross:            CategoryTechnical,
	AlertTypeDeathCross:             CategoryTechnical,
	AlertTypeBollingerBreakoutUpper: CategoryTechnical,
	AlertTypeBollingerBreakoutLower: CategoryTechnical,
	AlertTypeATRSpike:               CategoryTechnical,
	AlertTypeMomentumShift:          CategoryTechnical,
	AlertTypeSupportBreak:           CategoryTechnical,
	AlertTypeResistanceBreak:        CategoryTechnical,

	AlertTypeVolumeSpike:        CategoryVolume,
	AlertTypeVolumeDryUp:        CategoryVolume,
	AlertTypeUnusualVolume:      CategoryVolume,
	AlertTypeVolumeAboveAverage: CategoryVolume,
	AlertTypeVolumeBreakout:     CategoryVolume,

	AlertTypeFiftyTwoWeekHigh:   CategoryMarketCondition,
	AlertTypeFiftyTwoWeekLow:    CategoryMarketCondition,
	AlertTypeGapUp:              CategoryMarketCondition,
	AlertTypeGapDown:            CategoryMarketCondition,
	AlertTypeMarketVolatility:   CategoryMarketCondition,
	AlertTypeSectorMove:         CategoryMarketCondition,
	AlertTypeBetaSpike:          CategoryMarketCondition,
	AlertTypePriceChangePercent: CategoryMarketCondition,

	AlertTypePEAbove:          CategoryFundamental,
	AlertTypePEBelow:          CategoryFundamental,
	AlertTypeMarketCapChange:  CategoryFundamental,
	AlertTypeEarningsSurprise: CategoryFundamental,
	AlertTypeDividendDate:     CategoryFundamental,
	AlertTypeAnalystUpgrade:   CategoryFundamental,
	AlertTypeAnalystDowngrade: CategoryFundamental,

	AlertTypeMarginCallRisk:          CategoryAdvancedRisk,
	AlertTypeMarginInterestThreshold: CategoryAdvancedRisk,
	AlertTypeLeverageLimit:           CategoryAdvancedRisk,
	AlertTypeExposureLimit:           CategoryAdvancedRisk,
	AlertTypeVaRBreach:               CategoryAdvancedRisk,
	AlertTypeCorrelationSpike:        CategoryAdvancedRisk,
	AlertTypeLiquidityRisk:           CategoryAdvancedRisk,

	AlertTypeOvertrading:         CategoryBehavioral,
	AlertTypeRevengeTrading:      CategoryBehavioral,
	AlertTypePositionSizeAnomaly: CategoryBehavioral,
	AlertTypeRapidReentry:        CategoryBehavioral,
	AlertTypeLossStreak:          CategoryBehavioral,
	AlertTypeWinStreak:           CategoryBehavioral,
}

// Category returns the category an alert type belongs to, or an empty
// category for unknown types.
func (t AlertType) Category() AlertCategory {
	return alertTypeCategories[t]
}

// Valid reports whether the alert type is part of the closed enum.
func (t AlertType) Valid() bool {
	_, ok := alertTypeCategories[t]
	return ok
}
