package service

// goldInterestFreeAllowance is the borrowed amount gold subscribers are not
// charged interest on.
const goldInterestFreeAllowance = 1000.0

// marginRateTier maps a borrowed-amount ceiling to its annual rate in
// percent. Tiers are evaluated in order; the last tier is open-ended.
type marginRateTier struct {
	UpTo       float64
	AnnualRate float64
}

var marginRateTiers = []marginRateTier{
	{UpTo: 50_000, AnnualRate: 5.75},
	{UpTo: 100_000, AnnualRate: 5.55},
	{UpTo: 1_000_000, AnnualRate: 5.25},
	{UpTo: 10_000_000, AnnualRate: 5.00},
	{UpTo: 50_000_000, AnnualRate: 4.85},
}

// openEndedAnnualRate applies to borrowed amounts above the last tier.
const openEndedAnnualRate = 4.70

// MarginRate returns the annual margin interest rate in percent for a
// borrowed amount. It is a non-increasing step function of the amount.
func MarginRate(borrowed float64) float64 {
	for _, tier := range marginRateTiers {
		if borrowed <= tier.UpTo {
			return tier.AnnualRate
		}
	}
	return openEndedAnnualRate
}

// ChargeableMargin returns the borrowed amount interest accrues on. Gold
// subscribers get the interest-free allowance deducted.
func ChargeableMargin(marginUsed float64, isGoldSubscriber bool) float64 {
	if !isGoldSubscriber {
		return marginUsed
	}
	chargeable := marginUsed - goldInterestFreeAllowance
	if chargeable < 0 {
		return 0
	}
	return chargeable
}

// TotalInterest accrues daily simple interest on the chargeable margin over
// the elapsed days.
func TotalInterest(marginUsed float64, isGoldSubscriber bool, daysElapsed int) float64 {
	if daysElapsed <= 0 {
		return 0
	}
	chargeable := ChargeableMargin(marginUsed, isGoldSubscriber)
	dailyRate := MarginRate(marginUsed) / 365.0 / 100.0
	return chargeable * dailyRate * float64(daysElapsed)
}
