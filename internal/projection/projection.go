// Package projection defines the data structures related to the monthly
// financial projection and includes functions for computing it.
package projection

import (
	"fmt"
	"math"

	"github.com/gridedge/financial-model/pkg/constants"
	"github.com/gridedge/financial-model/pkg/mathutil"
	"github.com/gridedge/financial-model/pkg/periods"
	"go.uber.org/zap"
)

// Assumption holds the revenue, cost, and capital inputs for one scenario.
type Assumption struct {
	GPURevenueBase       float64
	ASICRevenueBase      float64
	AncillaryRevenueBase float64

	GPUMonthlyGrowthRate    float64
	ASICVolatilityAmplitude float64
	ASICVolatilityFrequency float64
	AncillaryGrowthRate     float64
	AncillaryGrowthCap      float64

	EnergyCostPerKWh   float64
	FacilityCapacityMW float64
	UptimeFraction     float64
	FixedMonthlyCosts  map[string]float64

	AnnualInflationRate float64
	InitialInvestment   float64
	HorizonMonths       int
}

// Validate rejects malformed assumptions before any projection math runs.
// Degenerate but well-defined inputs (zero investment, zero capacity) pass.
func (a *Assumption) Validate() error {
	if a.HorizonMonths < 1 {
		return fmt.Errorf("horizonMonths must be at least 1, got %d", a.HorizonMonths)
	}
	if a.UptimeFraction < 0 || a.UptimeFraction > 1 {
		return fmt.Errorf("uptimeFraction must be within [0, 1], got %v", a.UptimeFraction)
	}
	if a.FacilityCapacityMW < 0 {
		return fmt.Errorf("facilityCapacityMW must be non-negative, got %v", a.FacilityCapacityMW)
	}
	if a.EnergyCostPerKWh < 0 {
		return fmt.Errorf("energyCostPerKwh must be non-negative, got %v", a.EnergyCostPerKWh)
	}
	if a.InitialInvestment < 0 {
		return fmt.Errorf("initialInvestment must be non-negative, got %v", a.InitialInvestment)
	}
	for name, amount := range a.FixedMonthlyCosts {
		if amount < 0 {
			return fmt.Errorf("fixed monthly cost %q must be non-negative, got %v", name, amount)
		}
	}
	return nil
}

// MonthlyEnergyCost derives the flat monthly energy cost before inflation:
// $/kWh x capacity in kW x 720 hours x uptime.
func (a *Assumption) MonthlyEnergyCost() float64 {
	return a.EnergyCostPerKWh * a.FacilityCapacityMW * constants.KilowattsPerMegawatt *
		constants.HoursPerMonth * a.UptimeFraction
}

// RevenueDetail breaks monthly revenue into its components.
type RevenueDetail struct {
	GPU       float64
	ASIC      float64
	Ancillary float64
}

// OpexDetail breaks monthly operating expense into its inflation-adjusted
// components. Fixed is keyed by the cost-category names from the assumption.
type OpexDetail struct {
	Energy float64
	Fixed  map[string]float64
}

// Record holds the projected financials for a single month. The field order
// consumed by renderers is month, revenue, opex, net cash flow, cumulative
// cash flow, net position, ROI ratio, payback flag.
type Record struct {
	Index              int
	Label              string
	Revenue            float64
	Opex               float64
	NetCashFlow        float64
	CumulativeCashFlow float64
	NetPosition        float64
	ROIRatio           float64
	PaybackAchieved    bool

	RevenueDetail RevenueDetail
	OpexDetail    OpexDetail
}

// Engine computes monthly projections from scenario assumptions.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a projection engine with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Project computes the full monthly record sequence for one assumption.
// It either returns exactly HorizonMonths records satisfying the running-sum
// invariant or a validation error before any computation.
func (e *Engine) Project(a Assumption) ([]Record, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid assumption: %w", err)
	}

	records := make([]Record, a.HorizonMonths)
	energyBase := a.MonthlyEnergyCost()
	cumulative := 0.0

	for i := 0; i < a.HorizonMonths; i++ {
		gpuGrowth := 1 + float64(i)*a.GPUMonthlyGrowthRate
		asicVolatility := 1 + math.Sin(float64(i)*a.ASICVolatilityFrequency)*a.ASICVolatilityAmplitude
		ancillaryGrowth := mathutil.Min(a.AncillaryGrowthCap, 1+float64(i)*a.AncillaryGrowthRate)

		revenueDetail := RevenueDetail{
			GPU:       a.GPURevenueBase * gpuGrowth,
			ASIC:      a.ASICRevenueBase * asicVolatility,
			Ancillary: a.AncillaryRevenueBase * ancillaryGrowth,
		}
		revenue := revenueDetail.GPU + revenueDetail.ASIC + revenueDetail.Ancillary

		// Fractional-year exponent, a continuous compounding approximation
		// rather than monthly-true compounding.
		inflation := math.Pow(1+a.AnnualInflationRate, float64(i)/constants.MonthsPerYear)

		opexDetail := OpexDetail{
			Energy: energyBase * inflation,
			Fixed:  make(map[string]float64, len(a.FixedMonthlyCosts)),
		}
		opex := opexDetail.Energy
		for name, amount := range a.FixedMonthlyCosts {
			adjusted := amount * inflation
			opexDetail.Fixed[name] = adjusted
			opex += adjusted
		}

		net := revenue - opex
		cumulative += net
		netPosition := cumulative - a.InitialInvestment

		roi := 0.0
		if a.InitialInvestment > 0 {
			roi = cumulative / a.InitialInvestment
		}

		records[i] = Record{
			Index:              i,
			Label:              periods.Label(i),
			Revenue:            revenue,
			Opex:               opex,
			NetCashFlow:        net,
			CumulativeCashFlow: cumulative,
			NetPosition:        netPosition,
			ROIRatio:           roi,
			PaybackAchieved:    netPosition >= 0,
			RevenueDetail:      revenueDetail,
			OpexDetail:         opexDetail,
		}
	}

	e.logger.Debug("projection computed",
		zap.String("op", "projection.Project"),
		zap.Int("months", a.HorizonMonths),
		zap.Float64("finalCumulativeCashFlow", cumulative),
	)

	return records, nil
}
