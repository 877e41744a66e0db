package config

import (
	"github.com/gridedge/financial-model/internal/capex"
	"github.com/gridedge/financial-model/internal/projection"
	"github.com/gridedge/financial-model/pkg/constants"
)

// Default returns the built-in GridEdge compute center catalogue: the full
// 5 MW build model plus the phase-one bear/base/bull variants, so the tool
// produces the complete workbook and chart set with no config file.
func Default() *Configuration {
	conf := &Configuration{
		Project: Project{
			Name:       "GridEdge Compute Center",
			CapacityMW: 5,
			Location:   "El Salvador Geothermal Corridor",
		},
		CapEx: capex.Table{
			Items: []capex.LineItem{
				{Category: "Equipment", Subcategory: "ASIC Miners", CapacityUnits: "2 MW", UnitCost: 1500, TotalCost: 3000000, Notes: "Bitcoin mining hardware"},
				{Category: "Equipment", Subcategory: "GPU Clusters", CapacityUnits: "1 MW", UnitCost: 2500, TotalCost: 2500000, Notes: "AI/ML workloads"},
				{Category: "Equipment", Subcategory: "Network Equipment", CapacityUnits: "5 MW", UnitCost: 200, TotalCost: 1000000, Notes: "Switches, routers, security"},
				{Category: "Equipment", Subcategory: "Servers & Storage", CapacityUnits: "5 MW", UnitCost: 300, TotalCost: 1500000, Notes: "Management and storage"},
				{Category: "Facility", Subcategory: "Modular Construction", CapacityUnits: "5000 sq ft", UnitCost: 400, TotalCost: 2000000, Notes: "Pre-fab datacenter modules"},
				{Category: "Facility", Subcategory: "Site Preparation", CapacityUnits: "1 lot", UnitCost: 500000, TotalCost: 500000, Notes: "Foundation, access roads"},
				{Category: "Facility", Subcategory: "Security Systems", CapacityUnits: "1 facility", UnitCost: 250000, TotalCost: 250000, Notes: "Cameras, access control"},
				{Category: "Power & Cooling", Subcategory: "Geothermal Connection", CapacityUnits: "3 MW", UnitCost: 5000, TotalCost: 15000000, Notes: "LaGeo PPA infrastructure"},
				{Category: "Power & Cooling", Subcategory: "Solar Array", CapacityUnits: "2 MW", UnitCost: 1500, TotalCost: 3000000, Notes: "Rooftop and ground mount"},
				{Category: "Power & Cooling", Subcategory: "Battery Storage", CapacityUnits: "1000 kWh", UnitCost: 1000, TotalCost: 1000000, Notes: "Grid stabilization"},
				{Category: "Power & Cooling", Subcategory: "Gas Generators", CapacityUnits: "2 MW", UnitCost: 1000, TotalCost: 2000000, Notes: "Backup power"},
				{Category: "Power & Cooling", Subcategory: "HVAC Systems", CapacityUnits: "5 MW", UnitCost: 800, TotalCost: 4000000, Notes: "Cooling with heat recovery"},
				{Category: "Power & Cooling", Subcategory: "Electrical Distribution", CapacityUnits: "5 MW", UnitCost: 600, TotalCost: 3000000, Notes: "Transformers, switchgear"},
			},
			ContingencyRate: 0.15,
			TargetTotal:     32000000,
		},
		Scenarios: []Scenario{
			{
				Name:       "Full Build",
				Active:     true,
				Assumption: fullBuildAssumption(),
			},
			{
				Name:       "Phase I Bear",
				Active:     true,
				Assumption: phaseOneAssumption(80000, 153000),
			},
			{
				Name:       "Phase I Base",
				Active:     true,
				Assumption: phaseOneAssumption(120000, 138000),
			},
			{
				Name:       "Phase I Bull",
				Active:     true,
				Assumption: phaseOneAssumption(250000, 116000),
			},
		},
	}
	conf.applyDefaults()
	return conf
}

// fullBuildAssumption is the 5 MW build: growing GPU leasing, volatile ASIC
// mining, capped ancillary income, and fully itemized operating costs.
func fullBuildAssumption() projection.Assumption {
	return projection.Assumption{
		GPURevenueBase:          80000,
		ASICRevenueBase:         18000,
		AncillaryRevenueBase:    2500,
		GPUMonthlyGrowthRate:    0.005,
		ASICVolatilityAmplitude: 0.2,
		ASICVolatilityFrequency: 0.3,
		AncillaryGrowthRate:     0.01,
		AncillaryGrowthCap:      1.5,
		EnergyCostPerKWh:        0.07,
		FacilityCapacityMW:      5,
		UptimeFraction:          0.85,
		FixedMonthlyCosts: map[string]float64{
			"Staff":        15000,
			"Maintenance":  5000,
			"Insurance":    2000,
			"Connectivity": 3000,
			"Other":        1500,
		},
		AnnualInflationRate: 0.02,
		InitialInvestment:   32000000,
		HorizonMonths:       5 * constants.MonthsPerYear,
	}
}

// phaseOneAssumption models the 6.2M phase-one variants: a flat GPU figure
// per case, the same volatile ASIC series as the full build, and a single
// flat operating cost line with no inflation.
func phaseOneAssumption(gpuRevenue, monthlyOpex float64) projection.Assumption {
	return projection.Assumption{
		GPURevenueBase:          gpuRevenue,
		ASICRevenueBase:         18000,
		ASICVolatilityAmplitude: 0.2,
		ASICVolatilityFrequency: 0.3,
		AncillaryGrowthCap:      1,
		FixedMonthlyCosts: map[string]float64{
			"Operations": monthlyOpex,
		},
		InitialInvestment: 6200000,
		HorizonMonths:     5 * constants.MonthsPerYear,
	}
}
