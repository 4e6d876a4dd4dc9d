package utils

import (
	"errors"
	"fmt"
	"math"

	"github.com/SiddeshHulagur/CarbonTracker/models"
)

// CO2 emission factors (kg CO2 per unit). Fixed illustrative averages;
// changing them changes future totals only, past records are never recomputed.
const (
	FactorCarPerKm             = 0.21
	FactorBusPerKm             = 0.089
	FactorBikePerKm            = 0.0
	FactorWalkPerKm            = 0.0
	FactorElectricityPerKwh    = 0.5
	FactorMeatPerServing       = 6.61
	FactorDairyPerServing      = 3.15
	FactorVegetablesPerServing = 0.43
	FactorProcessedPerServing  = 2.3
)

// FactorsMeta describes the factor table version exposed on the dashboard.
type FactorsMeta struct {
	Version     string   `json:"version"`
	Sources     []string `json:"sources"`
	LastUpdated string   `json:"lastUpdated"`
}

var EmissionFactorsMeta = FactorsMeta{
	Version: "1.0.0",
	Sources: []string{
		"Average passenger vehicle: EPA",
		"Grid electricity average intensity",
		"Food emissions factors aggregated (meat/dairy/vegetables/processed)",
	},
	LastUpdated: "2025-08-10",
}

// ActivityInput is the raw activity payload. Category objects are optional;
// a missing category contributes 0.
type ActivityInput struct {
	Transport   *models.Transport   `json:"transport"`
	Electricity *models.Electricity `json:"electricity"`
	Food        *models.Food        `json:"food"`
}

// CalculateCO2 converts raw activity inputs into a kg CO2 total, rounded to
// two decimals. Bike and walk distances contribute nothing.
func CalculateCO2(in ActivityInput) float64 {
	total := 0.0

	if in.Transport != nil {
		total += in.Transport.CarKm * FactorCarPerKm
		total += in.Transport.BusKm * FactorBusPerKm
	}
	if in.Electricity != nil {
		total += in.Electricity.KwhUsed * FactorElectricityPerKwh
	}
	if in.Food != nil {
		total += in.Food.Meat * FactorMeatPerServing
		total += in.Food.Dairy * FactorDairyPerServing
		total += in.Food.Vegetables * FactorVegetablesPerServing
		total += in.Food.Processed * FactorProcessedPerServing
	}

	return Round2(total)
}

type CategoryTotals struct {
	Transport   float64 `json:"transport"`
	Electricity float64 `json:"electricity"`
	Food        float64 `json:"food"`
}

type Breakdown struct {
	Raw     CategoryTotals `json:"raw"`
	Percent CategoryTotals `json:"percent"`
}

// CategoryBreakdown decomposes the total into the three category sums plus
// each category's share of the total. A zero total yields zero percentages.
func CategoryBreakdown(in ActivityInput) Breakdown {
	var transport, electricity, food float64

	if in.Transport != nil {
		transport += in.Transport.CarKm * FactorCarPerKm
		transport += in.Transport.BusKm * FactorBusPerKm
	}
	if in.Electricity != nil {
		electricity += in.Electricity.KwhUsed * FactorElectricityPerKwh
	}
	if in.Food != nil {
		food += in.Food.Meat * FactorMeatPerServing
		food += in.Food.Dairy * FactorDairyPerServing
		food += in.Food.Vegetables * FactorVegetablesPerServing
		food += in.Food.Processed * FactorProcessedPerServing
	}

	total := transport + electricity + food
	if total == 0 {
		total = 1 // percentages read as 0 instead of NaN
	}

	return Breakdown{
		Raw: CategoryTotals{
			Transport:   Round2(transport),
			Electricity: Round2(electricity),
			Food:        Round2(food),
		},
		Percent: CategoryTotals{
			Transport:   Round2(transport / total * 100),
			Electricity: Round2(electricity / total * 100),
			Food:        Round2(food / total * 100),
		},
	}
}

type SimulationSide struct {
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

type SimulationResult struct {
	Current        SimulationSide `json:"current"`
	Proposed       SimulationSide `json:"proposed"`
	Savings        float64        `json:"savings"`
	SavingsPercent float64        `json:"savingsPercent"`
	Message        string         `json:"message"`
}

var ErrSimulationInput = errors.New("provide current and proposed activity objects")

// Simulate compares a current activity pattern against a proposed one.
// Positive savings means the proposal is an improvement.
func Simulate(current, proposed *ActivityInput) (*SimulationResult, error) {
	if current == nil || proposed == nil {
		return nil, ErrSimulationInput
	}

	currentCO2 := CalculateCO2(*current)
	proposedCO2 := CalculateCO2(*proposed)

	savings := Round2(currentCO2 - proposedCO2)
	pct := 0.0
	if currentCO2 > 0 {
		pct = Round2(savings / currentCO2 * 100)
	}

	message := "No reduction achieved."
	if savings > 0 {
		message = fmt.Sprintf("You could reduce emissions by %g kg (%g%%).", savings, pct)
	}

	return &SimulationResult{
		Current:        SimulationSide{Total: currentCO2, Breakdown: CategoryBreakdown(*current)},
		Proposed:       SimulationSide{Total: proposedCO2, Breakdown: CategoryBreakdown(*proposed)},
		Savings:        savings,
		SavingsPercent: pct,
		Message:        message,
	}, nil
}

func Round2(v float64) float64 { return math.Round(v*100) / 100 }
