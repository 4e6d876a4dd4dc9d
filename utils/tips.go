package utils

// Eco-tip thresholds. Rules are independent; every matching rule fires, in
// this order, and the list is never empty.
const (
	tipCarKmThreshold    = 20.0
	tipKwhThreshold      = 15.0
	tipMeatThreshold     = 2.0
	tipTotalCO2Threshold = 30.0
)

func GenerateEcoTips(in ActivityInput, totalCO2 float64) []string {
	tips := []string{}

	if in.Transport != nil && in.Transport.CarKm > tipCarKmThreshold {
		tips = append(tips, "Consider using public transport or biking for shorter trips to reduce emissions.")
	}
	if in.Electricity != nil && in.Electricity.KwhUsed > tipKwhThreshold {
		tips = append(tips, "Switch to LED bulbs and unplug electronics when not in use to save energy.")
	}
	if in.Food != nil && in.Food.Meat > tipMeatThreshold {
		tips = append(tips, "Try having one meat-free day per week to reduce your food carbon footprint.")
	}
	if totalCO2 > tipTotalCO2Threshold {
		tips = append(tips, "Your daily emissions are high. Try combining errands into one trip.")
	}

	if len(tips) == 0 {
		tips = append(tips, "Great job! You're keeping your carbon footprint low today.")
	}

	return tips
}
