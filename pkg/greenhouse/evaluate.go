package greenhouse

import (
	"fmt"
	"strconv"
	"strings"
)

// formatValue renders a metric value without rounding, so a reading of
// 19.99 never reports itself as "20.0". Whole numbers keep a trailing
// ".0" to read as measurements rather than counts.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// EvaluateReading runs every range check against the reading and returns
// one human-readable violation per failing metric, always in fixed metric
// order (temperature, humidity, CO2, light, pH, moisture). An empty
// result means the reading is fully in range.
func EvaluateReading(input *Reading) []string {
	var violations []string

	if !CheckTemperature(input.Temperature) {
		violations = append(violations,
			fmt.Sprintf("Temperature %s°C is out of range (20-25°C).", formatValue(input.Temperature)))
	}
	if !CheckHumidity(input.Humidity) {
		violations = append(violations,
			fmt.Sprintf("Humidity %s%% is out of range (40-60%%).", formatValue(input.Humidity)))
	}
	if !CheckCO2(input.CO2) {
		violations = append(violations,
			fmt.Sprintf("CO2 %s ppm is out of range (400-1000 ppm).", formatValue(input.CO2)))
	}
	if !CheckLightIntensity(input.LightIntensity) {
		violations = append(violations,
			fmt.Sprintf("Light Intensity %s lux is out of range (1000-10000 lux).", formatValue(input.LightIntensity)))
	}
	if !CheckSoilPH(input.SoilPH) {
		violations = append(violations,
			fmt.Sprintf("Soil pH %s is out of range (6.0-7.0).", formatValue(input.SoilPH)))
	}
	if !CheckSoilMoisture(input.SoilMoisture) {
		violations = append(violations,
			fmt.Sprintf("Soil Moisture %s%% is out of range (30-60%%).", formatValue(input.SoilMoisture)))
	}

	return violations
}
