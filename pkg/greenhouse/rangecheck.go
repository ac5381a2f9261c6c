package greenhouse

// Inclusive acceptable ranges for the six monitored metrics. These are
// fixed domain constants, not per-greenhouse tunables.
const (
	TemperatureMin = 20.0
	TemperatureMax = 25.0

	HumidityMin = 40.0
	HumidityMax = 60.0

	CO2Min = 400.0
	CO2Max = 1000.0

	LightIntensityMin = 1000.0
	LightIntensityMax = 10000.0

	SoilPHMin = 6.0
	SoilPHMax = 7.0

	SoilMoistureMin = 30.0
	SoilMoistureMax = 60.0
)

func CheckTemperature(temperature float64) bool {
	return temperature >= TemperatureMin && temperature <= TemperatureMax
}

func CheckHumidity(humidity float64) bool {
	return humidity >= HumidityMin && humidity <= HumidityMax
}

func CheckCO2(co2 float64) bool {
	return co2 >= CO2Min && co2 <= CO2Max
}

func CheckLightIntensity(lightIntensity float64) bool {
	return lightIntensity >= LightIntensityMin && lightIntensity <= LightIntensityMax
}

func CheckSoilPH(soilPH float64) bool {
	return soilPH >= SoilPHMin && soilPH <= SoilPHMax
}

func CheckSoilMoisture(soilMoisture float64) bool {
	return soilMoisture >= SoilMoistureMin && soilMoisture <= SoilMoistureMax
}
