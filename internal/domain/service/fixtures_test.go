package service_test

import "github.com/suhailre/suhail/internal/domain/model"

func riyadhNeighborhoods() []model.Neighborhood {
	return []model.Neighborhood{
		{Area: "Al Olaya", Safety: 85, Schools: 90, Healthcare: 88, Shopping: 95, Transportation: 80},
		{Area: "Al Nakheel", Safety: 92, Schools: 85, Healthcare: 82, Shopping: 75, Transportation: 68},
		{Area: "Hittin", Safety: 90, Schools: 82, Healthcare: 70, Shopping: 68, Transportation: 65},
		{Area: "Al Malaz", Safety: 75, Schools: 80, Healthcare: 85, Shopping: 82, Transportation: 88},
		{Area: "Al Naseem", Safety: 75, Schools: 65, Healthcare: 70, Shopping: 60, Transportation: 60},
	}
}

func riyadhRisks() []model.EnvironmentalRisk {
	return []model.EnvironmentalRisk{
		{Area: "Al Olaya", Flood: 25, AirPollution: 65, HeatIsland: 75, WaterQuality: 30},
		{Area: "Al Nakheel", Flood: 15, AirPollution: 50, HeatIsland: 60, WaterQuality: 25},
		{Area: "Hittin", Flood: 20, AirPollution: 45, HeatIsland: 55, WaterQuality: 35},
		{Area: "Al Malaz", Flood: 40, AirPollution: 70, HeatIsland: 70, WaterQuality: 40},
		{Area: "Al Naseem", Flood: 60, AirPollution: 55, HeatIsland: 65, WaterQuality: 45},
	}
}
