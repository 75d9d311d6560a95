package main

import (
	"github.com/iafilius/PieChartWidget/src/piechart"
	"github.com/iafilius/PieChartWidget/src/radial"
)

// demoDataset pairs a named value set with the two-color ramp used to paint it.
type demoDataset struct {
	name   string
	values radial.ValueSet
	ramp   piechart.ColorRamp
}

// withUnused appends the unclaimed remainder of a fixed capacity as its own
// "Unused" entry, so capacity-style breakdowns (land, grid headroom) always
// account for the whole circle. A negative remainder clamps to zero.
func withUnused(values radial.ValueSet, capacity float64) radial.ValueSet {
	used := 0.0
	for _, d := range values {
		used += d.Value
	}
	rest := capacity - used
	if rest < 0 {
		rest = 0
	}
	return append(values, radial.Datum{Label: "Unused", Value: rest})
}

// demoDatasets returns the built-in example datasets. The values are
// illustrative, fixed breakdowns; each ramp is the light-to-dark color pair
// of the matching resource category.
func demoDatasets() []demoDataset {
	return []demoDataset{
		{
			name: "Land Use",
			values: withUnused(radial.ValueSet{
				{Label: "Livestock", Value: 31},
				{Label: "Cereal Crops", Value: 18},
				{Label: "Rice", Value: 11},
				{Label: "Oil Crops", Value: 9},
				{Label: "Sugar Crops", Value: 4},
				{Label: "Vegetables", Value: 3},
				{Label: "Solar Farms", Value: 2},
				{Label: "Cities", Value: 1.5},
			}, 100),
			ramp: piechart.ColorRamp{From: 0xB7FF7A, To: 0x0E681F},
		},
		{
			name: "Water Use",
			values: radial.ValueSet{
				{Label: "Irrigation", Value: 70},
				{Label: "Livestock", Value: 12},
				{Label: "Industry", Value: 11},
				{Label: "Municipal", Value: 7},
			},
			ramp: piechart.ColorRamp{From: 0x7DE1EF, To: 0x4560FF},
		},
		{
			name: "Energy Mix",
			values: radial.ValueSet{
				{Label: "Oil", Value: 31},
				{Label: "Coal", Value: 27},
				{Label: "Natural Gas", Value: 25},
				{Label: "Hydro", Value: 7},
				{Label: "Nuclear", Value: 4},
				{Label: "Solar", Value: 3},
				{Label: "Wind", Value: 3},
			},
			ramp: piechart.ColorRamp{From: 0xFDCE4C, To: 0xE81224},
		},
		{
			name: "Emissions Sources",
			values: radial.ValueSet{
				{Label: "Energy", Value: 73},
				{Label: "Agriculture", Value: 18},
				{Label: "Industry", Value: 5},
				{Label: "Waste", Value: 3},
			},
			ramp: piechart.ColorRamp{From: 0xF2F7E2, To: 0x6CB30B},
		},
		{
			name: "Electricity Demand",
			values: radial.ValueSet{
				{Label: "Industry", Value: 42},
				{Label: "Residential", Value: 27},
				{Label: "Commercial", Value: 21},
				{Label: "Other", Value: 8},
				{Label: "Transport", Value: 2},
			},
			ramp: piechart.ColorRamp{From: 0xFFFF1A, To: 0xFF8C1A},
		},
		{
			name: "Fuel Demand",
			values: radial.ValueSet{
				{Label: "Road Transport", Value: 49},
				{Label: "Industry", Value: 29},
				{Label: "Aviation", Value: 8},
				{Label: "Shipping", Value: 7},
				{Label: "Heating", Value: 7},
			},
			ramp: piechart.ColorRamp{From: 0xF7F6C7, To: 0xD3753F},
		},
		{
			name: "Plant Calories",
			values: radial.ValueSet{
				{Label: "Cereals", Value: 45},
				{Label: "Oils", Value: 18},
				{Label: "Sugars", Value: 14},
				{Label: "Vegetables", Value: 9},
				{Label: "Fruit", Value: 8},
				{Label: "Pulses", Value: 6},
			},
			ramp: piechart.ColorRamp{From: 0xB1EF8F, To: 0x06CA9B},
		},
		{
			name: "Animal Calories",
			values: radial.ValueSet{
				{Label: "Dairy", Value: 29},
				{Label: "Beef", Value: 25},
				{Label: "Pork", Value: 18},
				{Label: "Poultry", Value: 17},
				{Label: "Eggs", Value: 7},
				{Label: "Fish", Value: 4},
			},
			ramp: piechart.ColorRamp{From: 0xF8AD72, To: 0xCA5704},
		},
	}
}
