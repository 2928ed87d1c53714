package dataset

import "github.com/spendlens/spendlens/internal/domain"

// Sample returns the built-in spend dataset used when no CSV is
// configured. Values are illustrative procurement spend figures.
func Sample() []domain.SpendRecord {
	return []domain.SpendRecord{
		{Supplier: "SweetCo", Commodity: "Sugar", Region: "North America", Month: "2024-01", SpendUSD: 125000},
		{Supplier: "SweetCo", Commodity: "Sugar", Region: "North America", Month: "2024-02", SpendUSD: 131500},
		{Supplier: "CaneWorks", Commodity: "Sugar", Region: "South America", Month: "2024-01", SpendUSD: 98700},
		{Supplier: "CaneWorks", Commodity: "Sugar", Region: "South America", Month: "2024-02", SpendUSD: 104300},
		{Supplier: "AgriGold", Commodity: "Corn", Region: "North America", Month: "2024-01", SpendUSD: 76200},
		{Supplier: "AgriGold", Commodity: "Corn", Region: "North America", Month: "2024-02", SpendUSD: 81900},
		{Supplier: "PrairieHarvest", Commodity: "Corn", Region: "North America", Month: "2024-01", SpendUSD: 54100},
		{Supplier: "PrairieHarvest", Commodity: "Wheat", Region: "Europe", Month: "2024-01", SpendUSD: 67800},
		{Supplier: "PrairieHarvest", Commodity: "Wheat", Region: "Europe", Month: "2024-02", SpendUSD: 71250},
		{Supplier: "SteppeGrain", Commodity: "Wheat", Region: "Europe", Month: "2024-02", SpendUSD: 45600},
		{Supplier: "TropiBean", Commodity: "Cocoa", Region: "Africa", Month: "2024-01", SpendUSD: 88300},
		{Supplier: "TropiBean", Commodity: "Cocoa", Region: "Africa", Month: "2024-02", SpendUSD: 92750},
		{Supplier: "HighlandRoast", Commodity: "Coffee", Region: "South America", Month: "2024-01", SpendUSD: 61400},
		{Supplier: "HighlandRoast", Commodity: "Coffee", Region: "South America", Month: "2024-02", SpendUSD: 58900},
		{Supplier: "MonsoonLeaf", Commodity: "Tea", Region: "Asia", Month: "2024-01", SpendUSD: 39800},
		{Supplier: "MonsoonLeaf", Commodity: "Tea", Region: "Asia", Month: "2024-02", SpendUSD: 42100},
	}
}
