package domain

// Quality bounds
const (
	QualityLowerBound = 0
	QualityUpperBound = 50
	FixedQuality      = 80 // every fixed-value item is worth exactly this
)

// Aging rates, in quality points per day
const (
	DeteriorationRate     = 1
	FastDeteriorationRate = 2 * DeteriorationRate
	AppreciationRate      = 1
	OverdueFactor         = 2
)

// Default catalog names
const (
	ItemGoodWine          = "Good Wine"
	ItemBackstageRefactor = "Backstage passes for Re:Factor"
	ItemBackstageHAXX     = "Backstage passes for HAXX"
	ItemKeychain          = "B-DAWG Keychain"
	ItemDuplicateCode     = "Duplicate Code"
	ItemLongMethods       = "Long Methods"
	ItemUglyVariableNames = "Ugly Variable Names"
)
