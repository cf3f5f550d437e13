package domain

const (
	// Record family identifiers
	EmissionsFactorClass        = "org.hyperledger.blockchain-carbon-accounting.emissionsfactoritem"
	UtilityEmissionsFactorClass = "org.hyperledger.blockchain-carbon-accounting.utilityemissionsfactoritem"
	UtilityLookupItemClass      = "org.hyperledger.blockchain-carbon-accounting.utilitylookuplist"

	// Division types
	DivisionTypeState      = "STATE"
	DivisionTypeNERCRegion = "NERC_REGION"
	DivisionTypeCountry    = "Country"
	DivisionIDUSA          = "USA"

	// DefaultMaxYearLookup is how many years the division lookup steps back
	DefaultMaxYearLookup = 5

	// ElectricityCountriesLevel1 holds the per-country grid factors
	ElectricityCountriesLevel1 = "EEA EMISSIONS FACTORS"
	UnitedStates               = "UNITED STATES"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
)
