package main

// UF <-> CLP conversion. The UF is an inflation-indexed unit whose daily CLP
// value comes from outside the engine (config, flag, or the indicator
// endpoint); here it is just a number.

// UFToCLP converts an amount in UF to CLP at the given UF value.
// Returns 0 if either argument is non-positive.
func UFToCLP(amountUF, ufValue float64) float64 {
	if amountUF <= 0 || ufValue <= 0 {
		return 0
	}
	return amountUF * ufValue
}

// CLPToUF converts an amount in CLP to UF at the given UF value.
// Returns 0 if either argument is non-positive.
func CLPToUF(amountCLP, ufValue float64) float64 {
	if amountCLP <= 0 || ufValue <= 0 {
		return 0
	}
	return amountCLP / ufValue
}
