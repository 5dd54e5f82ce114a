package main

// AppreciationPreset carries reference appreciation rates for a market zone.
// Rates are nominal annual appreciation of UF prices, so already net of CLP
// inflation. Data compiled from CBRE/TocToc comuna reports as of mid 2025.
// Past appreciation does not guarantee future results.
type AppreciationPreset struct {
	ID          string  // Unique identifier (e.g., "santiago-centro")
	Name        string  // Display name
	Zone        string  // City / sector
	Year1       float64 // First-year appreciation (new-build discount absorption)
	Year2Plus   float64 // Long-run annual appreciation
	Demand      string  // "low", "medium", "high" rental demand
	Description string
}

// AppreciationPresets lists the market zones the simulator knows about.
// Config selects one by ID through market.appreciation_source, or "custom"
// to use explicit rates.
var AppreciationPresets = []AppreciationPreset{
	{
		ID:          "santiago-centro",
		Name:        "Santiago Centro",
		Zone:        "Santiago",
		Year1:       0.054,
		Year2Plus:   0.050,
		Demand:      "high",
		Description: "Entrega inmediata, alta rotación de arriendo",
	},
	{
		ID:          "macul",
		Name:        "Macul",
		Zone:        "Santiago",
		Year1:       0.052,
		Year2Plus:   0.048,
		Demand:      "high",
		Description: "Cercanía a campus universitarios, demanda estudiantil",
	},
	{
		ID:          "la-florida",
		Name:        "La Florida",
		Zone:        "Santiago",
		Year1:       0.050,
		Year2Plus:   0.045,
		Demand:      "medium",
		Description: "Conectividad de metro, proyectos en desarrollo",
	},
	{
		ID:          "estacion-central",
		Name:        "Estación Central",
		Zone:        "Santiago",
		Year1:       0.045,
		Year2Plus:   0.040,
		Demand:      "medium",
		Description: "Precios de entrada bajos, mayor vacancia",
	},
	{
		ID:          "nunoa",
		Name:        "Ñuñoa",
		Zone:        "Santiago",
		Year1:       0.058,
		Year2Plus:   0.052,
		Demand:      "high",
		Description: "Sector consolidado, plusvalía sostenida",
	},
	{
		ID:          "concepcion",
		Name:        "Concepción",
		Zone:        "Biobío",
		Year1:       0.040,
		Year2Plus:   0.035,
		Demand:      "medium",
		Description: "Mercado regional, menor volatilidad de precios",
	},
}

// FindAppreciationPreset returns the preset with the given ID, or nil.
func FindAppreciationPreset(id string) *AppreciationPreset {
	for i := range AppreciationPresets {
		if AppreciationPresets[i].ID == id {
			return &AppreciationPresets[i]
		}
	}
	return nil
}
