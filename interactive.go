package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Interactive console mode. Prompts in the order the advisors walk a client
// through: income first, then the target project, then properties.

// ValidationError carries the field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// validateFraction checks a decimal fraction (0.0-1.0)
func validateFraction(value float64, fieldName string) error {
	if value < 0 || value > 1.0 {
		return ValidationError{Field: fieldName, Message: fmt.Sprintf("El valor debe estar entre 0%% y 100%% (recibido %.1f%%)", value*100)}
	}
	return nil
}

// validateMoney checks a CLP amount is non-negative and plausible
func validateMoney(amount float64, fieldName string) error {
	if amount < 0 {
		return ValidationError{Field: fieldName, Message: "El monto no puede ser negativo"}
	}
	if amount > 1e12 {
		return ValidationError{Field: fieldName, Message: "El monto parece demasiado grande, revise el valor"}
	}
	return nil
}

// InteractiveSession reads simulation inputs from the console
type InteractiveSession struct {
	reader *bufio.Reader
	config *Config
}

func NewInteractiveSession(config *Config) *InteractiveSession {
	return &InteractiveSession{
		reader: bufio.NewReader(os.Stdin),
		config: config,
	}
}

func (s *InteractiveSession) readLine() string {
	line, _ := s.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (s *InteractiveSession) promptFloat(prompt string, defaultVal float64) float64 {
	for {
		fmt.Printf("%s [%.2f]: ", prompt, defaultVal)
		input := s.readLine()
		if input == "" {
			return defaultVal
		}
		input = strings.ReplaceAll(input, ",", ".")
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Println("  Valor inválido, intente de nuevo")
			continue
		}
		return value
	}
}

func (s *InteractiveSession) promptMoney(prompt string, defaultVal float64) float64 {
	for {
		fmt.Printf("%s [%s]: ", prompt, FormatCLP(defaultVal))
		input := s.readLine()
		if input == "" {
			return defaultVal
		}
		input = strings.ReplaceAll(input, ".", "")
		input = strings.TrimPrefix(input, "$")
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Println("  Monto inválido, intente de nuevo")
			continue
		}
		if err := validateMoney(value, "money"); err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		return value
	}
}

// promptFraction accepts "4.5%", "4,5" or "0.045" and returns the decimal
func (s *InteractiveSession) promptFraction(prompt string, defaultVal float64) float64 {
	for {
		fmt.Printf("%s [%s]: ", prompt, FormatPercent(defaultVal))
		input := s.readLine()
		if input == "" {
			return defaultVal
		}
		input = strings.ReplaceAll(input, ",", ".")
		hadPercent := strings.HasSuffix(input, "%")
		input = strings.TrimSuffix(input, "%")
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Println("  Valor inválido, intente de nuevo")
			continue
		}
		// Values above 1 are read as percentages even without the sign
		if hadPercent || value > 1 {
			value /= 100
		}
		if err := validateFraction(value, "fraction"); err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		return value
	}
}

func (s *InteractiveSession) promptInt(prompt string, defaultVal int) int {
	for {
		fmt.Printf("%s [%d]: ", prompt, defaultVal)
		input := s.readLine()
		if input == "" {
			return defaultVal
		}
		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("  Valor inválido, intente de nuevo")
			continue
		}
		return value
	}
}

func (s *InteractiveSession) promptYesNo(prompt string, defaultVal bool) bool {
	def := "s/N"
	if defaultVal {
		def = "S/n"
	}
	fmt.Printf("%s [%s]: ", prompt, def)
	input := strings.ToLower(s.readLine())
	if input == "" {
		return defaultVal
	}
	return input == "s" || input == "si" || input == "sí" || input == "y"
}

// Run drives the interactive menu until the user exits
func (s *InteractiveSession) Run() {
	a := s.config.BuildAssumptions()
	PrintAssumptions(a)

	for {
		fmt.Println()
		fmt.Println("  1) Capacidad de compra")
		fmt.Println("  2) Evaluar una propiedad")
		fmt.Println("  3) Portafolio configurado")
		fmt.Println("  4) Salir")
		fmt.Print("\nOpción: ")

		switch s.readLine() {
		case "1":
			s.runCapacity()
		case "2":
			s.runProperty(a)
		case "3":
			result := AggregatePortfolio(a, s.config.PropertyInputs())
			calculations.WithLabelValues("portfolio", "console").Inc()
			PrintPortfolio(result)
		case "4", "q", "":
			return
		default:
			fmt.Println("Opción inválida")
		}
	}
}

func (s *InteractiveSession) runCapacity() {
	params := CapacityParams{
		LoadFraction:       s.config.Capacity.LoadFraction,
		AnnualRate:         s.config.Credit.AnnualRate,
		TermYears:          s.config.Credit.TermYears,
		UFValue:            s.config.Market.UFValue,
		FinancingFractions: s.config.Capacity.FinancingFractions,
	}

	params.GrossIncomeCLP = s.promptMoney("Renta bruta mensual", 1_500_000)
	params.CoIncomeCLP = s.promptMoney("Renta del complemento (0 si no hay)", 0)
	params.Profile.FixedSalary = s.promptYesNo("¿Renta fija (contrato indefinido)?", true)
	params.Profile.VariableSalary = s.promptYesNo("¿Renta variable (comisiones, bonos)?", false)
	params.Profile.Independent = s.promptYesNo("¿Trabajador independiente?", false)
	params.MonthlyDebtCLP = s.promptMoney("Deuda mensual actual", 0)
	params.AnnualRate = s.promptFraction("Tasa anual del crédito", params.AnnualRate)
	params.TermYears = s.promptInt("Plazo del crédito (años)", params.TermYears)
	params.TargetValueUF = s.promptFloat("Proyecto objetivo en UF (0 si no hay)", 0)

	result := ComputeCapacity(params)
	calculations.WithLabelValues("capacity", "console").Inc()
	recs := Recommendations(RecommendationInput{Params: params, Capacity: result})
	PrintCapacity(params, result, recs)
}

func (s *InteractiveSession) runProperty(a Assumptions) {
	input := PropertyInput{
		Name:              "Propiedad",
		ValueUF:           s.promptFloat("Valor de la propiedad (UF)", 2880),
		FinancingFraction: s.promptFraction("Porcentaje de financiamiento", 0.90),
		MonthlyRentCLP:    s.promptMoney("Arriendo mensual estimado", 420_000),
		BuildingFeeCLP:    s.promptMoney("Gasto común", 45_000),
		ReservationCLP:    s.promptMoney("Reserva", 200_000),
		FurnishingCLP:     s.promptMoney("Amoblado (0 si no aplica)", 0),
		SubsidyApplies:    s.promptYesNo("¿Aplica bono pie?", false),
	}
	input.TaxApplies = s.promptYesNo("¿La compra está afecta a IVA?", false)

	result := ComputeProperty(a, input)
	calculations.WithLabelValues("property", "console").Inc()
	PrintProperty(result)
}
