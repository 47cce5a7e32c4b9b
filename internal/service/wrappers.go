package service

// CalculatorServiceWrapper defines middleware composition for CalculatorService.
// Implementations wrap an existing CalculatorService to add behavior such as
// logging or validating.
type CalculatorServiceWrapper interface {
	Wrap(CalculatorService) CalculatorService // returns a decorated CalculatorService applying additional behavior
}
