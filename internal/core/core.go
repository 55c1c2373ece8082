package core

// Color represents the options for enabling or disabling color output.
type Color int

const (
	ColorUnknown Color = iota
	ColorAuto
	ColorOn
	ColorOff
)

// Output represents the options for rendering the terminal report.
type Output int

const (
	OutputUnknown Output = iota
	OutputText
	OutputJSON
	OutputYAML
)
