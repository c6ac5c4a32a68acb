package cliconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults are the .env-sourced fallbacks applied before command-line
// flags are considered.
type Defaults struct {
	Alpha   float64
	Verbose bool
}

// LoadDefaults loads .env from the current working directory (if
// present; its absence is not an error — env vars and flags still work)
// and returns the parsed defaults.
func LoadDefaults() Defaults {
	_ = godotenv.Load()

	d := Defaults{Alpha: 0.05}
	if v := os.Getenv("ANYTIME_ALPHA"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			d.Alpha = parsed
		}
	}
	if v := os.Getenv("ANYTIME_VERBOSE"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			d.Verbose = parsed
		}
	}
	return d
}
