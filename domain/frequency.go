package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFrequency is returned when a frequency name is not recognized.
var ErrInvalidFrequency = errors.New("frecuencia inválida")

// Frequency is how often a contribution is made within a year.
type Frequency int

const (
	Daily Frequency = iota + 1
	Weekly
	Biweekly
	Monthly
	Yearly
)

var frequencyNames = map[Frequency]string{
	Daily:    "daily",
	Weekly:   "weekly",
	Biweekly: "biweekly",
	Monthly:  "monthly",
	Yearly:   "yearly",
}

var contributionsPerYear = map[Frequency]int{
	Daily:    365,
	Weekly:   52,
	Biweekly: 24,
	Monthly:  12,
	Yearly:   1,
}

// nombres en español aceptados como alias
var frequencyAliases = map[string]Frequency{
	"diaria":    Daily,
	"semanal":   Weekly,
	"quincenal": Biweekly,
	"mensual":   Monthly,
	"anual":     Yearly,
}

// Frequencies lists every frequency from the most to the least frequent.
func Frequencies() []Frequency {
	return []Frequency{Daily, Weekly, Biweekly, Monthly, Yearly}
}

// ParseFrequency accepts the English name of a frequency, case-insensitive,
// or one of its Spanish labels.
func ParseFrequency(s string) (Frequency, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range frequencyNames {
		if n == name {
			return f, nil
		}
	}
	if f, ok := frequencyAliases[name]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
}

// ContributionsPerYear returns the number of contribution events per year,
// or 0 for an unknown frequency.
func (f Frequency) ContributionsPerYear() int {
	return contributionsPerYear[f]
}

func (f Frequency) Valid() bool {
	_, ok := contributionsPerYear[f]
	return ok
}

func (f Frequency) String() string {
	if n, ok := frequencyNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Frequency(%d)", int(f))
}

// MarshalText encodes the frequency by name.
func (f Frequency) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrequency, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
