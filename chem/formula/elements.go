package formula

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// ElectronMass is the rest mass of an electron in Da.
const ElectronMass = 0.00054857990924

// Electron is the agent formula for charging by electron loss or capture.
const Electron = "e"

var (
	ErrUnknownElement = errors.New("formula: unknown element")
	ErrInvalidFormula = errors.New("formula: invalid formula")
)

// Monoisotopic masses of the most abundant isotope, in Da.
var monoisotopic = map[string]float64{
	"H":  1.0078250321,
	"B":  11.0093055,
	"C":  12.0,
	"N":  14.0030740052,
	"O":  15.9949146221,
	"F":  18.9984032,
	"Na": 22.98976967,
	"Mg": 23.9850419,
	"Si": 27.9769265327,
	"P":  30.97376151,
	"S":  31.97207069,
	"Cl": 34.96885271,
	"K":  38.9637069,
	"Ca": 39.9625912,
	"Fe": 55.9349421,
	"Cu": 62.9296011,
	"Zn": 63.9291466,
	"Se": 79.9165218,
	"Br": 78.9183376,
	"I":  126.904468,
}

// ElementMass returns the monoisotopic mass of symbol.
func ElementMass(symbol string) (float64, error) {
	m, ok := monoisotopic[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}
	return m, nil
}

// Elements returns the symbols of the element table in alphabetical order.
func Elements() []string {
	out := make([]string, 0, len(monoisotopic))
	for symbol := range monoisotopic {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}

var (
	formulaPattern = regexp.MustCompile(`^(?:[A-Z][a-z]?\d*)+$`)
	elementPattern = regexp.MustCompile(`([A-Z][a-z]?)(\d*)`)
)

// Mass returns the monoisotopic mass of a plain formula such as "NH4" or
// "C6H12O6". Parentheses and isotope labels are not supported.
func Mass(formula string) (float64, error) {
	if !formulaPattern.MatchString(formula) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormula, formula)
	}

	mass := 0.0
	for _, match := range elementPattern.FindAllStringSubmatch(formula, -1) {
		m, err := ElementMass(match[1])
		if err != nil {
			return 0, err
		}
		count := 1
		if match[2] != "" {
			count, err = strconv.Atoi(match[2])
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidFormula, formula)
			}
		}
		mass += float64(count) * m
	}
	return mass, nil
}

// Delta returns the error of measured against counted in ppm.
func Delta(measured, counted float64) float64 {
	return (measured - counted) / counted * 1e6
}
