package refdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/solvate/rxnpath/chem"
)

var (
	// ErrBadTable indicates malformed table input.
	ErrBadTable = errors.New("refdata: malformed reference table")
	// ErrNoReference indicates the formula has no tabulated data.
	ErrNoReference = errors.New("refdata: no reference data for formula")
	// ErrOutOfRange indicates the requested temperature lies outside
	// the tabulated span for the formula.
	ErrOutOfRange = errors.New("refdata: temperature outside tabulated range")
)

// tableRow holds one compound's tabulated energies, sorted by temperature.
type tableRow struct {
	temps    []float64
	energies []float64
}

// Table is an immutable set of tabulated Gibbs formation energies
// (eV per reduced formula unit) keyed by canonical reduced formula.
// Construct via LoadTable; the zero value is an empty table.
type Table struct {
	rows map[string]tableRow
}

// LoadTable parses a JSON reference table from r. Formula keys are
// canonicalized through chem.Parse; temperature keys must be numeric.
func LoadTable(r io.Reader) (*Table, error) {
	var raw map[string]map[string]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}

	t := &Table{rows: make(map[string]tableRow, len(raw))}
	for formula, points := range raw {
		comp, err := chem.Parse(formula)
		if err != nil {
			return nil, fmt.Errorf("%w: formula %q: %v", ErrBadTable, formula, err)
		}
		if len(points) == 0 {
			return nil, fmt.Errorf("%w: formula %q has no data points", ErrBadTable, formula)
		}

		type point struct{ temp, energy float64 }
		pts := make([]point, 0, len(points))
		for tempStr, energy := range points {
			temp, err := strconv.ParseFloat(tempStr, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: temperature %q for %q", ErrBadTable, tempStr, formula)
			}
			pts = append(pts, point{temp: temp, energy: energy})
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].temp < pts[j].temp })

		row := tableRow{
			temps:    make([]float64, 0, len(pts)),
			energies: make([]float64, 0, len(pts)),
		}
		for _, p := range pts {
			row.temps = append(row.temps, p.temp)
			row.energies = append(row.energies, p.energy)
		}
		t.rows[comp.ReducedFormula()] = row
	}
	return t, nil
}

// Has reports whether the formula has tabulated data.
func (t *Table) Has(formula string) bool {
	if t == nil || t.rows == nil {
		return false
	}
	comp, err := chem.Parse(formula)
	if err != nil {
		return false
	}
	_, ok := t.rows[comp.ReducedFormula()]
	return ok
}

// Formulas returns the canonical formulas present, sorted.
func (t *Table) Formulas() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.rows))
	for f := range t.rows {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Energy returns the Gibbs formation energy (eV per reduced formula
// unit) of the composition at temperature, linearly interpolating
// between the two nearest tabulated points.
func (t *Table) Energy(c chem.Composition, temperature float64) (float64, error) {
	if t == nil || t.rows == nil {
		return 0, fmt.Errorf("%w: %s", ErrNoReference, c.ReducedFormula())
	}
	row, ok := t.rows[c.ReducedFormula()]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoReference, c.ReducedFormula())
	}
	n := len(row.temps)
	if temperature < row.temps[0] || temperature > row.temps[n-1] {
		return 0, fmt.Errorf("%w: %g K for %s (tabulated %g..%g K)",
			ErrOutOfRange, temperature, c.ReducedFormula(), row.temps[0], row.temps[n-1])
	}

	i := sort.SearchFloat64s(row.temps, temperature)
	if i < n && row.temps[i] == temperature {
		return row.energies[i], nil
	}
	lo, hi := i-1, i
	frac := (temperature - row.temps[lo]) / (row.temps[hi] - row.temps[lo])
	return row.energies[lo] + frac*(row.energies[hi]-row.energies[lo]), nil
}
