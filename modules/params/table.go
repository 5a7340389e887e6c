// Package params reads and writes permutation parameter tables as JSON.
// Field elements are stored as 0x-prefixed hex strings, round constants as
// one sequence per round in round order.
package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"AlgebraicPermutations/modules/fields"
)

// ErrInvalidTable is wrapped by every Validate failure.
var ErrInvalidTable = errors.New("invalid parameter table")

// Family names a permutation construction in a table.
type Family string

const (
	Poseidon           Family = "poseidon"
	Poseidon2          Family = "poseidon2"
	Rescue             Family = "rescue"
	RescuePrime        Family = "rescue-prime"
	FeistelMiMC        Family = "feistel-mimc"
	GMiMC              Family = "gmimc"
	Griffin            Family = "griffin"
	Monolith           Family = "monolith"
	ReinforcedConcrete Family = "reinforced-concrete"
	Grendel            Family = "grendel"
	Neptune            Family = "neptune"
)

// Families lists the supported families.
func Families() []Family {
	return []Family{Poseidon, Poseidon2, Rescue, RescuePrime, FeistelMiMC, GMiMC, Griffin, Monolith, ReinforcedConcrete, Grendel, Neptune}
}

// Table is the serialized form of one instance. Which of the optional
// fields are present depends on the family.
type Table struct {
	Family Family `json:"family"`
	Field  string `json:"field"`
	T      int    `json:"t"`
	D      uint64 `json:"d,omitempty"`

	// RoundsF and RoundsP are the full and partial rounds of the Poseidon
	// families and Neptune, Rounds the round count of every other family.
	RoundsF int    `json:"rounds_f,omitempty"`
	RoundsP int    `json:"rounds_p,omitempty"`
	Rounds  int    `json:"rounds,omitempty"`
	Order   string `json:"order,omitempty"`

	RoundConstants [][]string `json:"round_constants"`
	MDS            [][]string `json:"mds,omitempty"`

	// poseidon2 and neptune
	InternalDiagonal []string `json:"internal_diagonal_m1,omitempty"`
	// neptune
	Gamma string `json:"gamma,omitempty"`
	// griffin
	AlphaBeta [][]string `json:"alpha_beta,omitempty"`
	// reinforced concrete
	Radices []uint16 `json:"radices,omitempty"`
	Lookup  uint16   `json:"lookup_modulus,omitempty"`
	Alphas  []uint16 `json:"alphas,omitempty"`
	Betas   []uint16 `json:"betas,omitempty"`
}

// FieldEnum resolves the field name of the table.
func (t *Table) FieldEnum() (fields.FieldEnum, error) {
	enum, err := fields.ParseFieldEnum(t.Field)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return enum, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidTable)
}

// Validate checks the shape of the table: known family and field, and
// sequence lengths matching the width and round counts. It does not parse
// the elements, see Decode.
func (t *Table) Validate() error {
	if t == nil {
		return invalid("nil table")
	}
	if _, err := t.FieldEnum(); err != nil {
		return err
	}
	if t.T < 2 {
		return invalid("width %d", t.T)
	}
	switch {
	case t.Family == Monolith:
	case t.Family == Grendel && t.D < 2:
		return invalid("s-box degree %d", t.D)
	case t.Family != Grendel && t.D < 3:
		return invalid("s-box degree %d", t.D)
	}

	switch t.Family {
	case Poseidon, Poseidon2:
		if t.RoundsF < 2 || t.RoundsF%2 != 0 || t.RoundsP < 0 {
			return invalid("rounds RF=%d RP=%d", t.RoundsF, t.RoundsP)
		}
		if err := checkRows("round_constants", t.RoundConstants, t.RoundsF+t.RoundsP, t.T); err != nil {
			return err
		}
		if t.Family == Poseidon {
			if t.Order != "" && t.Order != "sbox-first" && t.Order != "linear-first" {
				return invalid("round order %q", t.Order)
			}
			return checkRows("mds", t.MDS, t.T, t.T)
		}
		// widths 2 and 3 use fixed internal matrices
		want := t.T
		if t.T <= 3 {
			want = 0
		}
		if len(t.InternalDiagonal) != want {
			return invalid("internal_diagonal_m1 of length %d, want %d", len(t.InternalDiagonal), want)
		}
		return nil

	case Rescue, RescuePrime:
		if t.Rounds < 1 {
			return invalid("%d rounds", t.Rounds)
		}
		rows := 2 * t.Rounds
		if t.Family == Rescue {
			rows++
		}
		if err := checkRows("round_constants", t.RoundConstants, rows, t.T); err != nil {
			return err
		}
		return checkRows("mds", t.MDS, t.T, t.T)

	case FeistelMiMC, GMiMC:
		if t.Family == FeistelMiMC && t.T != 2 {
			return invalid("feistel mimc of width %d", t.T)
		}
		if t.Rounds < 1 {
			return invalid("%d rounds", t.Rounds)
		}
		return checkRows("round_constants", t.RoundConstants, t.Rounds, 1)

	case Griffin:
		if t.Rounds < 1 {
			return invalid("%d rounds", t.Rounds)
		}
		if err := checkRows("round_constants", t.RoundConstants, t.Rounds-1, t.T); err != nil {
			return err
		}
		return checkRows("alpha_beta", t.AlphaBeta, t.T-2, 2)

	case Monolith:
		if t.Rounds < 1 {
			return invalid("%d rounds", t.Rounds)
		}
		if err := checkRows("round_constants", t.RoundConstants, t.Rounds-1, t.T); err != nil {
			return err
		}
		return checkRows("mds", t.MDS, t.T, t.T)

	case Grendel:
		if t.Rounds < 1 {
			return invalid("%d rounds", t.Rounds)
		}
		if err := checkRows("round_constants", t.RoundConstants, t.Rounds, t.T); err != nil {
			return err
		}
		return checkRows("mds", t.MDS, t.T, t.T)

	case Neptune:
		if t.T%2 != 0 {
			return invalid("neptune of odd width %d", t.T)
		}
		if t.RoundsF < 2 || t.RoundsF%2 != 0 || t.RoundsP < 0 {
			return invalid("rounds RF=%d RP=%d", t.RoundsF, t.RoundsP)
		}
		if err := checkRows("round_constants", t.RoundConstants, t.RoundsF+t.RoundsP, t.T); err != nil {
			return err
		}
		if len(t.InternalDiagonal) != t.T {
			return invalid("internal_diagonal_m1 of length %d, want %d", len(t.InternalDiagonal), t.T)
		}
		if t.Gamma == "" {
			return invalid("missing gamma")
		}
		return checkRows("mds", t.MDS, t.T, t.T)

	case ReinforcedConcrete:
		if t.T != 3 {
			return invalid("reinforced concrete of width %d", t.T)
		}
		if len(t.Radices) == 0 || t.Lookup < 2 {
			return invalid("radix sequence of length %d with lookup modulus %d", len(t.Radices), t.Lookup)
		}
		if len(t.Alphas) != 2 || len(t.Betas) != 2 {
			return invalid("%d alphas and %d betas", len(t.Alphas), len(t.Betas))
		}
		if t.Rounds < 1 {
			return invalid("%d rounds", t.Rounds)
		}
		return checkRows("round_constants", t.RoundConstants, t.Rounds+1, t.T)

	default:
		return invalid("unknown family %q", t.Family)
	}
}

func checkRows(name string, rows [][]string, n, width int) error {
	if len(rows) != n {
		return invalid("%s has %d rows, want %d", name, len(rows), n)
	}
	for i, row := range rows {
		if len(row) != width {
			return invalid("%s[%d] has %d elements, want %d", name, i, len(row), width)
		}
	}
	return nil
}

// LoadParams decodes a table from JSON and validates it.
func LoadParams(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadParamsFromFile opens the given path and loads the table in it.
func LoadParamsFromFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open params file: %w", err)
	}
	defer f.Close()
	return LoadParams(f)
}

// Write encodes the table as indented JSON.
func (t *Table) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// WriteFile writes the table to path, replacing any existing file.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create params file: %w", err)
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write params file: %w", err)
	}
	return f.Close()
}
