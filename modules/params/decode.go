package params

import (
	"fmt"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
	"AlgebraicPermutations/modules/permutation"
	"AlgebraicPermutations/modules/permutation/concrete"
	"AlgebraicPermutations/modules/permutation/feistel"
	"AlgebraicPermutations/modules/permutation/grendel"
	"AlgebraicPermutations/modules/permutation/griffin"
	"AlgebraicPermutations/modules/permutation/monolith"
	"AlgebraicPermutations/modules/permutation/neptune"
	"AlgebraicPermutations/modules/permutation/poseidon"
	"AlgebraicPermutations/modules/permutation/poseidon2"
	"AlgebraicPermutations/modules/permutation/rescue"
)

// Decode parses a sequence of elements. Values outside [0, p) fail with
// fields.ErrNotInField.
func Decode[E comparable](f fields.Field[E], ss []string) ([]E, error) {
	return fields.ParseElements(f, ss)
}

// DecodeRows parses a sequence of rows, e.g. round constants or a matrix.
func DecodeRows[E comparable](f fields.Field[E], rows [][]string) ([][]E, error) {
	res := make([][]E, len(rows))
	for i, row := range rows {
		decoded, err := Decode(f, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		res[i] = decoded
	}
	return res, nil
}

func (t *Table) checkField(enum fields.FieldEnum) error {
	if err := t.Validate(); err != nil {
		return err
	}
	own, _ := t.FieldEnum()
	if own != enum {
		return invalid("table over %s decoded over %s", own, enum)
	}
	return nil
}

// decoded holds the element sequences shared by most families.
type decoded[E comparable] struct {
	rc  [][]E
	mds linear.Matrix[E]
}

func decodeTable[E comparable](f fields.Field[E], t *Table) (*decoded[E], error) {
	if err := t.checkField(f.Enum()); err != nil {
		return nil, err
	}
	rc, err := DecodeRows(f, t.RoundConstants)
	if err != nil {
		return nil, fmt.Errorf("round_constants: %w", err)
	}
	d := &decoded[E]{rc: rc}
	if t.MDS != nil {
		mds, err := DecodeRows(f, t.MDS)
		if err != nil {
			return nil, fmt.Errorf("mds: %w", err)
		}
		d.mds = linear.Matrix[E](mds)
	}
	return d, nil
}

// column flattens the one-element rows of the Feistel families.
func column[E comparable](rows [][]E) []E {
	res := make([]E, len(rows))
	for i, row := range rows {
		res[i] = row[0]
	}
	return res
}

// Build decodes a table over f and constructs the engine it describes.
func Build[E comparable](f fields.Field[E], t *Table, opts ...permutation.Option[E]) (permutation.Permutation[E], error) {
	d, err := decodeTable(f, t)
	if err != nil {
		return nil, err
	}

	var perm permutation.Permutation[E]
	var engineErr error
	switch t.Family {
	case Poseidon:
		order := poseidon.SBoxFirst
		if t.Order == poseidon.LinearFirst.String() {
			order = poseidon.LinearFirst
		}
		p, err := poseidon.NewParamsWithOrder(f, t.T, t.D, t.RoundsF, t.RoundsP, d.mds, d.rc, order)
		if err != nil {
			return nil, err
		}
		perm, engineErr = poseidon.New(p, opts...)

	case Poseidon2:
		var diag []E
		if len(t.InternalDiagonal) > 0 {
			diag, err = Decode(f, t.InternalDiagonal)
			if err != nil {
				return nil, fmt.Errorf("internal_diagonal_m1: %w", err)
			}
		}
		p, err := poseidon2.NewParams(f, t.T, t.D, t.RoundsF, t.RoundsP, diag, d.rc)
		if err != nil {
			return nil, err
		}
		perm, engineErr = poseidon2.New(p, opts...)

	case Rescue, RescuePrime:
		p, err := rescue.NewParams(f, t.T, t.D, t.Rounds, d.mds, d.rc)
		if err != nil {
			return nil, err
		}
		if t.Family == Rescue {
			perm, engineErr = rescue.New(p, opts...)
		} else {
			perm, engineErr = rescue.NewPrime(p, opts...)
		}

	case FeistelMiMC:
		p, err := feistel.NewMiMCParams(f, t.D, column(d.rc))
		if err != nil {
			return nil, err
		}
		perm, engineErr = feistel.NewMiMC(p, opts...)

	case GMiMC:
		p, err := feistel.NewGMiMCParams(f, t.T, t.D, column(d.rc))
		if err != nil {
			return nil, err
		}
		perm, engineErr = feistel.NewGMiMC(p, opts...)

	case Griffin:
		rows, err := DecodeRows(f, t.AlphaBeta)
		if err != nil {
			return nil, fmt.Errorf("alpha_beta: %w", err)
		}
		alphaBeta := make([][2]E, len(rows))
		for i, row := range rows {
			alphaBeta[i] = [2]E{row[0], row[1]}
		}
		p, err := griffin.NewParams(f, t.T, t.D, t.Rounds, d.rc, alphaBeta)
		if err != nil {
			return nil, err
		}
		perm, engineErr = griffin.New(p, opts...)

	case Monolith:
		if t.Rounds != monolith.Rounds {
			return nil, invalid("monolith with %d rounds", t.Rounds)
		}
		layer, err := linear.NewDense(f, d.mds)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}
		p, err := monolith.NewParams(f, t.T, layer, d.rc)
		if err != nil {
			return nil, err
		}
		perm, engineErr = monolith.New(p, opts...)

	case Grendel:
		p, err := grendel.NewParams(f, t.T, t.D, t.Rounds, d.mds, d.rc)
		if err != nil {
			return nil, err
		}
		perm, engineErr = grendel.New(p, opts...)

	case Neptune:
		diag, err := Decode(f, t.InternalDiagonal)
		if err != nil {
			return nil, fmt.Errorf("internal_diagonal_m1: %w", err)
		}
		gamma, err := fields.ParseElement(f, t.Gamma)
		if err != nil {
			return nil, fmt.Errorf("gamma: %w", err)
		}
		p, err := neptune.NewParams(f, t.T, t.D, t.RoundsF, t.RoundsP, d.mds, diag, gamma, d.rc)
		if err != nil {
			return nil, err
		}
		perm, engineErr = neptune.New(p, opts...)

	case ReinforcedConcrete:
		if t.Rounds != concrete.TotalRounds {
			return nil, invalid("reinforced concrete with %d rounds", t.Rounds)
		}
		ab := [4]uint16{t.Alphas[0], t.Alphas[1], t.Betas[0], t.Betas[1]}
		p, err := concrete.NewParams(f, t.D, t.Radices, t.Lookup, ab, d.rc)
		if err != nil {
			return nil, err
		}
		perm, engineErr = concrete.New(p, opts...)

	default:
		return nil, invalid("unknown family %q", t.Family)
	}
	if engineErr != nil {
		return nil, engineErr
	}
	return perm, nil
}
