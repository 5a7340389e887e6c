package params

import (
	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/linear"
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

func encodeRows[E comparable](f fields.Field[E], rows [][]E) [][]string {
	res := make([][]string, len(rows))
	for i, row := range rows {
		res[i] = fields.FormatElements(f, row)
	}
	return res
}

func encodeColumn[E comparable](f fields.Field[E], xs []E) [][]string {
	res := make([][]string, len(xs))
	for i, x := range xs {
		res[i] = []string{fields.FormatElement(f, x)}
	}
	return res
}

func ExportPoseidon[E comparable](p *poseidon.Params[E]) *Table {
	return &Table{
		Family:         Poseidon,
		Field:          p.Field.Enum().String(),
		T:              p.T,
		D:              p.D,
		RoundsF:        p.RoundsFBeginning + p.RoundsFEnd,
		RoundsP:        p.RoundsP,
		Order:          p.Order.String(),
		RoundConstants: encodeRows(p.Field, p.RC),
		MDS:            encodeRows(p.Field, p.MDS),
	}
}

func ExportPoseidon2[E comparable](p *poseidon2.Params[E]) *Table {
	var diag []string
	if len(p.MatInternalDiagM1) > 0 {
		diag = fields.FormatElements(p.Field, p.MatInternalDiagM1)
	}
	return &Table{
		Family:           Poseidon2,
		Field:            p.Field.Enum().String(),
		T:                p.T,
		D:                p.D,
		RoundsF:          p.RoundsFBeginning + p.RoundsFEnd,
		RoundsP:          p.RoundsP,
		RoundConstants:   encodeRows(p.Field, p.RC),
		InternalDiagonal: diag,
	}
}

// ExportRescue writes a Rescue table, or a Rescue-Prime one when prime is
// set. The two share their parameters and differ in the number of constant
// rows.
func ExportRescue[E comparable](p *rescue.Params[E], prime bool) *Table {
	family := Rescue
	if prime {
		family = RescuePrime
	}
	return &Table{
		Family:         family,
		Field:          p.Field.Enum().String(),
		T:              p.T,
		D:              p.D,
		Rounds:         p.Rounds,
		RoundConstants: encodeRows(p.Field, p.RC),
		MDS:            encodeRows(p.Field, p.MDS),
	}
}

func ExportFeistelMiMC[E comparable](p *feistel.MiMCParams[E]) *Table {
	return &Table{
		Family:         FeistelMiMC,
		Field:          p.Field.Enum().String(),
		T:              2,
		D:              p.D,
		Rounds:         p.Rounds,
		RoundConstants: encodeColumn(p.Field, p.RC),
	}
}

func ExportGMiMC[E comparable](p *feistel.GMiMCParams[E]) *Table {
	return &Table{
		Family:         GMiMC,
		Field:          p.Field.Enum().String(),
		T:              p.T,
		D:              p.D,
		Rounds:         p.Rounds,
		RoundConstants: encodeColumn(p.Field, p.RC),
	}
}

func ExportGriffin[E comparable](p *griffin.Params[E]) *Table {
	alphaBeta := make([][]string, len(p.AlphaBeta))
	for i, ab := range p.AlphaBeta {
		alphaBeta[i] = fields.FormatElements(p.Field, ab[:])
	}
	return &Table{
		Family:         Griffin,
		Field:          p.Field.Enum().String(),
		T:              p.T,
		D:              p.D,
		Rounds:         p.Rounds,
		RoundConstants: encodeRows(p.Field, p.RC),
		AlphaBeta:      alphaBeta,
	}
}

// ExportMonolith stores the concrete layer as its dense matrix. The table
// carries no degree.
func ExportMonolith[E comparable](p *monolith.Params[E]) *Table {
	return &Table{
		Family:         Monolith,
		Field:          p.Field.Enum().String(),
		T:              p.T,
		Rounds:         monolith.Rounds,
		RoundConstants: encodeRows(p.Field, p.RC),
		MDS:            encodeRows(p.Field, linear.AsMatrix(p.Field, p.Concrete())),
	}
}

func ExportReinforcedConcrete[E comparable](p *concrete.Params[E]) *Table {
	betas := make([]uint16, len(p.Betas))
	for i, b := range p.Betas {
		betas[i] = uint16(p.Field.Limbs(b)[0])
	}
	return &Table{
		Family:         ReinforcedConcrete,
		Field:          p.Field.Enum().String(),
		T:              concrete.T,
		D:              p.D,
		Rounds:         concrete.TotalRounds,
		RoundConstants: encodeRows(p.Field, p.RC),
		Radices:        append([]uint16(nil), p.Si...),
		Lookup:         p.V,
		Alphas:         append([]uint16(nil), p.Alphas[:]...),
		Betas:          betas,
	}
}

// ExportGrendel leaves out the non-residue, which follows from the field.
func ExportGrendel[E comparable](p *grendel.Params[E]) *Table {
	return &Table{
		Family:         Grendel,
		Field:          p.Field.Enum().String(),
		T:              p.T,
		D:              p.D,
		Rounds:         p.Rounds,
		RoundConstants: encodeRows(p.Field, p.RC),
		MDS:            encodeRows(p.Field, p.MDS),
	}
}

func ExportNeptune[E comparable](p *neptune.Params[E]) *Table {
	return &Table{
		Family:           Neptune,
		Field:            p.Field.Enum().String(),
		T:                p.T,
		D:                p.D,
		RoundsF:          p.RoundsFBeginning + p.RoundsFEnd,
		RoundsP:          p.RoundsP,
		RoundConstants:   encodeRows(p.Field, p.RC),
		MDS:              encodeRows(p.Field, p.MDS),
		InternalDiagonal: fields.FormatElements(p.Field, p.MatInternalDiagM1),
		Gamma:            fields.FormatElement(p.Field, p.Gamma),
	}
}
