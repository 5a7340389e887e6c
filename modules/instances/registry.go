package instances

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"AlgebraicPermutations/modules/fields"
	"AlgebraicPermutations/modules/merkle"
	"AlgebraicPermutations/modules/params"
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

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrUnknownInstance is returned by Lookup for names not in the registry.
var ErrUnknownInstance = errors.New("unknown instance")

// Instance is a parameter set with its engine behind a string interface.
// Elements are read in decimal or 0x-prefixed hex and printed in hex.
type Instance interface {
	Name() string
	Family() params.Family
	Field() fields.FieldEnum
	Width() int
	Permute(input []string) ([]string, error)
	// Trace permutes like Permute and reports the state after every round.
	Trace(input []string, tracer func(round int, state []string)) ([]string, error)
	// Merkle accumulates the leaves with the default arity and, when prove
	// is not empty, builds and checks the witness of that leaf.
	Merkle(leaves []string, prove string) (*MerkleResult, error)
	Export() (*params.Table, error)
}

// MerkleLevel is one level of a printed witness.
type MerkleLevel struct {
	Siblings []string `json:"siblings"`
	Position int      `json:"position"`
}

type MerkleResult struct {
	Root     string        `json:"root"`
	Arity    int           `json:"arity"`
	Witness  []MerkleLevel `json:"witness,omitempty"`
	Verified bool          `json:"verified"`
}

type engineFunc[E comparable, P any] func(P, ...permutation.Option[E]) (permutation.Permutation[E], error)

// erase adapts a family constructor to return the Permutation interface.
func erase[E comparable, P any, R permutation.Permutation[E]](newEngine func(P, ...permutation.Option[E]) (R, error)) engineFunc[E, P] {
	return func(p P, opts ...permutation.Option[E]) (permutation.Permutation[E], error) {
		r, err := newEngine(p, opts...)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

type instance[E comparable, P any] struct {
	name   string
	family params.Family
	field  fields.Field[E]
	width  int
	load   func() (P, error)
	engine engineFunc[E, P]
	export func(P) *params.Table
}

func newInstance[E comparable, P any](name string, family params.Family, f fields.Field[E], width int, load func() (P, error), engine engineFunc[E, P], export func(P) *params.Table) *instance[E, P] {
	return &instance[E, P]{name: name, family: family, field: f, width: width, load: load, engine: engine, export: export}
}

func (in *instance[E, P]) Name() string { return in.name }

func (in *instance[E, P]) Family() params.Family { return in.family }

func (in *instance[E, P]) Field() fields.FieldEnum { return in.field.Enum() }

func (in *instance[E, P]) Width() int { return in.width }

// Permutation builds the typed engine of the instance.
func (in *instance[E, P]) Permutation(opts ...permutation.Option[E]) (permutation.Permutation[E], error) {
	p, err := in.load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.name, err)
	}
	return in.engine(p, opts...)
}

func (in *instance[E, P]) parseState(input []string) ([]E, error) {
	if len(input) != in.width {
		return nil, fmt.Errorf("%s takes %d elements, got %d: %w", in.name, in.width, len(input), permutation.ErrInvalidConfiguration)
	}
	return fields.ParseElements(in.field, input)
}

func (in *instance[E, P]) Permute(input []string) ([]string, error) {
	return in.Trace(input, nil)
}

func (in *instance[E, P]) Trace(input []string, tracer func(round int, state []string)) ([]string, error) {
	state, err := in.parseState(input)
	if err != nil {
		return nil, err
	}
	var opts []permutation.Option[E]
	if tracer != nil {
		opts = append(opts, permutation.WithTracer(func(round int, state []E) {
			tracer(round, fields.FormatElements(in.field, state))
		}))
	}
	perm, err := in.Permutation(opts...)
	if err != nil {
		return nil, err
	}
	return fields.FormatElements(in.field, perm.Permutation(state)), nil
}

func (in *instance[E, P]) Merkle(leaves []string, prove string) (*MerkleResult, error) {
	perm, err := in.Permutation()
	if err != nil {
		return nil, err
	}
	acc, err := merkle.NewAccumulator(perm)
	if err != nil {
		return nil, err
	}
	set, err := fields.ParseElements(in.field, leaves)
	if err != nil {
		return nil, fmt.Errorf("leaves: %w", err)
	}
	root, err := acc.Accumulate(set)
	if err != nil {
		return nil, err
	}

	res := &MerkleResult{Root: fields.FormatElement(in.field, root), Arity: acc.Arity()}
	if prove == "" {
		return res, nil
	}
	leaf, err := fields.ParseElement(in.field, prove)
	if err != nil {
		return nil, fmt.Errorf("leaf: %w", err)
	}
	witness, err := acc.CreateWitness(leaf)
	if err != nil {
		return nil, err
	}
	for _, level := range witness {
		res.Witness = append(res.Witness, MerkleLevel{
			Siblings: fields.FormatElements(in.field, level.Digests),
			Position: level.Position,
		})
	}
	res.Verified = acc.Verify(leaf, witness)
	return res, nil
}

func (in *instance[E, P]) Export() (*params.Table, error) {
	p, err := in.load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.name, err)
	}
	return in.export(p), nil
}

func feistelMiMCName(rounds int) string { return fmt.Sprintf("feistel-mimc-p64-%d", rounds) }

func gmimcName(t int) string { return fmt.Sprintf("gmimc-bn254-%d", t) }

var registry = sync.OnceValue(func() map[string]Instance {
	goldilocks := fields.NewGoldilocks()
	m31 := fields.NewMersenne31()
	bn := fields.NewBN254()
	bls := fields.NewBLS12381()

	exportRescue := func(p *rescue.Params[uint64]) *params.Table { return params.ExportRescue(p, false) }
	exportRescuePrime := func(p *rescue.Params[uint64]) *params.Table { return params.ExportRescue(p, true) }

	all := []Instance{
		newInstance[uint32]("poseidon-m31x16", params.Poseidon, m31, 16, PoseidonM31x16, erase[uint32](poseidon.New[uint32]), params.ExportPoseidon[uint32]),
		newInstance[uint64]("poseidon-goldilocks-8", params.Poseidon, goldilocks, 8, PoseidonGoldilocks8, erase[uint64](poseidon.New[uint64]), params.ExportPoseidon[uint64]),
		newInstance[uint64]("poseidon-goldilocks-12", params.Poseidon, goldilocks, 12, PoseidonGoldilocks12, erase[uint64](poseidon.New[uint64]), params.ExportPoseidon[uint64]),
		newInstance[bnfr.Element]("poseidon-bn254-3", params.Poseidon, bn, 3, PoseidonBN254x3, erase[bnfr.Element](poseidon.New[bnfr.Element]), params.ExportPoseidon[bnfr.Element]),

		newInstance[uint64]("poseidon2-goldilocks-8", params.Poseidon2, goldilocks, 8, Poseidon2Goldilocks8, erase[uint64](poseidon2.New[uint64]), params.ExportPoseidon2[uint64]),
		newInstance[uint64]("poseidon2-goldilocks-12", params.Poseidon2, goldilocks, 12, Poseidon2Goldilocks12, erase[uint64](poseidon2.New[uint64]), params.ExportPoseidon2[uint64]),
		newInstance[bnfr.Element]("poseidon2-bn254-3", params.Poseidon2, bn, 3, Poseidon2BN254x3, erase[bnfr.Element](poseidon2.New[bnfr.Element]), params.ExportPoseidon2[bnfr.Element]),

		newInstance[uint64]("rescue-goldilocks-8", params.Rescue, goldilocks, 8, RescueGoldilocks8, erase[uint64](rescue.New[uint64]), exportRescue),
		newInstance[uint64]("rescue-prime-goldilocks-8", params.RescuePrime, goldilocks, 8, RescuePrimeGoldilocks8, erase[uint64](rescue.NewPrime[uint64]), exportRescuePrime),
		newInstance[uint64]("rescue-prime-goldilocks-12", params.RescuePrime, goldilocks, 12, RescuePrimeGoldilocks12, erase[uint64](rescue.NewPrime[uint64]), exportRescuePrime),

		newInstance[bnfr.Element]("griffin-bn254-3", params.Griffin, bn, 3, GriffinBN254, erase[bnfr.Element](griffin.New[bnfr.Element]), params.ExportGriffin[bnfr.Element]),
		newInstance[blsfr.Element]("griffin-bls12-381-3", params.Griffin, bls, 3, GriffinBLS12381, erase[blsfr.Element](griffin.New[blsfr.Element]), params.ExportGriffin[blsfr.Element]),
		newInstance[uint64]("griffin-goldilocks-8", params.Griffin, goldilocks, 8, GriffinGoldilocks8, erase[uint64](griffin.New[uint64]), params.ExportGriffin[uint64]),
		newInstance[uint64]("griffin-goldilocks-12", params.Griffin, goldilocks, 12, GriffinGoldilocks12, erase[uint64](griffin.New[uint64]), params.ExportGriffin[uint64]),

		newInstance[uint32]("monolith-31-16", params.Monolith, m31, 16, Monolith31x16, erase[uint32](monolith.New[uint32]), params.ExportMonolith[uint32]),
		newInstance[uint32]("monolith-31-24", params.Monolith, m31, 24, Monolith31x24, erase[uint32](monolith.New[uint32]), params.ExportMonolith[uint32]),
		newInstance[uint64]("monolith-64-8", params.Monolith, goldilocks, 8, Monolith64x8, erase[uint64](monolith.New[uint64]), params.ExportMonolith[uint64]),
		newInstance[uint64]("monolith-64-12", params.Monolith, goldilocks, 12, Monolith64x12, erase[uint64](monolith.New[uint64]), params.ExportMonolith[uint64]),

		newInstance[uint64]("reinforced-concrete-easy", params.ReinforcedConcrete, fields.NewCrandall(fields.P48), concrete.T, ReinforcedConcreteEasy, erase[uint64](concrete.New[uint64]), params.ExportReinforcedConcrete[uint64]),
		newInstance[uint64]("reinforced-concrete-medium", params.ReinforcedConcrete, fields.NewCrandall(fields.P56), concrete.T, ReinforcedConcreteMedium, erase[uint64](concrete.New[uint64]), params.ExportReinforcedConcrete[uint64]),
		newInstance[uint64]("reinforced-concrete-hard", params.ReinforcedConcrete, fields.NewCrandall(fields.P64), concrete.T, ReinforcedConcreteHard, erase[uint64](concrete.New[uint64]), params.ExportReinforcedConcrete[uint64]),

		newInstance[bnfr.Element]("grendel-bn254-3", params.Grendel, bn, 3, GrendelBN254x3, erase[bnfr.Element](grendel.New[bnfr.Element]), params.ExportGrendel[bnfr.Element]),
		newInstance[bnfr.Element]("grendel-bn254-5", params.Grendel, bn, 5, GrendelBN254x5, erase[bnfr.Element](grendel.New[bnfr.Element]), params.ExportGrendel[bnfr.Element]),
		newInstance[blsfr.Element]("grendel-bls12-381-3", params.Grendel, bls, 3, GrendelBLS12381x3, erase[blsfr.Element](grendel.New[blsfr.Element]), params.ExportGrendel[blsfr.Element]),

		newInstance[bnfr.Element]("neptune-bn254-4", params.Neptune, bn, 4, NeptuneBN254, erase[bnfr.Element](neptune.New[bnfr.Element]), params.ExportNeptune[bnfr.Element]),
		newInstance[blsfr.Element]("neptune-bls12-381-4", params.Neptune, bls, 4, NeptuneBLS12381, erase[blsfr.Element](neptune.New[blsfr.Element]), params.ExportNeptune[blsfr.Element]),
		newInstance[uint64]("neptune-goldilocks-8", params.Neptune, goldilocks, 8, NeptuneGoldilocks8, erase[uint64](neptune.New[uint64]), params.ExportNeptune[uint64]),
		newInstance[uint64]("neptune-goldilocks-12", params.Neptune, goldilocks, 12, NeptuneGoldilocks12, erase[uint64](neptune.New[uint64]), params.ExportNeptune[uint64]),
	}

	p64 := fields.NewCrandall(fields.P64)
	for _, rounds := range FeistelMiMCRounds {
		all = append(all, newInstance[uint64](feistelMiMCName(rounds), params.FeistelMiMC, p64, 2, FeistelMiMC(rounds), erase[uint64](feistel.NewMiMC[uint64]), params.ExportFeistelMiMC[uint64]))
	}
	for _, t := range GMiMCBN254Widths {
		all = append(all, newInstance[bnfr.Element](gmimcName(t), params.GMiMC, bn, t, GMiMCBN254(t), erase[bnfr.Element](feistel.NewGMiMC[bnfr.Element]), params.ExportGMiMC[bnfr.Element]))
	}

	byName := make(map[string]Instance, len(all))
	for _, inst := range all {
		byName[inst.Name()] = inst
	}
	return byName
})

// Names lists the registered instances in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry()))
	for name := range registry() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered instances ordered by name.
func All() []Instance {
	all := make([]Instance, 0, len(registry()))
	for _, name := range Names() {
		all = append(all, registry()[name])
	}
	return all
}

func Lookup(name string) (Instance, error) {
	inst, ok := registry()[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownInstance)
	}
	return inst, nil
}

// FromTable wraps a loaded parameter table as an Instance. The table is
// decoded and the engine built once, so that an inconsistent table fails
// here.
func FromTable(table *params.Table) (Instance, error) {
	enum, err := table.FieldEnum()
	if err != nil {
		return nil, err
	}
	switch enum {
	case fields.M31:
		return fromTable[uint32](fields.NewMersenne31(), table)
	case fields.BN254:
		return fromTable[bnfr.Element](fields.NewBN254(), table)
	case fields.BLS12381:
		return fromTable[blsfr.Element](fields.NewBLS12381(), table)
	case fields.Goldilocks:
		return fromTable[uint64](fields.NewGoldilocks(), table)
	default:
		return fromTable[uint64](fields.NewCrandall(enum), table)
	}
}

func fromTable[E comparable](f fields.Field[E], table *params.Table) (Instance, error) {
	load := func() (*params.Table, error) { return table, nil }
	build := func(t *params.Table, opts ...permutation.Option[E]) (permutation.Permutation[E], error) {
		return params.Build(f, t, opts...)
	}
	identity := func(t *params.Table) *params.Table { return t }

	inst := newInstance[E](fmt.Sprintf("%s-%s-%d", table.Family, table.Field, table.T), table.Family, f, table.T, load, build, identity)
	if _, err := inst.Permutation(); err != nil {
		return nil, err
	}
	return inst, nil
}
