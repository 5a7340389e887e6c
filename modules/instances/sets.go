// Package instances names the published parameter sets and exposes them
// behind a type-erased registry working on decimal or hex strings.
package instances

import (
	"sync"
	"time"

	"AlgebraicPermutations/modules/fields"
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
	"github.com/consensys/gnark/logger"
)

// Round numbers of the SHAKE-derived Poseidon and Poseidon2 sets.
const (
	GoldilocksDegree        = 7
	GoldilocksFullRounds    = 8
	GoldilocksPartialRounds = 22

	BN254Degree                 = 5
	BN254FullRounds             = 8
	BN254PoseidonPartialRounds  = 57
	BN254Poseidon2PartialRounds = 56

	RescueGoldilocksRounds = 8
)

// cached builds a parameter set once, logging how long it took.
func cached[P any](name string, build func() (P, error)) func() (P, error) {
	return sync.OnceValues(func() (P, error) {
		start := time.Now()
		p, err := build()
		log := logger.Logger()
		if err != nil {
			log.Error().Err(err).Str("instance", name).Msg("building parameters")
			return p, err
		}
		log.Debug().Str("instance", name).Dur("took", time.Since(start)).Msg("parameters ready")
		return p, nil
	})
}

var (
	PoseidonM31x16 = cached("poseidon-m31x16", poseidon.NewM31x16Params)

	PoseidonGoldilocks8 = cached("poseidon-goldilocks-8", func() (*poseidon.Params[uint64], error) {
		return poseidon.GenerateParams[uint64](fields.NewGoldilocks(), 8, GoldilocksDegree, GoldilocksFullRounds, GoldilocksPartialRounds)
	})
	PoseidonGoldilocks12 = cached("poseidon-goldilocks-12", func() (*poseidon.Params[uint64], error) {
		return poseidon.GenerateParams[uint64](fields.NewGoldilocks(), 12, GoldilocksDegree, GoldilocksFullRounds, GoldilocksPartialRounds)
	})
	PoseidonBN254x3 = cached("poseidon-bn254-3", func() (*poseidon.Params[bnfr.Element], error) {
		return poseidon.GenerateParams[bnfr.Element](fields.NewBN254(), 3, BN254Degree, BN254FullRounds, BN254PoseidonPartialRounds)
	})

	Poseidon2Goldilocks8 = cached("poseidon2-goldilocks-8", func() (*poseidon2.Params[uint64], error) {
		return poseidon2.GenerateParams[uint64](fields.NewGoldilocks(), 8, GoldilocksDegree, GoldilocksFullRounds, GoldilocksPartialRounds)
	})
	Poseidon2Goldilocks12 = cached("poseidon2-goldilocks-12", func() (*poseidon2.Params[uint64], error) {
		return poseidon2.GenerateParams[uint64](fields.NewGoldilocks(), 12, GoldilocksDegree, GoldilocksFullRounds, GoldilocksPartialRounds)
	})
	Poseidon2BN254x3 = cached("poseidon2-bn254-3", func() (*poseidon2.Params[bnfr.Element], error) {
		return poseidon2.GenerateParams[bnfr.Element](fields.NewBN254(), 3, BN254Degree, BN254FullRounds, BN254Poseidon2PartialRounds)
	})

	RescueGoldilocks8 = cached("rescue-goldilocks-8", func() (*rescue.Params[uint64], error) {
		return rescue.GenerateParams[uint64](fields.NewGoldilocks(), 8, GoldilocksDegree, RescueGoldilocksRounds)
	})

	RescuePrimeGoldilocks8  = cached("rescue-prime-goldilocks-8", rescue.NewPrimeGoldilocks8Params)
	RescuePrimeGoldilocks12 = cached("rescue-prime-goldilocks-12", rescue.NewPrimeGoldilocks12Params)

	GriffinBN254    = cached("griffin-bn254-3", griffin.NewBN254Params)
	GriffinBLS12381 = cached("griffin-bls12-381-3", griffin.NewBLS12381Params)

	GriffinGoldilocks8 = cached("griffin-goldilocks-8", func() (*griffin.Params[uint64], error) {
		return griffin.NewGoldilocksParams(8)
	})
	GriffinGoldilocks12 = cached("griffin-goldilocks-12", func() (*griffin.Params[uint64], error) {
		return griffin.NewGoldilocksParams(12)
	})

	Monolith31x16 = cached("monolith-31-16", func() (*monolith.Params[uint32], error) {
		return monolith.NewMonolith31Params(16)
	})
	Monolith31x24 = cached("monolith-31-24", func() (*monolith.Params[uint32], error) {
		return monolith.NewMonolith31Params(24)
	})
	Monolith64x8 = cached("monolith-64-8", func() (*monolith.Params[uint64], error) {
		return monolith.NewMonolith64Params(8)
	})
	Monolith64x12 = cached("monolith-64-12", func() (*monolith.Params[uint64], error) {
		return monolith.NewMonolith64Params(12)
	})

	ReinforcedConcreteEasy   = cached("reinforced-concrete-easy", concrete.NewEasyParams)
	ReinforcedConcreteMedium = cached("reinforced-concrete-medium", concrete.NewMediumParams)
	ReinforcedConcreteHard   = cached("reinforced-concrete-hard", concrete.NewHardParams)

	GrendelBN254x3 = cached("grendel-bn254-3", func() (*grendel.Params[bnfr.Element], error) {
		return grendel.NewBN254Params(3)
	})
	GrendelBN254x5 = cached("grendel-bn254-5", func() (*grendel.Params[bnfr.Element], error) {
		return grendel.NewBN254Params(5)
	})
	GrendelBLS12381x3 = cached("grendel-bls12-381-3", func() (*grendel.Params[blsfr.Element], error) {
		return grendel.NewBLS12381Params(3)
	})

	NeptuneBN254       = cached("neptune-bn254-4", neptune.NewBN254Params)
	NeptuneBLS12381    = cached("neptune-bls12-381-4", neptune.NewBLS12381Params)
	NeptuneGoldilocks8 = cached("neptune-goldilocks-8", func() (*neptune.Params[uint64], error) {
		return neptune.NewGoldilocksParams(8)
	})
	NeptuneGoldilocks12 = cached("neptune-goldilocks-12", func() (*neptune.Params[uint64], error) {
		return neptune.NewGoldilocksParams(12)
	})
)

// FeistelMiMCRounds are the published round counts over 2^64 - 59.
var FeistelMiMCRounds = []int{
	feistel.MiMCEasy1Rounds,
	feistel.MiMCEasy2Rounds,
	feistel.MiMCMediumRounds,
	feistel.MiMCHard1Rounds,
	feistel.MiMCHard2Rounds,
}

// GMiMCBN254Widths are the widths with a registered BN254 GMiMC set.
var GMiMCBN254Widths = []int{3, 4, 5, 8, 12}

var (
	feistelMiMC = map[int]func() (*feistel.MiMCParams[uint64], error){}
	gmimcBN254  = map[int]func() (*feistel.GMiMCParams[bnfr.Element], error){}
)

func init() {
	for _, rounds := range FeistelMiMCRounds {
		rounds := rounds // per-iteration copy for pre-1.22 loop semantics
		feistelMiMC[rounds] = cached(feistelMiMCName(rounds), func() (*feistel.MiMCParams[uint64], error) {
			return feistel.NewMiMCP64Params(rounds)
		})
	}
	for _, t := range GMiMCBN254Widths {
		t := t // per-iteration copy for pre-1.22 loop semantics
		gmimcBN254[t] = cached(gmimcName(t), func() (*feistel.GMiMCParams[bnfr.Element], error) {
			return feistel.GenerateGMiMCParams[bnfr.Element](fields.NewBN254(), t, BN254Degree, feistel.GMiMCBN254Rounds[t])
		})
	}
}

// FeistelMiMC returns the cached set with the given number of rounds, nil
// when there is none.
func FeistelMiMC(rounds int) func() (*feistel.MiMCParams[uint64], error) {
	return feistelMiMC[rounds]
}

// GMiMCBN254 returns the cached BN254 set of width t, nil when there is
// none.
func GMiMCBN254(t int) func() (*feistel.GMiMCParams[bnfr.Element], error) {
	return gmimcBN254[t]
}
