package gearsetup

import (
	"github.com/hupe1980/gearsetup/model"
	"github.com/hupe1980/gearsetup/mwis"
)

// WeightFunc scores a piece of equipment. The optimizer maximizes the total
// score of the selected setup. Candidates scoring zero or less are never
// selected; wearing nothing in a slot beats wearing them.
type WeightFunc func(eq model.Equipment) float64

// MaximizePrayerBonus weighs equipment by its prayer bonus.
func MaximizePrayerBonus(eq model.Equipment) float64 {
	return float64(eq.CombatBonuses.PrayerBonus)
}

// MaximizeMeleeStrength weighs equipment by its melee strength bonus.
func MaximizeMeleeStrength(eq model.Equipment) float64 {
	return float64(eq.CombatBonuses.MeleeStrength)
}

// MaximizeSlotCoverage weighs equipment by the number of slots it occupies,
// reducing the optimization to a maximum disjoint set.
func MaximizeSlotCoverage(eq model.Equipment) float64 {
	return float64(len(eq.OccupiedSlots))
}

// Optimal finds the gear setup that maximizes the weight function over the
// candidate equipment. See Optimizer.Find.
func Optimal(candidates []model.Equipment, weight WeightFunc) ([]model.Equipment, error) {
	return NewOptimizer().Find(candidates, weight)
}

// Optimizer computes optimal gear setups.
//
// The optimizer is immutable - each With method returns a new optimizer with
// the updated configuration. The zero configuration is ready to use.
type Optimizer struct {
	logger *Logger
}

// NewOptimizer creates an optimizer with logging disabled.
func NewOptimizer() Optimizer {
	return Optimizer{
		logger: NoopLogger(),
	}
}

// WithLogger returns a new optimizer using the given logger.
// If logger is nil, logging stays disabled.
func (o Optimizer) WithLogger(logger *Logger) Optimizer {
	if logger == nil {
		logger = NoopLogger()
	}
	o.logger = logger
	return o
}

// pick is a candidate surviving the reduction pipeline, with its score
// computed exactly once.
type pick struct {
	eq     model.Equipment
	weight float64
}

// Find returns the set of candidates that maximizes the total weight while
// occupying pairwise-distinct equipment slots.
//
// Candidates are reduced before the independent-set search: non-positive
// scores are dropped, only the best candidate per exact slot-occupancy set
// is kept, and multi-slot candidates that cannot beat their per-slot
// components are pruned. The reduction only removes candidates that provably
// cannot appear in any optimal setup, so the result is weight-maximal over
// the full candidate set. Ties keep the earliest candidate.
func (o Optimizer) Find(candidates []model.Equipment, weight WeightFunc) ([]model.Equipment, error) {
	if weight == nil {
		return nil, ErrNilWeightFunc
	}

	// Best candidate per exact slot-occupancy set.
	best := make(map[string]*pick, len(candidates))
	order := make([]string, 0, len(candidates))

	for _, eq := range candidates {
		w := weight(eq)
		if w <= 0 {
			continue
		}

		key := eq.OccupiedSlots.Key()
		prev, ok := best[key]
		if !ok {
			best[key] = &pick{eq: eq, weight: w}
			order = append(order, key)
			continue
		}
		if w > prev.weight {
			best[key] = &pick{eq: eq, weight: w}
		}
	}

	// Most multi-slot equipment provides no bonus over its per-slot
	// components, so filter it out before the independent-set search.
	considered := make([]*pick, 0, len(order))
	allSingleSlot := true

	for _, key := range order {
		p := best[key]
		slots := p.eq.OccupiedSlots
		if len(slots) >= 2 {
			var sum float64
			for _, slot := range slots {
				if single, ok := best[string(slot)]; ok {
					sum += single.weight
				}
			}
			if p.weight <= sum {
				continue
			}
			allSingleSlot = false
		}
		considered = append(considered, p)
	}

	// 0 or 1 survivors are optimal by construction. If every survivor is a
	// single-slot item they are one-per-slot and therefore conflict-free.
	if len(considered) < 2 || allSingleSlot {
		setup := equipmentOf(considered)
		o.logger.LogFind(len(candidates), len(considered), len(setup), nil)
		return setup, nil
	}

	selected, err := mwis.Find(considered,
		func(a, b *pick) bool { return a.eq.OccupiedSlots.Intersects(b.eq.OccupiedSlots) },
		func(p *pick) float64 { return p.weight },
	)
	if err != nil {
		o.logger.LogFind(len(candidates), len(considered), 0, err)
		return nil, err
	}

	setup := equipmentOf(selected)
	o.logger.LogFind(len(candidates), len(considered), len(setup), nil)

	return setup, nil
}

func equipmentOf(picks []*pick) []model.Equipment {
	setup := make([]model.Equipment, len(picks))
	for i, p := range picks {
		setup[i] = p.eq
	}
	return setup
}
