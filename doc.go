// Package gearsetup computes optimal equipment loadouts for Old School
// Runescape characters.
//
// A gear setup is a set of equipment where no two pieces occupy the same
// equipment slot. Given a candidate catalog and a weight function to
// maximize, the optimizer prunes dominated candidates and solves the
// remaining conflicts as a maximum-weight independent set.
//
// # Quick Start
//
//	setup, err := gearsetup.Optimal(candidates, gearsetup.MaximizePrayerBonus)
//
// Custom weight functions maximize arbitrary characteristics:
//
//	setup, err := gearsetup.Optimal(candidates, func(eq model.Equipment) float64 {
//	    return float64(eq.CombatBonuses.MeleeStrength + eq.CombatBonuses.Attack.Slash)
//	})
//
// # Data Access
//
// Candidate catalogs live in DynamoDB and in object-store snapshots:
//
//	repo, _ := tablestore.NewFromDefaultConfig(ctx)
//	candidates, _ := repo.ScanAll(ctx)
//
//	store, _ := s3.NewFromDefaultConfig(ctx, "gearsetup", "")
//	candidates, _ = snapshot.NewRetriever(store).Equipment(ctx)
//
// The underlying solvers are exposed for reuse: package mwis solves exact
// maximum-weight independent sets over arbitrary conflict predicates, and
// package disjoint provides a fast single-row heuristic for near-disjoint
// inputs.
package gearsetup
