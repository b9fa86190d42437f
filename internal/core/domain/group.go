package domain

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Group is a non-empty ordered set of resolved packages that must be
// treated as one build/install unit. Group membership is decided by the
// caller (typically by dependency tier) and is opaque to the partitioner.
type Group []Package

// partitionParallelism is the group count above which partitioning runs
// data-parallel. Groups share no mutable state, so each can be split
// independently.
const partitionParallelism = 64

// PartitionGroups splits an ordered sequence of groups by package origin.
//
// All prebuilt members across all groups are flattened into one combined
// slice: the system installer can batch them, so install order need not
// preserve group boundaries. Buildable members keep their group boundaries
// because packages within one group have inter-dependencies requiring
// ordered, grouped building. Groups left empty after filtering are dropped.
//
// Every input package appears in exactly one of the two outputs.
func PartitionGroups(groups []Group) ([]Prebuilt, [][]Buildable) {
	splits := make([]groupSplit, len(groups))

	if len(groups) >= partitionParallelism {
		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		for i, grp := range groups {
			g.Go(func() error {
				splits[i] = splitGroup(grp)
				return nil
			})
		}
		// Workers only write their own slot and never fail.
		_ = g.Wait()
	} else {
		for i, grp := range groups {
			splits[i] = splitGroup(grp)
		}
	}

	var prebuilt []Prebuilt
	var buildable [][]Buildable
	for _, s := range splits {
		prebuilt = append(prebuilt, s.prebuilt...)
		if len(s.buildable) > 0 {
			buildable = append(buildable, s.buildable)
		}
	}
	return prebuilt, buildable
}

type groupSplit struct {
	prebuilt  []Prebuilt
	buildable []Buildable
}

func splitGroup(grp Group) groupSplit {
	var s groupSplit
	for _, pkg := range grp {
		switch p := pkg.(type) {
		case Prebuilt:
			s.prebuilt = append(s.prebuilt, p)
		case Buildable:
			s.buildable = append(s.buildable, p)
		}
	}
	return s
}
