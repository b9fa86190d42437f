package domain_test

import (
	"fmt"
	"testing"

	"go.trai.ch/porter/internal/core/domain"
)

func prebuilt(name string) domain.Prebuilt {
	return domain.Prebuilt{Name: domain.NewPkgName(name), Version: "1.0", Repository: "extra"}
}

func buildable(name string) domain.Buildable {
	return domain.Buildable{Name: domain.NewPkgName(name), Base: domain.NewPkgName(name), Version: "1.0"}
}

func TestPartitionGroups_SplitByOrigin(t *testing.T) {
	groups := []domain.Group{
		{prebuilt("a"), buildable("b")},
		{buildable("c"), buildable("d")},
		{prebuilt("e")},
	}

	pre, build := domain.PartitionGroups(groups)

	if len(pre) != 2 {
		t.Fatalf("expected 2 prebuilt packages, got %d", len(pre))
	}
	if pre[0].Name.String() != "a" || pre[1].Name.String() != "e" {
		t.Errorf("unexpected prebuilt packages: %v", pre)
	}

	if len(build) != 2 {
		t.Fatalf("expected 2 buildable groups, got %d", len(build))
	}
	if len(build[0]) != 1 || build[0][0].Name.String() != "b" {
		t.Errorf("unexpected first buildable group: %v", build[0])
	}
	if len(build[1]) != 2 {
		t.Errorf("expected second buildable group of size 2, got %d", len(build[1]))
	}
}

func TestPartitionGroups_DropsEmptyGroups(t *testing.T) {
	// A group of one prebuilt package contributes to the flattened prebuilt
	// collection and nothing to buildable; the reverse case is symmetric.
	groups := []domain.Group{
		{prebuilt("only-pre")},
		{buildable("only-build")},
	}

	pre, build := domain.PartitionGroups(groups)

	if len(pre) != 1 {
		t.Fatalf("expected 1 prebuilt package, got %d", len(pre))
	}
	if len(build) != 1 {
		t.Fatalf("expected 1 buildable group, got %d", len(build))
	}
	for _, g := range build {
		if len(g) == 0 {
			t.Error("returned an empty buildable group")
		}
	}
}

func TestPartitionGroups_Completeness(t *testing.T) {
	// Partitioning never drops or duplicates a package, including on the
	// data-parallel path for large group counts.
	const groupCount = 200
	groups := make([]domain.Group, 0, groupCount)
	total := 0
	for i := range groupCount {
		g := domain.Group{}
		if i%2 == 0 {
			g = append(g, prebuilt(fmt.Sprintf("pre-%d", i)))
			total++
		}
		if i%3 == 0 {
			g = append(g, buildable(fmt.Sprintf("build-%d", i)), buildable(fmt.Sprintf("build2-%d", i)))
			total += 2
		}
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}

	pre, build := domain.PartitionGroups(groups)

	got := len(pre)
	for _, g := range build {
		got += len(g)
	}
	if got != total {
		t.Errorf("partition lost or duplicated packages: got %d, want %d", got, total)
	}
}

func TestPartitionGroups_GroupPreservation(t *testing.T) {
	groups := []domain.Group{
		{buildable("a1"), buildable("a2"), prebuilt("a3")},
		{buildable("b1")},
	}

	_, build := domain.PartitionGroups(groups)

	if len(build) != 2 {
		t.Fatalf("expected 2 buildable groups, got %d", len(build))
	}

	// No cross-group mixing: each output group is a subset of one input
	// group's buildable members, in order.
	if build[0][0].Name.String() != "a1" || build[0][1].Name.String() != "a2" {
		t.Errorf("first group mixed or reordered: %v", build[0])
	}
	if build[1][0].Name.String() != "b1" {
		t.Errorf("second group mixed: %v", build[1])
	}
}
