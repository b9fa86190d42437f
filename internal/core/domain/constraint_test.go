package domain_test

import (
	"testing"

	"go.trai.ch/porter/internal/core/domain"
)

func TestVersionConstraint_Render(t *testing.T) {
	cases := []struct {
		name string
		c    domain.VersionConstraint
		want string
	}{
		{"unconstrained", domain.Unconstrained(), ""},
		{"less", domain.VersionConstraint{Op: domain.OpLess, Version: "2.0"}, "<2.0"},
		{"at least", domain.VersionConstraint{Op: domain.OpAtLeast, Version: "1.2.0"}, ">=1.2.0"},
		{"more", domain.VersionConstraint{Op: domain.OpMore, Version: "1.0"}, ">1.0"},
		{"exact", domain.VersionConstraint{Op: domain.OpExact, Version: "3.1.4"}, "=3.1.4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Render(); got != tc.want {
				t.Errorf("Render() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseDep(t *testing.T) {
	cases := []struct {
		token    string
		wantName string
		wantOp   domain.ConstraintOp
		wantVer  string
	}{
		{"gcc", "gcc", domain.OpAny, ""},
		{"gcc>=9.1.0", "gcc", domain.OpAtLeast, "9.1.0"},
		{"gcc>9", "gcc", domain.OpMore, "9"},
		{"gcc<10", "gcc", domain.OpLess, "10"},
		{"gcc=9.2.0", "gcc", domain.OpExact, "9.2.0"},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			dep := domain.ParseDep(tc.token)
			if dep.Name.String() != tc.wantName {
				t.Errorf("name = %q, want %q", dep.Name.String(), tc.wantName)
			}
			if dep.Constraint.Op != tc.wantOp {
				t.Errorf("op = %d, want %d", dep.Constraint.Op, tc.wantOp)
			}
			if dep.Constraint.Version != tc.wantVer {
				t.Errorf("version = %q, want %q", dep.Constraint.Version, tc.wantVer)
			}
		})
	}
}

func TestDep_Render(t *testing.T) {
	dep := domain.ParseDep("linux>=6.1")
	if got := dep.Render(); got != "linux>=6.1" {
		t.Errorf("Render() = %q, want %q", got, "linux>=6.1")
	}

	dep = domain.ParseDep("linux")
	if got := dep.Render(); got != "linux" {
		t.Errorf("Render() = %q, want %q", got, "linux")
	}
}
