package domain

// ConstraintOp identifies the kind of a version constraint.
type ConstraintOp uint8

const (
	// OpAny matches any installed version.
	OpAny ConstraintOp = iota
	// OpLess requires a version strictly below the bound.
	OpLess
	// OpAtLeast requires a version at or above the bound.
	OpAtLeast
	// OpMore requires a version strictly above the bound.
	OpMore
	// OpExact requires exactly the bound version.
	OpExact
)

// VersionConstraint restricts which installed versions satisfy a dependency.
// The zero value is the unconstrained variant. Constraints are immutable;
// version comparison semantics belong to the system package manager, the
// core only renders constraints into the query format it understands.
type VersionConstraint struct {
	Op      ConstraintOp
	Version string
}

// Unconstrained returns the constraint that matches any version.
func Unconstrained() VersionConstraint {
	return VersionConstraint{Op: OpAny}
}

// Render returns the constraint in the suffix syntax understood by the
// system manager: "<v", ">=v", ">v", "=v", or the empty string when
// unconstrained.
func (c VersionConstraint) Render() string {
	switch c.Op {
	case OpLess:
		return "<" + c.Version
	case OpAtLeast:
		return ">=" + c.Version
	case OpMore:
		return ">" + c.Version
	case OpExact:
		return "=" + c.Version
	default:
		return ""
	}
}
