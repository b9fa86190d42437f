package domain

import "strings"

// Dep represents one package's requirement on another: a package name
// together with a version constraint.
type Dep struct {
	Name       PkgName
	Constraint VersionConstraint
}

// ParseDep parses a dependency token of the form "name", "name<v",
// "name>=v", "name>v" or "name=v". Operators are checked longest-first so
// that ">=" is never misread as ">".
func ParseDep(token string) Dep {
	for _, op := range []struct {
		sym string
		op  ConstraintOp
	}{
		{">=", OpAtLeast},
		{"<", OpLess},
		{">", OpMore},
		{"=", OpExact},
	} {
		if idx := strings.Index(token, op.sym); idx >= 0 {
			return Dep{
				Name:       NewPkgName(token[:idx]),
				Constraint: VersionConstraint{Op: op.op, Version: token[idx+len(op.sym):]},
			}
		}
	}
	return Dep{Name: NewPkgName(token), Constraint: Unconstrained()}
}

// Render returns the dependency in the "name<op>version" query syntax of
// the system manager.
func (d Dep) Render() string {
	return d.Name.String() + d.Constraint.Render()
}
