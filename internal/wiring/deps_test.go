package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies would validate the dependency injection graph: every
// node declaring a dependency uses it and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name
	// of the type used in Dep[T]. Several distinct nodes here resolve
	// interfaces from the shared ports package, which the analysis cannot
	// tell apart.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}
