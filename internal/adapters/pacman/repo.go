package pacman

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/porter/internal/core/ports"
	"go.trai.ch/zerr"
)

// SyncRepo implements ports.Repository over the official sync databases via
// a single batched `pacman -Si` query per lookup.
type SyncRepo struct {
	bin string
}

// NewSyncRepo creates the system repository provider.
func NewSyncRepo(s *domain.Settings) *SyncRepo {
	bin := s.PacmanBin
	if bin == "" {
		bin = "pacman"
	}
	return &SyncRepo{bin: bin}
}

// Lookup queries the sync databases for the whole name set at once. Names
// pacman reports as not found land in Unresolved; any other failure is a
// provider failure and aborts the lookup.
func (r *SyncRepo) Lookup(ctx context.Context, _ *domain.Settings, names domain.NameSet) (*ports.LookupResult, error) {
	args := append([]string{"-Si", "--"}, nameStrings(names.Sorted())...)
	//nolint:gosec // bin comes from the settings snapshot
	cmd := exec.CommandContext(ctx, r.bin, args...)
	// The not-found parse below matches pacman's untranslated message, so
	// the invocation must not inherit the user's message locale.
	cmd.Env = append(os.Environ(), "LC_ALL=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	missing := parseNotFound(stderr.String())

	if runErr != nil {
		// pacman exits non-zero when any requested name is unknown while
		// still printing the stanzas it did find. Only treat the failure as
		// a provider failure when it cannot be explained by misses.
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) || len(missing) == 0 {
			failure := zerr.Wrap(runErr, domain.ErrProviderFailure.Error())
			return nil, zerr.With(failure, "stderr", stderr.String())
		}
	}

	resolved := parseSyncInfo(stdout.String())

	// Unresolved is derived from the request so that resolved and
	// unresolved always partition it exactly.
	unresolved := make(domain.NameSet)
	seen := make(domain.NameSet, len(resolved))
	for _, p := range resolved {
		seen.Add(p.PkgName())
	}
	for n := range names {
		if !seen.Has(n) {
			unresolved.Add(n)
		}
	}

	res := &ports.LookupResult{Unresolved: unresolved}
	for _, p := range resolved {
		if names.Has(p.PkgName()) {
			res.Resolved = append(res.Resolved, p)
		}
	}
	return res, nil
}
