package pacman_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/porter/internal/adapters/pacman"
	"go.trai.ch/porter/internal/core/domain"
)

func TestSyncRepo_Lookup_MissIsUnresolvedRegardlessOfLocale(t *testing.T) {
	// pacman translates its messages via the inherited locale. The lookup
	// must pin the message locale so a plain miss is recognized as such
	// and never escalates into a provider failure.
	bin := fakePacman(t, `if [ "$LC_ALL" = "C" ]; then
	echo "error: package 'yay' was not found" >&2
else
	echo "Fehler: Paket 'yay' wurde nicht gefunden" >&2
fi
exit 1`)
	repo := pacman.NewSyncRepo(&domain.Settings{PacmanBin: bin})

	res, err := repo.Lookup(context.Background(), nil, domain.NewNameSet(domain.NewPkgName("yay")))
	require.NoError(t, err)

	assert.Empty(t, res.Resolved)
	assert.True(t, res.Unresolved.Has(domain.NewPkgName("yay")))
}

func TestSyncRepo_Lookup_PartialMiss(t *testing.T) {
	bin := fakePacman(t, `cat <<'EOF'
Repository      : extra
Name            : vim
Version         : 9.1.0-1
EOF
echo "error: package 'no-such' was not found" >&2
exit 1`)
	repo := pacman.NewSyncRepo(&domain.Settings{PacmanBin: bin})

	names := domain.NewNameSet(domain.NewPkgName("vim"), domain.NewPkgName("no-such"))
	res, err := repo.Lookup(context.Background(), nil, names)
	require.NoError(t, err)

	require.Len(t, res.Resolved, 1)
	assert.Equal(t, "vim", res.Resolved[0].PkgName().String())
	assert.True(t, res.Unresolved.Has(domain.NewPkgName("no-such")))
	assert.False(t, res.Unresolved.Has(domain.NewPkgName("vim")))
}

func TestSyncRepo_Lookup_ProviderFailure(t *testing.T) {
	// A non-zero exit with no recognizable miss on stderr is a provider
	// failure and aborts the lookup.
	bin := fakePacman(t, `echo "error: could not open database" >&2
exit 1`)
	repo := pacman.NewSyncRepo(&domain.Settings{PacmanBin: bin})

	_, err := repo.Lookup(context.Background(), nil, domain.NewNameSet(domain.NewPkgName("vim")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrProviderFailure.Error())
}
