package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const syncInfoSample = `Repository      : extra
Name            : vim
Version         : 9.1.0-1
Description     : Vi Improved, a highly configurable, improved version of
                  the vi text editor
Download Size   : 1.23 MiB
Installed Size  : 4.00 MiB

Repository      : core
Name            : linux
Version         : 6.10.arch1-1
Download Size   : 600.52 KiB
`

func TestParseSyncInfo(t *testing.T) {
	pkgs := parseSyncInfo(syncInfoSample)

	assert.Len(t, pkgs, 2)

	assert.Equal(t, "vim", pkgs[0].Name.String())
	assert.Equal(t, "9.1.0-1", pkgs[0].Version)
	assert.Equal(t, "extra", pkgs[0].Repository)
	assert.Equal(t, int64(1289748), pkgs[0].DownloadSize) // 1.23 MiB, truncated

	assert.Equal(t, "linux", pkgs[1].Name.String())
	assert.Equal(t, "core", pkgs[1].Repository)
}

func TestParseSyncInfo_Empty(t *testing.T) {
	assert.Empty(t, parseSyncInfo(""))
}

func TestParseNotFound(t *testing.T) {
	stderr := "error: package 'definitely-not-real' was not found\n" +
		"error: package 'also-missing' was not found\n"

	missing := parseNotFound(stderr)

	assert.Len(t, missing, 2)
	assert.Equal(t, "definitely-not-real", missing[0].String())
	assert.Equal(t, "also-missing", missing[1].String())
}

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"600.52 KiB", 614932},
		{"1.00 MiB", 1 << 20},
		{"12 B", 12},
		{"malformed", 0},
		{"1.0 TiB", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseSize(tc.in), tc.in)
	}
}

func TestParseNameColumn(t *testing.T) {
	out := []byte("yay 12.3.5-1\nparu-git 2.0.r5-1\n")
	names := parseNameColumn(out)

	assert.Len(t, names, 2)
	assert.Equal(t, "yay", names[0].String())
	assert.Equal(t, "paru-git", names[1].String())
}
