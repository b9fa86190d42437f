package pacman

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/porter/internal/core/domain"
)

var notFoundRe = regexp.MustCompile(`package '([^']+)' was not found`)

// parseNotFound extracts the names pacman reported as unknown on stderr.
func parseNotFound(stderr string) []domain.PkgName {
	var names []domain.PkgName
	for _, m := range notFoundRe.FindAllStringSubmatch(stderr, -1) {
		names = append(names, domain.NewPkgName(m[1]))
	}
	return names
}

// parseSyncInfo parses `pacman -Si` output: blank-line separated stanzas of
// "Key : Value" lines, one stanza per package.
func parseSyncInfo(out string) []domain.Prebuilt {
	var pkgs []domain.Prebuilt
	var cur domain.Prebuilt
	inStanza := false

	flush := func() {
		if inStanza && cur.Name.String() != "" {
			pkgs = append(pkgs, cur)
		}
		cur = domain.Prebuilt{}
		inStanza = false
	}

	for line := range strings.Lines(out) {
		line = strings.TrimRight(line, "\n")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			// Continuation lines of multi-line fields are irrelevant here.
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Repository":
			inStanza = true
			cur.Repository = value
		case "Name":
			inStanza = true
			cur.Name = domain.NewPkgName(value)
		case "Version":
			cur.Version = value
		case "Download Size":
			cur.DownloadSize = parseSize(value)
		}
	}
	flush()
	return pkgs
}

// sizeUnits maps pacman's human-readable size suffixes to bytes.
var sizeUnits = map[string]float64{
	"B":   1,
	"KiB": 1 << 10,
	"MiB": 1 << 20,
	"GiB": 1 << 30,
}

// parseSize converts a "600.52 KiB" style value to bytes, zero on any
// unrecognized input.
func parseSize(value string) int64 {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return 0
	}
	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	unit, ok := sizeUnits[fields[1]]
	if !ok {
		return 0
	}
	return int64(n * unit)
}
