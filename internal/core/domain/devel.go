package domain

import "strings"

// develSuffixes are the version-control suffixes denoting packages that
// track an upstream repository tip rather than a release.
var develSuffixes = []string{"-git", "-hg", "-svn", "-darcs", "-cvs", "-bzr"}

// IsDevel reports whether the package name carries a recognized
// version-control suffix.
func IsDevel(n PkgName) bool {
	s := n.String()
	for _, suffix := range develSuffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// Devel filters the given names down to the devel packages.
func Devel(names []PkgName) []PkgName {
	var res []PkgName
	for _, n := range names {
		if IsDevel(n) {
			res = append(res, n)
		}
	}
	return res
}
