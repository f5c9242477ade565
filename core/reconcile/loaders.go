package reconcile

import (
	"regexp"

	"ornithe-meta/core/version"
)

var invalidLoaderVersions = map[version.LoaderType]*regexp.Regexp{
	version.LoaderFabric: regexp.MustCompile(`^(?:0\.(?:\d|1[0-6])\..+|0\.17\.[0-2])$`),
	version.LoaderQuilt:  regexp.MustCompile(`^(?:0\.(?:\d|1\d|2[0-8])\..+|0\.29\.[0-2])$`),
}

// FilterLoaders drops loader builds that cannot run on the given generation
// and hides non-public builds. raw is never modified.
func FilterLoaders(generation int, lt version.LoaderType, raw []version.Version) []version.Version {
	out := make([]version.Version, 0, len(raw))
	invalid := invalidLoaderVersions[lt]
	for _, v := range raw {
		if generation >= 2 && invalid != nil && invalid.MatchString(v.Version) {
			continue
		}
		if !lt.IsPublic(v.Version) {
			v = v.Hidden()
		}
		out = append(out, v)
	}
	return out
}
