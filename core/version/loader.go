package version

import "strings"

// LoaderType identifies a mod loader family.
type LoaderType string

const (
	LoaderFabric LoaderType = "fabric"
	LoaderQuilt  LoaderType = "quilt"
)

// LoaderTypes lists every supported loader in a fixed order.
var LoaderTypes = []LoaderType{LoaderFabric, LoaderQuilt}

// Group is the maven group the loader is published under.
func (t LoaderType) Group() string {
	switch t {
	case LoaderQuilt:
		return "org.quiltmc"
	default:
		return "net.fabricmc"
	}
}

// Artifact is the maven artifact id of the loader.
func (t LoaderType) Artifact() string {
	return string(t) + "-loader"
}

// IsPublic reports whether a loader version belongs in default listings.
// Quilt publishes pre-releases with a '-' qualifier.
func (t LoaderType) IsPublic(v string) bool {
	return !(t == LoaderQuilt && strings.Contains(v, "-"))
}

// ParseLoaderType accepts "fabric" or "quilt", with or without "-loader".
func ParseLoaderType(s string) (LoaderType, bool) {
	s = strings.TrimSuffix(s, "-loader")
	for _, t := range LoaderTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}
