package cache

// ScopedKeyer wraps a Keyer with a prefix, giving separate namespaces to
// runs that share one backend, for example one per CI project on a shared
// Redis:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "project:acme:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(rosterHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(rosterHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
