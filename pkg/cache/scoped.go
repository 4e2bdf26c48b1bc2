package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The API
// service uses it to keep per-project cache entries apart when several
// projects share one Redis instance.
//
// Example usage:
//
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "project:acme-hq:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(configHash, roomHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(configHash, roomHash, opts)
}
