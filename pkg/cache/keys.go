package cache

// LayoutKeyOpts carries the inputs, beyond the config and room fingerprints,
// that change a computed layout. Bump Version when the layout algorithm
// changes so stale entries die naturally.
type LayoutKeyOpts struct {
	Version string `json:"version"`
}

// Keyer generates cache keys. Implementations must be deterministic: the
// same inputs always produce the same key.
type Keyer interface {
	// LayoutKey generates a key for a computed layout.
	LayoutKey(configHash, roomHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(configHash, roomHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", configHash, roomHash, opts)
}
