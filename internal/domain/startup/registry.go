package startup

// Registry is a read-only view of the components the host wired at startup.
type Registry interface {
	Count() int
	Contains(name string) bool
}
