package engine

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	// Destroy removes g from the active zone and releases its resources.
	Destroy(g *GameObject)
}
