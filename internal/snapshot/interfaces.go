package snapshot

// Source is the tree being dumped.
type Source interface {
	All() map[string]any
}

// Restorer is the tree being restored.
type Restorer interface {
	Restore(data map[string]any)
}

// IDGenerator assigns snapshot identifiers.
type IDGenerator interface {
	Generate() string
}
