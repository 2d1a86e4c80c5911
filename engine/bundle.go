package engine

// Bundle collects handles that were allocated together and must be released
// together. Release order is irrelevant, completeness is not.
type Bundle struct {
	handles []Handle
}

// Add records h and returns it. Invalid handles are ignored.
func (b *Bundle) Add(h Handle) Handle {
	if h.Valid() {
		b.handles = append(b.handles, h)
	}
	return h
}

func (b *Bundle) Handles() []Handle {
	return b.handles
}

func (b *Bundle) Len() int {
	return len(b.handles)
}

// Count returns the number of recorded handles of kind k
func (b *Bundle) Count(k Kind) int {
	var n int
	for _, h := range b.handles {
		if h.Kind == k {
			n++
		}
	}
	return n
}

// Release deletes every recorded handle exactly once and empties the bundle.
// Releasing an empty bundle is a no-op.
func (b *Bundle) Release(be Backend) {
	for len(b.handles) > 0 {
		last := len(b.handles) - 1
		h := b.handles[last]
		b.handles = b.handles[:last]
		be.Delete(h)
	}
	b.handles = nil
}
