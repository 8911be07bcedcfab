package narrative

// Blocks is an ordered, bounded list of repeatable section units (diagnosis
// lines, imaging visits, descriptor regions). Every structural change
// renumbers the items so ordinals stay dense and 1-based.
type Blocks[T any] struct {
	items    []T
	max      int
	renumber func(item *T, ordinal int)
}

// NewBlocks returns an empty container holding at most max items.
// renumber may be nil for block types that carry no ordinal.
func NewBlocks[T any](max int, renumber func(item *T, ordinal int)) *Blocks[T] {
	return &Blocks[T]{max: max, renumber: renumber}
}

// Add appends item. It returns false when the container is full.
func (b *Blocks[T]) Add(item T) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, item)
	b.renumberAll()
	return true
}

// Remove deletes the item at i.
func (b *Blocks[T]) Remove(i int) bool {
	if i < 0 || i >= len(b.items) {
		return false
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	b.renumberAll()
	return true
}

// Move relocates the item at from so that it ends up at index to.
func (b *Blocks[T]) Move(from, to int) bool {
	n := len(b.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}
	item := b.items[from]
	b.items = append(b.items[:from], b.items[from+1:]...)
	b.items = append(b.items[:to], append([]T{item}, b.items[to:]...)...)
	b.renumberAll()
	return true
}

// Update applies fn to the item at i in place.
func (b *Blocks[T]) Update(i int, fn func(*T)) bool {
	if i < 0 || i >= len(b.items) {
		return false
	}
	fn(&b.items[i])
	return true
}

// Reset replaces the contents, truncating to the limit.
func (b *Blocks[T]) Reset(items []T) {
	if b.max > 0 && len(items) > b.max {
		items = items[:b.max]
	}
	b.items = append([]T(nil), items...)
	b.renumberAll()
}

// Len returns the number of items.
func (b *Blocks[T]) Len() int { return len(b.items) }

// Max returns the capacity limit, 0 meaning unbounded.
func (b *Blocks[T]) Max() int { return b.max }

// At returns the item at i. It returns false when i is out of range.
func (b *Blocks[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(b.items) {
		var zero T
		return zero, false
	}
	return b.items[i], true
}

// All returns a copy of the items in order.
func (b *Blocks[T]) All() []T {
	return append([]T(nil), b.items...)
}

// Numbers returns the ordinal of every item in order.
func (b *Blocks[T]) Numbers() []int {
	out := make([]int, len(b.items))
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func (b *Blocks[T]) renumberAll() {
	if b.renumber == nil {
		return
	}
	for i := range b.items {
		b.renumber(&b.items[i], i+1)
	}
}
