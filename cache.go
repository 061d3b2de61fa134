package granary

var _ Cache[string, any] = &SimpleCache[string, any]{}

func newSimpleCache[K comparable, T any](capacity int) *SimpleCache[K, T] {
	return &SimpleCache[K, T]{
		itemIndices: make(map[K]int),
		maxCapacity: capacity,
	}
}

func (c *SimpleCache[K, T]) GetIndex(key K) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *SimpleCache[K, T]) GetItem(index int) *T {
	item := &c.items[index]
	return item
}

func (c *SimpleCache[K, T]) GetItem32(index uint32) *T {
	item := &c.items[index]
	return item
}

func (c *SimpleCache[K, T]) Len() int {
	return len(c.items)
}

// Register stores item under key and returns its index. Indices are assigned
// in registration order and never reused. A capacity of zero or less means
// unbounded.
func (c *SimpleCache[K, T]) Register(key K, item T) (int, error) {
	if c.maxCapacity > 0 && len(c.items) >= c.maxCapacity {
		return -1, CapacityError{Resource: "cache", Limit: uint64(c.maxCapacity)}
	}

	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)

	return idx, nil
}

func (c *SimpleCache[K, T]) Clear() {
	c.items = nil
	c.itemIndices = make(map[K]int)
}
