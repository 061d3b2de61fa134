package granary

type factory struct{}

var Factory factory

func (f factory) NewWorld(opts ...Option) *World {
	return newWorld(opts...)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, world *World) *Cursor {
	return newCursor(query, world)
}

func FactoryNewCache[K comparable, T any](capacity int) Cache[K, T] {
	return newSimpleCache[K, T](capacity)
}
