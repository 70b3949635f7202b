package dag

import "slices"

// Node — узел графа: идентификаторы предшественников плюс полезная нагрузка.
//
// Список sources не обязан быть уникальным или отсортированным: дубликаты
// допускаются, но корректным вызывающим стоит их избегать. Значение value
// алгоритмом никогда не интерпретируется.
type Node[T comparable] struct {
	sources []uint32
	value   T
}

// NewNode создаёт узел. Срез sources копируется, поэтому последующие
// изменения среза у вызывающего узел не затрагивают.
func NewNode[T comparable](sources []uint32, value T) Node[T] {
	return Node[T]{
		sources: slices.Clone(sources),
		value:   value,
	}
}

// Sources возвращает копию списка предшественников.
func (n Node[T]) Sources() []uint32 {
	return slices.Clone(n.sources)
}

// SourcesLen возвращает количество предшественников.
func (n Node[T]) SourcesLen() int {
	return len(n.sources)
}

// Value возвращает полезную нагрузку узла.
func (n Node[T]) Value() T {
	return n.value
}
