package dag

import "slices"

// Graph — упорядоченное отображение uint32 id → Node.
//
// Инвариант: после каждой успешной публичной операции граф ацикличен.
// Вставка, которая ввела бы цикл, отклоняется целиком — граф при этом
// не изменяется вовсе.
//
// Внутренней синхронизации нет: граф рассчитан на одного логического
// владельца, конкурентный доступ — ответственность вызывающего.
type Graph[T comparable] struct {
	nodes map[uint32]Node[T]
}

// New создаёт пустой граф.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{
		nodes: make(map[uint32]Node[T]),
	}
}

// AddNode вставляет узел по id или обновляет существующий.
//
// Кандидат сначала применяется к полной копии отображения источников,
// копия проверяется пробной топологической сортировкой, и только при
// успехе узел фиксируется в живом графе (copy-validate-commit).
// Если копия несортируема — цикл, включая self-cycle, цикл, внесённый
// обновлением существующего узла, либо висячая ссылка на отсутствующий
// id — возвращается *CycleError, а граф остаётся без изменений.
//
// Возвращает узел, ранее занимавший id, или nil при свежей вставке.
func (g *Graph[T]) AddNode(id uint32, node Node[T]) (*Node[T], error) {
	candidate := g.snapshotSources()
	candidate[id] = slices.Clone(node.sources)

	if _, ok := kahnSort(candidate); !ok {
		return nil, &CycleError{NodeID: id}
	}

	var prev *Node[T]
	if existing, ok := g.nodes[id]; ok {
		prev = &existing
	}
	g.nodes[id] = node

	return prev, nil
}

// InDegree возвращает текущее количество предшественников узла id.
// Второй результат — false, если узел отсутствует.
func (g *Graph[T]) InDegree(id uint32) (int, bool) {
	node, ok := g.nodes[id]
	if !ok {
		return 0, false
	}
	return node.SourcesLen(), true
}

// Len возвращает количество узлов в графе.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// snapshotSources строит одноразовую копию отображения id → список
// источников. Сортировка и пробная валидация работают только с ней,
// поэтому живые узлы никогда не модифицируются.
func (g *Graph[T]) snapshotSources() map[uint32][]uint32 {
	snap := make(map[uint32][]uint32, len(g.nodes))
	for id, node := range g.nodes {
		snap[id] = slices.Clone(node.sources)
	}
	return snap
}
