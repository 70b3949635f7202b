package dag

import "slices"

// Sort возвращает один корректный топологический порядок идентификаторов.
//
// Второй результат — false, если сохранённый граф несортируем: содержит
// цикл либо узел, чей список источников никогда не опустеет (висячая
// ссылка или продублированный предшественник). Живой граф запросом не
// модифицируется — алгоритм работает на одноразовой копии.
func (g *Graph[T]) Sort() ([]uint32, bool) {
	return kahnSort(g.snapshotSources())
}

// kahnSort — алгоритм Кана над отображением id → список источников.
//
// Очередь заполняется узлами с нулевым числом источников в порядке
// возрастания id. При извлечении id из очереди из каждого списка
// источников удаляется первое его вхождение; узел, чей список опустел,
// ставится в очередь, если он ещё не выведен и не стоит в очереди.
// Отображение nodes модифицируется — вызывающий передаёт копию.
func kahnSort(nodes map[uint32][]uint32) ([]uint32, bool) {
	ids := make([]uint32, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	queue := make([]uint32, 0, len(nodes))
	for _, id := range ids {
		if len(nodes[id]) == 0 {
			queue = append(queue, id)
		}
	}

	sorted := make([]uint32, 0, len(nodes))

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		sorted = append(sorted, id)

		for _, other := range ids {
			pos := slices.Index(nodes[other], id)
			if pos < 0 {
				continue
			}
			nodes[other] = slices.Delete(nodes[other], pos, pos+1)

			if len(nodes[other]) == 0 &&
				!slices.Contains(sorted, other) &&
				!slices.Contains(queue, other) {
				queue = append(queue, other)
			}
		}
	}

	// Если выведены не все узлы — в графе цикл либо узел,
	// так и не достигший нулевого числа источников.
	if len(sorted) != len(nodes) {
		return nil, false
	}
	return sorted, true
}
