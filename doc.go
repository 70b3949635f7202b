// Package dag реализует контейнер направленного ациклического графа (DAG).
//
// Включает:
//   - node.go  — узел графа: список предшественников и произвольное значение
//   - graph.go — упорядоченное отображение id → узел с транзакционной вставкой
//   - sort.go  — топологическая сортировка (алгоритм Кана)
//
// Граф отвергает любую вставку, которая сделала бы его циклическим:
// кандидат проверяется пробной сортировкой на копии отображения,
// и при обнаружении цикла живой граф остаётся без изменений.
package dag
