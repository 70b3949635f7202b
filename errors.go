package dag

import (
	"errors"
	"fmt"
)

// Ошибки графа.
var (
	// ErrCycleDetected — фиксация узла сделала бы граф несортируемым.
	ErrCycleDetected = errors.New("cycle detected")
)

// CycleError — ошибка вставки с контекстом: какой узел был отклонён.
type CycleError struct {
	// NodeID — идентификатор узла, вставка которого отклонена.
	NodeID uint32
}

// Error реализует интерфейс error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("add node %d: cycle detected", e.NodeID)
}

// Unwrap возвращает базовую ошибку.
func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}
