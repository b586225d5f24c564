package repository

import (
	"sync"

	"wage-impact/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.CalculationResult
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.CalculationResult{},
	}
}

// Save stores the calculation result in memory.
func (r *CalculationRepositoryMemory) Save(
	input domain.ImpactInput,
	result domain.CalculationResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, result)
	return nil
}
