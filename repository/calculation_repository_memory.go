package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fincalc/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.CalculationRecord
	now  func() time.Time
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []domain.CalculationRecord{},
		now:  time.Now,
	}
}

// Save stores the calculation in memory.
func (r *CalculationRepositoryMemory) Save(
	ctx context.Context,
	record domain.CalculationRecord,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	return record.ID, nil
}

func (r *CalculationRepositoryMemory) FindRecent(
	ctx context.Context,
	calculatorType domain.CalculatorType,
	limit int,
) ([]domain.CalculationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.CalculationRecord{}
	// Records are appended in save order, so walking backwards is newest first.
	for n := len(r.data) - 1; n >= 0 && len(out) < limit; n-- {
		if calculatorType == "" || r.data[n].CalculatorType == calculatorType {
			out = append(out, r.data[n])
		}
	}
	return out, nil
}

func (r *CalculationRepositoryMemory) AggregateCountsByType(ctx context.Context) ([]domain.TypeStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	byType := map[domain.CalculatorType]*domain.TypeStats{}
	for _, rec := range r.data {
		s, ok := byType[rec.CalculatorType]
		if !ok {
			s = &domain.TypeStats{Type: rec.CalculatorType}
			byType[rec.CalculatorType] = s
		}
		s.Count++
		if rec.CreatedAt.After(s.LastUsedAt) {
			s.LastUsedAt = rec.CreatedAt
		}
	}
	r.mu.RUnlock()

	out := make([]domain.TypeStats, 0, len(byType))
	for _, s := range byType {
		out = append(out, *s)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Type < out[b].Type
	})
	return out, nil
}
