package repository

import (
	"context"

	"fincalc/domain"
)

// CalculationRepository stores successful calculations and answers history
// and usage queries over them.
type CalculationRepository interface {
	// Save stores record and returns its id. A record without an ID or
	// CreatedAt gets one assigned.
	Save(ctx context.Context, record domain.CalculationRecord) (string, error)

	// FindRecent returns up to limit records, newest first. An empty
	// calculatorType matches every type.
	FindRecent(ctx context.Context, calculatorType domain.CalculatorType, limit int) ([]domain.CalculationRecord, error)

	// AggregateCountsByType returns per-type usage ordered by count, highest first.
	AggregateCountsByType(ctx context.Context) ([]domain.TypeStats, error)
}
