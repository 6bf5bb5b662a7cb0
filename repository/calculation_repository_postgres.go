package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"fincalc/domain"
)

const createCalculationsTable = `
	CREATE TABLE IF NOT EXISTS calculations (
		id              UUID PRIMARY KEY,
		calculator_type TEXT NOT NULL,
		inputs          JSONB NOT NULL,
		result          JSONB NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS calculations_type_created_idx
		ON calculations (calculator_type, created_at DESC);
`

// CalculationRepositoryPostgres stores calculations in a PostgreSQL table,
// with inputs and results kept as JSONB.
type CalculationRepositoryPostgres struct {
	pool *pgxpool.Pool
}

// NewPostgresPool opens a connection pool for databaseURL.
func NewPostgresPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database url not set")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return pool, nil
}

// NewCalculationRepositoryPostgres creates a repository over pool.
func NewCalculationRepositoryPostgres(pool *pgxpool.Pool) *CalculationRepositoryPostgres {
	return &CalculationRepositoryPostgres{pool: pool}
}

// EnsureSchema creates the calculations table and its index if missing.
func (r *CalculationRepositoryPostgres) EnsureSchema(ctx context.Context) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not configured")
	}
	if _, err := r.pool.Exec(ctx, createCalculationsTable); err != nil {
		return fmt.Errorf("failed to create calculations table: %w", err)
	}
	return nil
}

func (r *CalculationRepositoryPostgres) Save(ctx context.Context, record domain.CalculationRecord) (string, error) {
	if r.pool == nil {
		return "", fmt.Errorf("database pool not configured")
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	inputsJSON, err := json.Marshal(record.Inputs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal inputs: %w", err)
	}
	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `
		INSERT INTO calculations (id, calculator_type, inputs, result, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id string
	err = r.pool.QueryRow(ctx, query,
		record.ID, string(record.CalculatorType), inputsJSON, resultJSON, record.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save calculation: %w", err)
	}
	return id, nil
}

func (r *CalculationRepositoryPostgres) FindRecent(
	ctx context.Context,
	calculatorType domain.CalculatorType,
	limit int,
) ([]domain.CalculationRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT id::text, calculator_type, inputs, result, created_at
		FROM calculations
		WHERE $1::text = '' OR calculator_type = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, string(calculatorType), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	records := []domain.CalculationRecord{}
	for rows.Next() {
		var (
			rec                    domain.CalculationRecord
			ct                     string
			inputsJSON, resultJSON []byte
		)
		if err := rows.Scan(&rec.ID, &ct, &inputsJSON, &resultJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan calculation row: %w", err)
		}
		rec.CalculatorType = domain.CalculatorType(ct)
		if err := json.Unmarshal(inputsJSON, &rec.Inputs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inputs: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read calculations: %w", err)
	}
	return records, nil
}

func (r *CalculationRepositoryPostgres) AggregateCountsByType(ctx context.Context) ([]domain.TypeStats, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT calculator_type, COUNT(*), MAX(created_at)
		FROM calculations
		GROUP BY calculator_type
		ORDER BY COUNT(*) DESC, calculator_type
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate calculations: %w", err)
	}
	defer rows.Close()

	stats := []domain.TypeStats{}
	for rows.Next() {
		var (
			s  domain.TypeStats
			ct string
		)
		if err := rows.Scan(&ct, &s.Count, &s.LastUsedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		s.Type = domain.CalculatorType(ct)
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}
	return stats, nil
}
