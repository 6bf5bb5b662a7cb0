package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
)

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func TestMemoryRepositorySaveAssignsID(t *testing.T) {
	repo := NewCalculationRepositoryMemory()

	id, err := repo.Save(context.Background(), domain.CalculationRecord{
		CalculatorType: domain.SIP,
		Inputs:         domain.Inputs{"years": 10.0},
		Result:         domain.Result{"maturityAmount": 1},
	})
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	recent, err := repo.FindRecent(context.Background(), domain.SIP, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, id, recent[0].ID)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestMemoryRepositoryFindRecent(t *testing.T) {
	repo := NewCalculationRepositoryMemory()
	repo.now = fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, ct := range []domain.CalculatorType{domain.SIP, domain.EMI, domain.SIP, domain.SIP} {
		_, err := repo.Save(ctx, domain.CalculationRecord{CalculatorType: ct})
		require.NoError(t, err)
	}

	sips, err := repo.FindRecent(ctx, domain.SIP, 2)
	require.NoError(t, err)
	require.Len(t, sips, 2)
	assert.True(t, sips[0].CreatedAt.After(sips[1].CreatedAt))

	all, err := repo.FindRecent(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := repo.FindRecent(ctx, domain.PPF, 10)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryRepositoryAggregate(t *testing.T) {
	repo := NewCalculationRepositoryMemory()
	repo.now = fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, ct := range []domain.CalculatorType{domain.EMI, domain.SIP, domain.SIP, domain.GST, domain.SIP, domain.EMI} {
		_, err := repo.Save(ctx, domain.CalculationRecord{CalculatorType: ct})
		require.NoError(t, err)
	}

	stats, err := repo.AggregateCountsByType(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, domain.SIP, stats[0].Type)
	assert.Equal(t, int64(3), stats[0].Count)
	assert.Equal(t, domain.EMI, stats[1].Type)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 6, 0, time.UTC), stats[1].LastUsedAt)
	assert.Equal(t, domain.GST, stats[2].Type)
}

func TestMemoryRepositoryConcurrentSaves(t *testing.T) {
	repo := NewCalculationRepositoryMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Save(ctx, domain.CalculationRecord{CalculatorType: domain.FD})
		}()
	}
	wg.Wait()

	stats, err := repo.AggregateCountsByType(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(50), stats[0].Count)
}

func TestMemoryRepositoryCancelledContext(t *testing.T) {
	repo := NewCalculationRepositoryMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Save(ctx, domain.CalculationRecord{CalculatorType: domain.FD})
	assert.ErrorIs(t, err, context.Canceled)
}
