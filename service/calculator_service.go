package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"

	"fincalc/domain"
	"fincalc/repository"
	"fincalc/validation"
)

type CalculatorService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
}

// NewCalculatorService creates a CalculatorService. cache may be nil, in
// which case every request is computed.
func NewCalculatorService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *CalculatorService {
	return &CalculatorService{repo: repo, cache: cache}
}

// Supports reports whether calculatorType names a known calculator.
func Supports(calculatorType string) bool {
	_, ok := calculators[domain.CalculatorType(calculatorType)]
	return ok
}

// Calculate validates inputs, runs the calculator and stores the outcome.
//
// Unknown types fail with domain.ErrInvalidCalculatorType. Rule violations and
// cross-field failures return a *domain.ValidationError, and an XIRR that
// does not converge returns a *domain.DivergenceError; both match
// domain.ErrValidation. A failure to store the result is logged and reported
// in the outcome but does not fail the call.
func (s *CalculatorService) Calculate(
	ctx context.Context,
	calculatorType string,
	inputs domain.Inputs,
) (domain.CalculationOutcome, error) {
	ct := domain.CalculatorType(calculatorType)
	calc, ok := calculators[ct]
	if !ok {
		return domain.CalculationOutcome{}, domain.ErrInvalidCalculatorType
	}
	if inputs == nil {
		inputs = domain.Inputs{}
	}

	if err := validation.ValidateType(ct, inputs); err != nil {
		return domain.CalculationOutcome{}, err
	}
	run := func() (domain.Result, error) { return calc.compute(inputs) }
	switch {
	case calc.prepare != nil:
		var err error
		if run, err = calc.prepare(inputs); err != nil {
			return domain.CalculationOutcome{}, err
		}
	case calc.check != nil:
		if err := calc.check(inputs); err != nil {
			return domain.CalculationOutcome{}, err
		}
	}

	key, cacheable := cacheKey(ct, inputs)
	result, hit := s.cached(ctx, key, cacheable)
	if !hit {
		var err error
		result, err = run()
		if err != nil {
			return domain.CalculationOutcome{}, err
		}
		s.store(ctx, key, cacheable, result)
	}

	outcome := domain.CalculationOutcome{Inputs: inputs, Result: result}

	// Guardar el resultado (no crítico si falla)
	id, err := s.repo.Save(ctx, domain.CalculationRecord{
		CalculatorType: ct,
		Inputs:         inputs,
		Result:         result,
	})
	if err != nil {
		log.Printf("Warning: failed to save %s calculation: %v", ct, err)
		outcome.PersistenceError = err.Error()
	} else {
		outcome.CalculationID = id
	}

	return outcome, nil
}

// cacheKey derives a stable key from the type and the canonical JSON of the
// inputs. encoding/json sorts map keys, so equal inputs give equal keys.
func cacheKey(ct domain.CalculatorType, inputs domain.Inputs) (string, bool) {
	raw, err := json.Marshal(inputs)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(raw)
	return cacheKeyPrefix + string(ct) + ":" + hex.EncodeToString(sum[:]), true
}

func (s *CalculatorService) cached(ctx context.Context, key string, cacheable bool) (domain.Result, bool) {
	if s.cache == nil || !cacheable {
		return nil, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}

	var result domain.Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Warning: discarding unreadable cache entry %s: %v", key, err)
		return nil, false
	}
	return result, true
}

func (s *CalculatorService) store(ctx context.Context, key string, cacheable bool, result domain.Result) {
	if s.cache == nil || !cacheable {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to encode result for cache: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		log.Printf("Warning: failed to cache result: %v", err)
	}
}

// ValidationRules returns the static rules of calculatorType.
func (s *CalculatorService) ValidationRules(calculatorType string) ([]domain.ValidationRule, error) {
	rules, ok := validation.Rules(domain.CalculatorType(calculatorType))
	if !ok {
		return nil, domain.ErrInvalidCalculatorType
	}
	return rules, nil
}

// History returns the most recent calculations of calculatorType, or of every
// type when it is empty. limit defaults to DefaultHistoryLimit and is capped
// at MaxHistoryLimit.
func (s *CalculatorService) History(
	ctx context.Context,
	calculatorType string,
	limit int,
) ([]domain.CalculationRecord, error) {
	if calculatorType != "" && !Supports(calculatorType) {
		return nil, domain.ErrInvalidCalculatorType
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.FindRecent(ctx, domain.CalculatorType(calculatorType), limit)
}

// Stats returns usage counts per calculator type, most used first.
func (s *CalculatorService) Stats(ctx context.Context) ([]domain.TypeStats, error) {
	return s.repo.AggregateCountsByType(ctx)
}
