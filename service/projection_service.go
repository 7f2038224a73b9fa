package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"interest-projector/domain"
	"interest-projector/repository"
)

type ProjectionService struct {
	repo   repository.ProjectionRepository
	cache  repository.CacheRepository
	logger *logrus.Logger
	now    func() time.Time
}

// NewProjectionService creates a new ProjectionService with the given repository and cache.
func NewProjectionService(repo repository.ProjectionRepository,
	cache repository.CacheRepository,
	logger *logrus.Logger,
) *ProjectionService {
	return &ProjectionService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// Calculate validates the input, runs the projection and records it.
func (s *ProjectionService) Calculate(
	ctx context.Context,
	input domain.ProjectionInput,
) (domain.Projection, error) {

	if err := Validate(input); err != nil {
		return domain.Projection{}, err
	}

	stages := input.ResolvedStages()
	result := s.project(ctx, input, stages)

	projection := domain.Projection{
		ID:        uuid.New(),
		CreatedAt: s.now().UTC(),
		Input:     input,
		Result:    result,
		Summary:   domain.SummaryOf(result),
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(ctx, projection); err != nil {
		s.logger.WithError(err).Warn("failed to save projection")
	}

	s.logger.WithFields(logrus.Fields{
		"id":            projection.ID,
		"years":         len(result.Rows),
		"stages":        len(stages),
		"frequency":     input.Frequency.String(),
		"final_balance": result.FinalBalance,
	}).Debug("projection calculated")

	return projection, nil
}

// project runs the engine, going through the cache when one is configured.
func (s *ProjectionService) project(
	ctx context.Context,
	input domain.ProjectionInput,
	stages []domain.Stage,
) domain.ProjectionResult {
	key := CacheKey(input.AnnualRatePercent, input.InitialBalance, stages, input.Frequency)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var result domain.ProjectionResult
			err := json.Unmarshal([]byte(cached), &result)
			if err == nil {
				return result
			}
			s.logger.WithError(err).WithField("key", key).Warn("discarding unreadable cached projection")
		}
	}

	result := Project(input.AnnualRatePercent/100, input.InitialBalance, stages, input.Frequency)

	if s.cache != nil {
		encoded, err := json.Marshal(result)
		if err == nil {
			err = s.cache.Set(ctx, key, string(encoded))
		}
		if err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("failed to cache projection")
		}
	}
	return result
}

// Get returns a previously calculated projection.
func (s *ProjectionService) Get(ctx context.Context, id uuid.UUID) (domain.Projection, error) {
	p, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Projection{}, fmt.Errorf("buscar proyección %s: %w", id, err)
	}
	if !ok {
		return domain.Projection{}, fmt.Errorf("%w: %s", ErrProjectionNotFound, id)
	}
	return p, nil
}

// List returns the calculated projections, newest first.
func (s *ProjectionService) List(ctx context.Context) ([]domain.Projection, error) {
	return s.repo.List(ctx)
}

// Validate checks an input against the accepted ranges. Every returned
// error wraps ErrInvalidInput.
func Validate(input domain.ProjectionInput) error {
	var errs []error

	if !finite(input.AnnualRatePercent) || input.AnnualRatePercent < 0 {
		errs = append(errs, errors.New("tasa inválida"))
	} else if input.AnnualRatePercent > MaxAnnualRatePercent {
		errs = append(errs, fmt.Errorf("tasa de interés excede el máximo permitido de %.2f%%", MaxAnnualRatePercent))
	}
	if !finite(input.InitialBalance) || input.InitialBalance < 0 {
		errs = append(errs, errors.New("balance inicial inválido"))
	} else if input.InitialBalance > MaxAmount {
		errs = append(errs, fmt.Errorf("balance inicial excede el máximo permitido de $%.2f", MaxAmount))
	}
	if input.TotalYears < MinYears || input.TotalYears > MaxYears {
		errs = append(errs, fmt.Errorf("años de inversión deben estar entre %d y %d", MinYears, MaxYears))
	}
	if !input.Frequency.Valid() {
		errs = append(errs, domain.ErrInvalidFrequency)
	}

	if len(input.Stages) == 0 {
		if err := validateContribution(input.Contribution); err != nil {
			errs = append(errs, err)
		}
	} else {
		errs = append(errs, validateStages(input.Stages, input.TotalYears)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
}

func validateStages(stages []domain.Stage, totalYears int) []error {
	if len(stages) > MaxStages {
		return []error{fmt.Errorf("número de etapas excede el máximo de %d", MaxStages)}
	}

	var errs []error
	sum := 0
	for i, stage := range stages {
		if stage.DurationYears < 1 {
			errs = append(errs, fmt.Errorf("etapa %d: duración inválida", i+1))
		}
		if err := validateContribution(stage.ContributionAmount); err != nil {
			errs = append(errs, fmt.Errorf("etapa %d: %w", i+1, err))
		}
		sum += stage.DurationYears
	}
	if len(errs) == 0 && sum != totalYears {
		errs = append(errs, fmt.Errorf("%w: etapas suman %d años, se declararon %d", ErrStageSumMismatch, sum, totalYears))
	}
	return errs
}

func validateContribution(amount float64) error {
	if !finite(amount) || amount < 0 {
		return errors.New("aportación inválida")
	}
	if amount > MaxAmount {
		return fmt.Errorf("aportación excede el máximo permitido de $%.2f", MaxAmount)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CacheKey identifies a projection by its engine inputs. The rate is the
// percentage as submitted.
func CacheKey(ratePercent, initialBalance float64, stages []domain.Stage, freq domain.Frequency) string {
	var b strings.Builder
	b.WriteString(cacheKeyPrefix)
	b.WriteString(strconv.FormatFloat(ratePercent, 'g', -1, 64))
	b.WriteByte(':')
	b.WriteString(strconv.FormatFloat(initialBalance, 'g', -1, 64))
	b.WriteByte(':')
	b.WriteString(freq.String())
	for _, st := range stages {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(st.DurationYears))
		b.WriteByte('x')
		b.WriteString(strconv.FormatFloat(st.ContributionAmount, 'g', -1, 64))
	}
	return b.String()
}
