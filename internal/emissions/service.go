package emissions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/factor"
	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/store"
)

// UsageRequest is an electricity usage billed by a utility
type UsageRequest struct {
	// UtilityID is the uuid of the utility lookup item
	UtilityID string          `json:"utility_id" binding:"required"`
	ThruDate  string          `json:"thru_date"`
	Usage     decimal.Decimal `json:"usage"`
	UsageUOM  string          `json:"usage_uom" binding:"required"`
}

// Service resolves factors and computes emissions in one call
//
//go:generate mockgen -source=service.go -destination=../mocks/emissions_service.go -package=mocks -mock_names=Service=MockEmissionsService
type Service interface {
	// ActivityEmissions resolves the single factor for activity and applies it
	ActivityEmissions(ctx context.Context, activity domain.Activity) (*domain.EmissionsResult, error)

	// UsageEmissions resolves the grid factor of a utility and applies it to the usage
	UsageEmissions(ctx context.Context, req UsageRequest) (*domain.EmissionsResult, error)
}

type service struct {
	resolver   factor.Resolver
	calculator Calculator
	lookup     store.LookupStore
}

// NewService creates an emissions service
func NewService(resolver factor.Resolver, calculator Calculator, lookup store.LookupStore) Service {
	return &service{
		resolver:   resolver,
		calculator: calculator,
		lookup:     lookup,
	}
}

func (s *service) ActivityEmissions(ctx context.Context, activity domain.Activity) (*domain.EmissionsResult, error) {
	if activity.Level1 == "" && activity.Text == "" {
		return nil, fmt.Errorf("%w: level_1 or text is required", domain.ErrInvalidActivity)
	}

	f, err := s.resolver.ResolveOne(ctx, activity)
	if err != nil {
		return nil, err
	}

	result, err := s.calculator.Compute(f, activity)
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Computed activity emissions",
		zap.String("factorID", f.UUID),
		zap.String("value", result.Value.String()),
		zap.String("uom", result.UOM))

	return result, nil
}

func (s *service) UsageEmissions(ctx context.Context, req UsageRequest) (*domain.EmissionsResult, error) {
	item, err := s.lookup.GetUtilityLookupItem(ctx, req.UtilityID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: utility %s", domain.ErrNoUtilityFactor, req.UtilityID)
	}

	f, err := s.resolver.ResolveByLookupItem(ctx, item, req.ThruDate)
	if err != nil {
		return nil, err
	}

	return s.calculator.ComputeUsage(f, req.Usage, req.UsageUOM)
}
