package repository

import (
	"context"

	"github.com/google/uuid"

	"interest-projector/domain"
)

type ProjectionRepository interface {
	Save(ctx context.Context, p domain.Projection) error
	FindByID(ctx context.Context, id uuid.UUID) (domain.Projection, bool, error)
	List(ctx context.Context) ([]domain.Projection, error)
}
