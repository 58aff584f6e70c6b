package employee

import (
	"context"

	"github.com/aakash8113/DayFlow/internal/middleware"
)

type identityLoader struct {
	repo Repository
}

// NewIdentityLoader adapts the employee repository for the auth middleware.
func NewIdentityLoader(repo Repository) middleware.IdentityLoader {
	return &identityLoader{repo: repo}
}

func (l *identityLoader) LoadIdentity(ctx context.Context, employeeID string) (middleware.Identity, error) {
	e, err := l.repo.FindByID(ctx, employeeID)
	if err != nil {
		return middleware.Identity{}, err
	}
	return middleware.Identity{
		ID:       e.ID.String(),
		Email:    e.Email,
		Role:     e.Role,
		IsActive: e.IsActive,
	}, nil
}
