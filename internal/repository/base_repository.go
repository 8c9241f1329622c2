package repository

import (
	"context"
	"errors"

	appErr "github.com/client-portal/engine/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned (wrapped in an AppError) when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// findOne loads the first row matching query into a new T.
func findOne[T any](ctx context.Context, db *gorm.DB, what string, query string, args ...any) (*T, error) {
	var dest T
	if err := db.WithContext(ctx).Where(query, args...).First(&dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErr.Wrap(ErrNotFound, appErr.CodeNotFound, what+" not found")
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get "+what+" failed")
	}
	return &dest, nil
}

// listOrdered loads every row of T ordered by order.
func listOrdered[T any](ctx context.Context, db *gorm.DB, what, order string) ([]T, error) {
	var out []T
	if err := db.WithContext(ctx).Order(order).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list "+what+" failed")
	}
	return out, nil
}
