package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository implements the generic CRUD contract for any entity
// with a string "id" primary key. Column names passed to GetByAttribute
// are trusted; callers only ever use literal names.
type GormRepository[T any] struct {
	db *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) Add(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(entity).Error
}

func (r *GormRepository[T]) Get(ctx context.Context, id string) (*T, bool, error) {
	var entity T
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &entity, true, nil
}

func (r *GormRepository[T]) GetByAttribute(ctx context.Context, name string, value any) (*T, bool, error) {
	var entity T
	err := r.db.WithContext(ctx).
		Where(name+" = ?", value).
		First(&entity).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &entity, true, nil
}

func (r *GormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *GormRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *GormRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	var entity T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
