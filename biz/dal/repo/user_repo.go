package repo

import (
	"context"
	"errors"

	"iris_manager/be/biz/model/convert"
	"iris_manager/be/biz/model/domain"
	"iris_manager/be/biz/model/storage"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	m := convert.UserDomainToRecord(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(m), nil
}

// MaxEmpID returns the highest emp_id ever stored, 0 for an empty table.
// Soft-deleted rows count: the unique index still holds their ids.
func (r *UserRepository) MaxEmpID(ctx context.Context) (int64, error) {
	var maxID int64
	err := r.db.WithContext(ctx).Unscoped().
		Model(&storage.UserRecord{}).
		Select("COALESCE(MAX(emp_id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID, nil
}

func (r *UserRepository) ExistsEmpID(ctx context.Context, empID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Unscoped().
		Model(&storage.UserRecord{}).
		Where("emp_id = ?", empID).
		Limit(1).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) ExistsByEmailOrCode(ctx context.Context, email, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Unscoped().
		Model(&storage.UserRecord{}).
		Where("email = ? OR code = ?", email, code).
		Limit(1).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) FindByEmpIDAndCode(ctx context.Context, empID int64, code string) (*domain.User, error) {
	return r.first(ctx, "emp_id = ? AND code = ?", empID, code)
}

func (r *UserRepository) FindByRecordIDAndCode(ctx context.Context, recordID uint64, code string) (*domain.User, error) {
	return r.first(ctx, "user_id = ? AND code = ?", recordID, code)
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var ms []*storage.UserRecord
	if err := r.db.WithContext(ctx).Order("user_id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(ms))
	for _, m := range ms {
		users = append(users, convert.UserRecordToDomain(m))
	}
	return users, nil
}

func (r *UserRepository) first(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}
