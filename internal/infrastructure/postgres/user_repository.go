package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	m := userModelFromDomain(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*u = *m.ToDomain()
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var m UserModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("user")
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m UserModel
	err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("user")
	}
	if err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	users := make([]entity.User, 0, len(models))
	for i := range models {
		users = append(users, *models[i].ToDomain())
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, upd repository.UserUpdate) (*entity.User, error) {
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Email != nil {
		fields["email"] = *upd.Email
	}
	if upd.Password != nil {
		fields["password"] = *upd.Password
	}
	if upd.Role != nil {
		fields["role"] = string(*upd.Role)
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NotFound("user")
		}
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("user")
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
