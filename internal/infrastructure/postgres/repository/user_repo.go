package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/mappers"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	if err := r.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var user models.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&user), nil
}

func (r *DefaultUserRepository) GetUserByHandle(ctx context.Context, handle string) (*domain.User, error) {
	var user models.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "username = ?", handle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&user), nil
}

func (r *DefaultUserRepository) TouchUser(ctx context.Context, id int64, handle, fullName string) error {
	updates := map[string]interface{}{
		"last_active": time.Now().UTC(),
	}
	if handle != "" {
		updates["username"] = handle
	}
	if fullName != "" {
		updates["full_name"] = fullName
	}
	return r.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *DefaultUserRepository) SetBanned(ctx context.Context, id int64, banned bool) error {
	res := r.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("is_banned", banned)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *DefaultUserRepository) SetAdmin(ctx context.Context, id int64, admin bool) error {
	res := r.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("is_admin", admin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *DefaultUserRepository) ListUserIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DefaultUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
