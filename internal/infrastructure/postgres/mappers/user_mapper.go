package mappers

import (
	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/models"
)

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:         user.ID,
		Username:   user.Handle,
		FullName:   user.FullName,
		IsBanned:   user.IsBanned,
		IsAdmin:    user.IsAdmin,
		LastActive: user.LastActive,
		CreatedAt:  user.CreatedAt,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:         model.ID,
		Handle:     model.Username,
		FullName:   model.FullName,
		IsBanned:   model.IsBanned,
		IsAdmin:    model.IsAdmin,
		LastActive: model.LastActive,
		CreatedAt:  model.CreatedAt,
	}
}
