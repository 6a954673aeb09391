package persistent

import (
	"adwallet/services/auth/entity"
	"adwallet/services/auth/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email,
		Password:      m.Password,
		Role:          entity.UserRole(m.Role),
		WalletBalance: m.WalletBalance,
		RefreshToken:  m.RefreshToken,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:            e.ID,
		Username:      e.Username,
		Email:         e.Email,
		Password:      e.Password,
		Role:          string(e.Role),
		WalletBalance: e.WalletBalance,
		RefreshToken:  e.RefreshToken,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToAdminEntity(m *model.AdminModel) *entity.Admin {
	if m == nil {
		return nil
	}

	return &entity.Admin{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		Password:     m.Password,
		Role:         m.Role,
		RefreshToken: m.RefreshToken,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToAdminModel(e *entity.Admin) *model.AdminModel {
	if e == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           e.ID,
		Username:     e.Username,
		Email:        e.Email,
		Password:     e.Password,
		Role:         e.Role,
		RefreshToken: e.RefreshToken,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
