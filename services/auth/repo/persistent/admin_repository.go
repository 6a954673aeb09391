package persistent

import (
	"adwallet/services/auth/entity"
	"adwallet/services/auth/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByEmail(email string) (*entity.Admin, error)
	UpdateRefreshToken(id string, refreshToken string) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *entity.Admin) error {
	adminModel := ToAdminModel(admin)
	if adminModel.ID == "" {
		adminModel.ID = uuid.New().String()
	}
	if adminModel.Role == "" {
		adminModel.Role = "admin"
	}
	if err := r.db.Create(adminModel).Error; err != nil {
		return err
	}
	*admin = *ToAdminEntity(adminModel)
	return nil
}

func (r *adminRepository) GetByEmail(email string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	if err := r.db.Where("email = ?", email).First(&adminModel).Error; err != nil {
		return nil, err
	}
	return ToAdminEntity(&adminModel), nil
}

func (r *adminRepository) UpdateRefreshToken(id string, refreshToken string) error {
	return r.db.Model(&model.AdminModel{}).Where("id = ?", id).Update("refresh_token", refreshToken).Error
}
