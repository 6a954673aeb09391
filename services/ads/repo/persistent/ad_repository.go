package persistent

import (
	"adwallet/services/ads/entity"
	"adwallet/services/ads/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdRepository interface {
	Create(ad *entity.Ad) error
	GetByTitle(title string) (*entity.Ad, error)
	List() ([]*entity.Ad, error)
}

type adRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) Create(ad *entity.Ad) error {
	adModel := ToAdModel(ad)
	if adModel.ID == "" {
		adModel.ID = uuid.New().String()
	}
	adModel.TotalViews = 0
	adModel.TotalClicks = 0
	adModel.IsActive = true
	if err := r.db.Create(adModel).Error; err != nil {
		return err
	}
	*ad = *ToAdEntity(adModel)
	return nil
}

func (r *adRepository) GetByTitle(title string) (*entity.Ad, error) {
	var adModel model.AdModel
	if err := r.db.Where("title = ?", title).First(&adModel).Error; err != nil {
		return nil, err
	}
	return ToAdEntity(&adModel), nil
}

func (r *adRepository) List() ([]*entity.Ad, error) {
	var adModels []model.AdModel
	if err := r.db.Order("created_at DESC").Find(&adModels).Error; err != nil {
		return nil, err
	}

	ads := make([]*entity.Ad, len(adModels))
	for i := range adModels {
		ads[i] = ToAdEntity(&adModels[i])
	}
	return ads, nil
}
