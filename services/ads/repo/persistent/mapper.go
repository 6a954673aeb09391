package persistent

import (
	"adwallet/services/ads/entity"
	"adwallet/services/ads/model"
)

func ToAdEntity(m *model.AdModel) *entity.Ad {
	if m == nil {
		return nil
	}

	return &entity.Ad{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		MediaURL:      m.MediaURL,
		PricePerView:  m.PricePerView,
		PricePerClick: m.PricePerClick,
		TotalViews:    m.TotalViews,
		TotalClicks:   m.TotalClicks,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToAdModel(e *entity.Ad) *model.AdModel {
	if e == nil {
		return nil
	}

	return &model.AdModel{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		MediaURL:      e.MediaURL,
		PricePerView:  e.PricePerView,
		PricePerClick: e.PricePerClick,
		TotalViews:    e.TotalViews,
		TotalClicks:   e.TotalClicks,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
