package usecase

import (
	"fmt"
	"io"

	"adwallet/pkg/logger"
	"adwallet/pkg/s3"
	"adwallet/services/ads/entity"
	"adwallet/services/ads/repo/persistent"
)

type AdUseCase interface {
	CreateAd(title, description, mediaURL string, pricePerView, pricePerClick float64) (*entity.Ad, error)
	ListAds() ([]*entity.Ad, error)
	UploadMedia(fileReader io.Reader, fileKey string, contentType string) (string, error)
}

type adUseCase struct {
	adRepo   persistent.AdRepository
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewAdUseCase(adRepo persistent.AdRepository, s3Client *s3.Client, logger *logger.Logger) AdUseCase {
	return &adUseCase{
		adRepo:   adRepo,
		s3Client: s3Client,
		logger:   logger,
	}
}

func (uc *adUseCase) CreateAd(title, description, mediaURL string, pricePerView, pricePerClick float64) (*entity.Ad, error) {
	_, err := uc.adRepo.GetByTitle(title)
	if err == nil {
		return nil, fmt.Errorf("ad with this title already exists")
	}

	ad := &entity.Ad{
		Title:         title,
		Description:   description,
		MediaURL:      mediaURL,
		PricePerView:  pricePerView,
		PricePerClick: pricePerClick,
		IsActive:      true,
	}

	if err := uc.adRepo.Create(ad); err != nil {
		uc.logger.Error("Failed to create ad: %v", err)
		return nil, fmt.Errorf("failed to create ad")
	}

	return ad, nil
}

func (uc *adUseCase) ListAds() ([]*entity.Ad, error) {
	ads, err := uc.adRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list ads: %v", err)
		return nil, fmt.Errorf("failed to fetch ads")
	}

	// An empty catalog is reported as not found, not as an empty success.
	if len(ads) == 0 {
		return nil, fmt.Errorf("no ads found")
	}

	return ads, nil
}

func (uc *adUseCase) UploadMedia(fileReader io.Reader, fileKey string, contentType string) (string, error) {
	if uc.s3Client == nil {
		return "", fmt.Errorf("media storage is not configured")
	}

	mediaURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload ad media: %v", err)
		return "", fmt.Errorf("failed to upload media")
	}

	return mediaURL, nil
}
