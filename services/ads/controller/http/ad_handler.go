package http

import (
	"fmt"
	"net/http"
	"path/filepath"

	"adwallet/pkg/logger"
	"adwallet/pkg/response"
	"adwallet/services/ads/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdHandler struct {
	adUseCase          usecase.AdUseCase
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewAdHandler(adUseCase usecase.AdUseCase, interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *AdHandler {
	return &AdHandler{
		adUseCase:          adUseCase,
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type CreateAdRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	MediaURL      string  `json:"mediaUrl" binding:"required,url"`
	PricePerView  float64 `json:"pricePerView" binding:"gte=0"`
	PricePerClick float64 `json:"pricePerClick" binding:"gte=0"`
}

type ClickAdRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// CreateAd godoc
// @Summary      Create a new ad
// @Description  Create an ad with pricing; counters start at zero
// @Tags         ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAdRequest true "Ad data"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /ads/create [post]
func (h *AdHandler) CreateAd(c *gin.Context) {
	var req CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	ad, err := h.adUseCase.CreateAd(req.Title, req.Description, req.MediaURL, req.PricePerView, req.PricePerClick)
	if err != nil {
		if err.Error() == "ad with this title already exists" {
			response.Error(c, http.StatusBadRequest, "Ad with this title already exists.")
			return
		}
		h.logger.Error("Failed to create ad: %v", err)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Created(c, "Ad created successfully", ad)
}

// ViewAd godoc
// @Summary      Record an ad view
// @Description  Increment the ad's view counter and return the updated ad
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        adId path string true "Ad ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /ads/view/{adId} [get]
func (h *AdHandler) ViewAd(c *gin.Context) {
	adID := c.Param("adId")

	ad, err := h.interactionUseCase.RecordView(adID)
	if err != nil {
		if err.Error() == "ad not found" {
			response.Error(c, http.StatusNotFound, "Ad not found")
			return
		}
		h.logger.Error("Failed to record view: %v", err)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c, "Ad view counted successfully", ad)
}

// ClickAd godoc
// @Summary      Record an ad click
// @Description  Increment the ad's click counter and credit the user's wallet by pricePerClick
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        adId path string true "Ad ID"
// @Param        request body ClickAdRequest true "Clicking user"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /ads/click/{adId} [post]
func (h *AdHandler) ClickAd(c *gin.Context) {
	adID := c.Param("adId")

	var req ClickAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.interactionUseCase.RecordClick(adID, req.UserID)
	if err != nil {
		switch err.Error() {
		case "ad not found":
			response.Error(c, http.StatusNotFound, "Ad not found")
		case "user not found":
			response.Error(c, http.StatusNotFound, "User not found")
		default:
			h.logger.Error("Failed to record click: %v", err)
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.OK(c, "Ad clicked and money added to wallet", result)
}

// GetAllAds godoc
// @Summary      List all ads
// @Description  Fetch every ad in the catalog
// @Tags         ads
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /ads/all [get]
func (h *AdHandler) GetAllAds(c *gin.Context) {
	ads, err := h.adUseCase.ListAds()
	if err != nil {
		if err.Error() == "no ads found" {
			response.Error(c, http.StatusNotFound, "No ads found")
			return
		}
		h.logger.Error("Failed to list ads: %v", err)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c, "Ads fetched successfully", ads)
}

// UploadMedia godoc
// @Summary      Upload ad creative
// @Description  Upload an image or video for an ad and return its URL
// @Tags         ads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        media formData file true "Creative file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /ads/media [post]
func (h *AdHandler) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("media")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Media file is required")
		return
	}

	ext := filepath.Ext(file.Filename)
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".mp4", ".webm":
	default:
		response.Error(c, http.StatusBadRequest, "Invalid media format. Only jpg, jpeg, png, gif, mp4, webm are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to process file")
		return
	}
	defer src.Close()

	fileKey := fmt.Sprintf("ads/%s%s", uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	mediaURL, err := h.adUseCase.UploadMedia(src, fileKey, contentType)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c, "Media uploaded successfully", gin.H{"mediaUrl": mediaURL})
}
