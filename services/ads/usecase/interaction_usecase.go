package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adwallet/pkg/logger"
	"adwallet/pkg/queue"
	"adwallet/services/ads/entity"
	"adwallet/services/ads/repo/persistent"

	"github.com/redis/go-redis/v9"
)

type InteractionUseCase interface {
	RecordView(adID string) (*entity.Ad, error)
	RecordClick(adID, userID string) (*entity.ClickResult, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	redisClient     *redis.Client
	queueClient     *queue.Client
	logger          *logger.Logger
}

func NewInteractionUseCase(
	interactionRepo persistent.InteractionRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		redisClient:     redisClient,
		queueClient:     queueClient,
		logger:          logger,
	}
}

func (uc *interactionUseCase) RecordView(adID string) (*entity.Ad, error) {
	ad, err := uc.interactionRepo.RecordView(adID)
	if err != nil {
		if errors.Is(err, persistent.ErrAdNotFound) {
			return nil, fmt.Errorf("ad not found")
		}
		uc.logger.Error("Failed to record view: %v", err)
		return nil, fmt.Errorf("failed to record view: %w", err)
	}

	uc.mirrorCounter("ad:views:"+adID, ad.TotalViews)
	uc.publishEvent("view", adID, "")

	return ad, nil
}

func (uc *interactionUseCase) RecordClick(adID, userID string) (*entity.ClickResult, error) {
	result, err := uc.interactionRepo.RecordClick(adID, userID)
	if err != nil {
		if errors.Is(err, persistent.ErrAdNotFound) {
			return nil, fmt.Errorf("ad not found")
		}
		if errors.Is(err, persistent.ErrUserNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		uc.logger.Error("Failed to record click: %v", err)
		return nil, fmt.Errorf("failed to record click: %w", err)
	}

	uc.mirrorCounter("ad:clicks:"+adID, result.TotalClicks)
	uc.publishEvent("click", adID, userID)

	return result, nil
}

// mirrorCounter keeps a Redis copy of the engagement counter for cheap reads.
// Cache failures never fail the request.
func (uc *interactionUseCase) mirrorCounter(key string, value int64) {
	if uc.redisClient == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := uc.redisClient.Set(ctx, key, value, 0).Err(); err != nil {
		uc.logger.Warn("Failed to mirror counter %s: %v", key, err)
	}
}

// publishEvent emits an engagement event for downstream analytics, best
// effort and off the request path.
func (uc *interactionUseCase) publishEvent(eventType, adID, userID string) {
	if uc.queueClient == nil {
		return
	}

	go func() {
		event := map[string]interface{}{
			"type":        eventType,
			"ad_id":       adID,
			"occurred_at": time.Now().UTC().Format(time.RFC3339),
		}
		if userID != "" {
			event["user_id"] = userID
		}

		if err := uc.queueClient.PublishEngagementEvent(event); err != nil {
			uc.logger.Error("[ENGAGEMENT QUEUE] Failed to publish %s event for ad %s: %v", eventType, adID, err)
		}
	}()
}
