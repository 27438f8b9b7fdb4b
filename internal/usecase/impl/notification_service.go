package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/errors"
	"curator/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// NotifyResponseSubmitted tells the questionnaire owner about a new response on every active device.
func (s *notificationService) NotifyResponseSubmitted(ctx context.Context, event *service.ResponseSubmittedEvent) error {
	if event == nil {
		return errors.Wrap(usecase.ErrInvalidEvent, "event is nil")
	}

	accountID, err := uuid.Parse(event.AccountID)
	if err != nil {
		return errors.Wrapf(usecase.ErrInvalidEvent, "invalid account id %q", event.AccountID)
	}

	devices, err := s.deviceRepo.FindActiveDevicesByAccount(ctx, accountID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}

	// If no devices, return early
	if len(devices) == 0 {
		s.log(ctx).Debug("No active devices for account", slog.String("account_id", event.AccountID))

		return nil
	}

	// Collect FCM tokens
	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.Device, len(devices)) // token -> device mapping
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	msg := responsePushMessage(event)

	var (
		totalSent     int
		totalFailed   int
		failedBatches int
		batches       int
		invalidTokens []string
		lastErr       error
	)

	for batch := range slices.Chunk(tokens, service.MaxBatchTokens) {
		batches++

		result, err := s.notificationSvc.SendMulticast(ctx, batch, msg)
		if err != nil {
			// Later batches may still get through.
			s.log(ctx).Error("Failed to send notification batch", slog.Int("size", len(batch)), slog.Any("error", err))
			totalFailed += len(batch)
			failedBatches++
			lastErr = err

			continue
		}

		totalSent += result.Sent
		totalFailed += result.Failed
		invalidTokens = append(invalidTokens, result.InvalidTokens...)
	}

	// Tokens FCM reports as invalid never recover.
	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
				s.log(ctx).Warn("Failed to deactivate invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}

	s.log(ctx).Info("Response notification sent",
		slog.String("response_id", event.ResponseID),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	// Nothing was delivered, so let the caller retry.
	if failedBatches == batches {
		return errors.Wrap(lastErr, "all notification batches failed")
	}

	return nil
}

// responsePushMessage is "New response for <title>" with the recommendation count in the body.
func responsePushMessage(event *service.ResponseSubmittedEvent) *service.PushMessage {
	who := "A customer"
	if event.CustomerEmail != "" {
		who = event.CustomerEmail
	}

	return &service.PushMessage{
		Title: "New response for " + event.QuestionnaireTitle,
		Body:  who + " received " + strconv.Itoa(event.RecommendationCount) + " recommendations.",
		Data: map[string]string{
			"type":             "response_submitted",
			"response_id":      event.ResponseID,
			"questionnaire_id": event.QuestionnaireID,
		},
	}
}
