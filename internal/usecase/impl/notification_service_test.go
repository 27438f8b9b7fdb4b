package impl

import (
	"context"
	"fmt"
	"testing"

	"curator/internal/domain/entity"
	"curator/internal/domain/service"
	mockRepo "curator/internal/mocks/repository"
	mockService "curator/internal/mocks/service"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)

	return notificationServiceFixtures{
		service:         NewNotificationService(deviceRepo, notificationSvc, newDiscardLogger()),
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func newSubmittedEvent(accountID uuid.UUID) *service.ResponseSubmittedEvent {
	return &service.ResponseSubmittedEvent{
		ResponseID:          uuid.NewString(),
		QuestionnaireID:     uuid.NewString(),
		QuestionnaireTitle:  "Cheese finder",
		AccountID:           accountID.String(),
		RecommendationCount: 3,
	}
}

func makeDevices(accountID uuid.UUID, n int) []*entity.Device {
	devices := make([]*entity.Device, 0, n)
	for i := range n {
		devices = append(devices, &entity.Device{
			ID:        uuid.New(),
			AccountID: accountID,
			FCMToken:  fmt.Sprintf("token-%d", i),
			IsActive:  true,
		})
	}

	return devices
}

func TestNotificationService_NotifyResponseSubmitted(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	accountID := uuid.New()
	devices := makeDevices(accountID, 2)
	event := newSubmittedEvent(accountID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, accountID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token-0", "token-1"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "New response for Cheese finder" &&
				msg.Body == "A customer received 3 recommendations." &&
				msg.Data["response_id"] == event.ResponseID &&
				msg.Data["questionnaire_id"] == event.QuestionnaireID
		})).
		Return(&service.PushResult{Sent: 1, Failed: 1, InvalidTokens: []string{"token-1"}}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, devices[1].ID).Return(nil)

	require.NoError(t, fx.service.NotifyResponseSubmitted(ctx, event))
}

func TestNotificationService_NotifyResponseSubmitted_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, accountID).Return([]*entity.Device{}, nil)

	require.NoError(t, fx.service.NotifyResponseSubmitted(ctx, newSubmittedEvent(accountID)))
}

func TestNotificationService_NotifyResponseSubmitted_Batches(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	accountID := uuid.New()
	devices := makeDevices(accountID, service.MaxBatchTokens+1)

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, accountID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxBatchTokens }), mock.Anything).
		Return(nil, errors.New("quota exceeded")).
		Once()
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{fmt.Sprintf("token-%d", service.MaxBatchTokens)}, mock.Anything).
		Return(&service.PushResult{Sent: 1}, nil).
		Once()

	// One batch got through, so the event is done.
	require.NoError(t, fx.service.NotifyResponseSubmitted(ctx, newSubmittedEvent(accountID)))
}

func TestNotificationService_NotifyResponseSubmitted_AllBatchesFail(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, accountID).Return(makeDevices(accountID, 1), nil)
	fx.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("firebase unavailable"))

	err := fx.service.NotifyResponseSubmitted(ctx, newSubmittedEvent(accountID))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firebase unavailable")
	assert.NotErrorIs(t, err, usecase.ErrInvalidEvent)
}

func TestResponsePushMessage_NamesCustomer(t *testing.T) {
	event := newSubmittedEvent(uuid.New())
	event.CustomerEmail = "fan@example.com"

	msg := responsePushMessage(event)

	assert.Equal(t, "fan@example.com received 3 recommendations.", msg.Body)
	assert.Equal(t, "response_submitted", msg.Data["type"])
}

func TestNotificationService_NotifyResponseSubmitted_InvalidEvent(t *testing.T) {
	fx := createTestNotificationService(t)

	err := fx.service.NotifyResponseSubmitted(context.Background(), &service.ResponseSubmittedEvent{AccountID: "not-a-uuid"})
	assert.ErrorIs(t, err, usecase.ErrInvalidEvent)

	err = fx.service.NotifyResponseSubmitted(context.Background(), nil)
	assert.ErrorIs(t, err, usecase.ErrInvalidEvent)
}
