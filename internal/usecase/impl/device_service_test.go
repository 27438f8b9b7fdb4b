package impl

import (
	"context"
	"testing"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	mockRepo "curator/internal/mocks/repository"
	"curator/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByAccount(ctx, accountID).
		Return([]*entity.Device{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, accountID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, accountID, device.AccountID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.Device{
		ID:        deviceID,
		AccountID: accountID,
		FCMToken:  "old-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		IsActive:  false,
	}
	updatedDevice := &entity.Device{
		ID:        deviceID,
		AccountID: accountID,
		FCMToken:  "new-fcm-token",
		DeviceID:  "device-123",
		Platform:  "ios",
		IsActive:  true,
	}

	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, accountID).Return([]*entity.Device{existingDevice}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "new-fcm-token").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, accountID, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_InvalidInput(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "token",
		DeviceID: "device-123",
		Platform: "windows-phone",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, accountID).Return(nil, errors.New("db error"))

	_, err := fx.service.RegisterDevice(ctx, accountID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find devices by account")
}

func TestDeviceService_GetAccountDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	accountID := uuid.New()
	devices := []*entity.Device{{ID: uuid.New(), AccountID: accountID, IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByAccount(ctx, accountID).Return(devices, nil)

	got, err := fx.service.GetAccountDevices(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	deviceID := uuid.New()

	t.Run("owner deactivates", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, AccountID: accountID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, accountID, deviceID))
	})

	t.Run("other account is forbidden", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, AccountID: uuid.New()}, nil)

		err := fx.service.DeactivateDevice(ctx, accountID, deviceID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.DeactivateDevice(ctx, accountID, deviceID)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}
