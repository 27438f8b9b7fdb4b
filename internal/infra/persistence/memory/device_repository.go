package memory

import (
	"context"
	"time"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceRepository struct {
	a access
}

// NewDeviceRepository returns a DeviceRepository backed by store.
func NewDeviceRepository(store *Store) repository.DeviceRepository {
	return &deviceRepository{a: access{store: store}}
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	return repo.a.write(ctx, func(st *state) error {
		if _, ok := st.accounts[device.AccountID]; !ok {
			return repository.ErrAccountNotFound
		}
		if _, exists := st.devices[device.ID]; exists {
			return repository.ErrDuplicateDevice
		}
		st.devices[device.ID] = record[entity.Device]{seq: st.nextSeq(), value: *device}

		return nil
	})
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var out *entity.Device
	err := repo.a.read(ctx, func(st *state) error {
		rec, ok := st.devices[id]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		out = copyDevice(rec.value)

		return nil
	})

	return out, err
}

func (repo *deviceRepository) FindDevicesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Device, error) {
	return repo.find(ctx, func(d entity.Device) bool { return d.AccountID == accountID })
}

func (repo *deviceRepository) FindActiveDevicesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Device, error) {
	return repo.find(ctx, func(d entity.Device) bool { return d.AccountID == accountID && d.IsActive })
}

func (repo *deviceRepository) find(ctx context.Context, match func(entity.Device) bool) ([]*entity.Device, error) {
	var out []*entity.Device
	err := repo.a.read(ctx, func(st *state) error {
		recs := make([]record[entity.Device], 0)
		for _, rec := range st.devices {
			if match(rec.value) {
				recs = append(recs, rec)
			}
		}
		out = sortedValues(recs, newestFirst(func(d entity.Device) int64 { return d.CreatedAt.UnixNano() }), copyDevice)

		return nil
	})

	return out, err
}

func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	return repo.update(ctx, deviceID, func(d *entity.Device) {
		d.FCMToken = fcmToken
		d.IsActive = true
	})
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	return repo.update(ctx, id, func(d *entity.Device) {
		d.IsActive = false
	})
}

func (repo *deviceRepository) update(ctx context.Context, id uuid.UUID, mutate func(d *entity.Device)) error {
	return repo.a.write(ctx, func(st *state) error {
		rec, ok := st.devices[id]
		if !ok {
			return repository.ErrDeviceNotFound
		}
		updated := rec.value
		mutate(&updated)
		updated.UpdatedAt = time.Now()
		st.devices[id] = record[entity.Device]{seq: rec.seq, value: updated}

		return nil
	})
}
