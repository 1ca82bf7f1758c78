package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"huddle/config"
	"huddle/infras/otel/mocks"
	bookingMocks "huddle/internal/domains/booking/mocks"
	"huddle/internal/domains/booking/model"
	"huddle/internal/domains/booking/model/dto"
	"huddle/internal/domains/booking/service"
	eventMocks "huddle/internal/events/mocks"
	cacheMocks "huddle/shared/cache/mocks"
	"huddle/shared/failure"
)

type fixture struct {
	svc       service.Booking
	repo      *bookingMocks.MockBooking
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return fixture{
		svc:       service.New(mockRepo, cfg, mockCache, mockOtel, mockPublisher),
		repo:      mockRepo,
		cache:     mockCache,
		publisher: mockPublisher,
	}
}

// expectInvalidation returns a wait func that blocks until both cache
// prefixes have been cleared by the post-mutation goroutine.
func expectInvalidation(f fixture) func(t *testing.T) {
	cleared := make(chan struct{}, 2)

	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) error {
			cleared <- struct{}{}

			return nil
		}).
		Times(2)

	return func(t *testing.T) {
		t.Helper()

		for range 2 {
			select {
			case <-cleared:
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for cache invalidation")
			}
		}
	}
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:    "room-1",
		StartTime: 1747216800000,
		EndTime:   1747220400000,
		Title:     "Sprint planning",
	}

	t.Run("successful creation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			InsertIfFree(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, "user-1", booking.UserID)
				assert.Equal(t, req.RoomID, booking.RoomID)
				assert.NotEmpty(t, booking.ID)

				return nil
			})
		f.publisher.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).Return(nil)
		wait := expectInvalidation(f)

		res, err := f.svc.Create(context.Background(), req, "user-1")

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		wait(t)
	})

	t.Run("conflicting slot", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			InsertIfFree(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("time slot already booked"))

		_, err := f.svc.Create(context.Background(), req, "user-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unauthenticated caller", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), req, "")

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			InsertIfFree(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := f.svc.Create(context.Background(), req, "user-1")

		assert.Error(t, err)
	})
}

func TestBookingService_GetMine(t *testing.T) {
	t.Run("anonymous caller gets an empty list", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.GetMine(context.Background(), "")

		assert.NoError(t, err)
		assert.NotNil(t, res.Bookings)
		assert.Empty(t, res.Bookings)
	})

	t.Run("lists bookings joined with rooms", func(t *testing.T) {
		f := newFixture(t)

		bookings := []model.BookingWithRoom{
			{
				Booking:  model.Booking{ID: "booking-2", RoomID: "room-1", UserID: "user-1", StartTime: 2000, EndTime: 3000, Title: "Later"},
				RoomName: "Everest",
			},
			{
				Booking:  model.Booking{ID: "booking-1", RoomID: "room-1", UserID: "user-1", StartTime: 1000, EndTime: 1500, Title: "Earlier"},
				RoomName: "Everest",
			},
		}

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().GetAllWithRoom(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetMine(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.Equal(t, "booking-2", res.Bookings[0].ID)
		assert.Equal(t, "Everest", res.Bookings[0].RoomName)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().GetAllWithRoom(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.GetMine(context.Background(), "user-1")

		assert.Error(t, err)
	})
}

func TestBookingService_GetForRoom(t *testing.T) {
	f := newFixture(t)

	bookings := []model.Booking{
		{ID: "booking-1", RoomID: "room-1", StartTime: 1000, EndTime: 1500},
		{ID: "booking-2", RoomID: "room-1", StartTime: 2000, EndTime: 2500},
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.GetForRoom(context.Background(), "room-1", 0, 3000)

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
}

func TestBookingService_GetForRoomCacheKeyIsDigested(t *testing.T) {
	f := newFixture(t)

	var keys []string

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ any) error {
			keys = append(keys, key)

			return errors.New("cache miss")
		}).
		Times(2)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{}, nil).Times(2)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := f.svc.GetForRoom(context.Background(), "room-1", 0, 3000)
	assert.NoError(t, err)

	_, err = f.svc.GetForRoom(context.Background(), "room-1", 0, 9000)
	assert.NoError(t, err)

	// The range is folded into a fixed-width digest instead of raw millis, so
	// the per-room key space stays bounded while distinct ranges still cache
	// separately.
	assert.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
	for _, key := range keys {
		assert.Regexp(t, `^booking:room:room-1:[0-9a-f]{1,16}$`, key)
	}
}

func TestBookingService_Cancel(t *testing.T) {
	owned := model.Booking{ID: "booking-1", RoomID: "room-1", UserID: "user-1", StartTime: 1000, EndTime: 2000}

	t.Run("owner cancels", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().BookingCancelled(gomock.Any(), owned).Return(nil)
		wait := expectInvalidation(f)

		err := f.svc.Cancel(context.Background(), "booking-1", "user-1")

		assert.NoError(t, err)
		wait(t)
	})

	t.Run("non-owner is rejected and the booking remains", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)

		err := f.svc.Cancel(context.Background(), "booking-1", "someone-else")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.Cancel(context.Background(), "missing", "user-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("unauthenticated caller", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Cancel(context.Background(), "booking-1", "")

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}
