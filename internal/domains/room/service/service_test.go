package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"huddle/config"
	"huddle/infras/otel/mocks"
	roomMocks "huddle/internal/domains/room/mocks"
	"huddle/internal/domains/room/model"
	"huddle/internal/domains/room/model/dto"
	"huddle/internal/domains/room/service"
	cacheMocks "huddle/shared/cache/mocks"
	gDto "huddle/shared/dto"
	"huddle/shared/failure"
	gModel "huddle/shared/model"
	"huddle/shared/timezone"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestRoomService_Seed(t *testing.T) {
	seededNames := []string{"Everest", "Kilimanjaro", "Alps", "Andes", "Rockies", "Himalayas"}

	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "seeds the fixed catalog",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rooms []model.Room) error {
						assert.Len(t, rooms, len(seededNames))
						for i, room := range rooms {
							assert.Equal(t, seededNames[i], room.Name)
							assert.Positive(t, room.Capacity)
							assert.NotEmpty(t, room.ID)
							assert.NotEmpty(t, room.ContactPerson)
						}

						return nil
					})
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Seed(context.Background(), "admin-user-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_SeedTwiceKeepsUpserting(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	// Idempotency lives in the ON CONFLICT clause; the service must hand the
	// repository the same six names on every invocation.
	var firstNames, secondNames []string

	gomock.InOrder(
		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rooms []model.Room) error {
				for _, room := range rooms {
					firstNames = append(firstNames, room.Name)
				}

				return nil
			}),
		mockRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rooms []model.Room) error {
				for _, room := range rooms {
					secondNames = append(secondNames, room.Name)
				}

				return nil
			}),
	)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	assert.NoError(t, svc.Seed(context.Background(), "admin-user-id"))
	assert.NoError(t, svc.Seed(context.Background(), "admin-user-id"))

	assert.Len(t, firstNames, 6)
	assert.Equal(t, firstNames, secondNames)
}

func TestRoomService_Get(t *testing.T) {
	room := model.Room{
		ID:            "room-1",
		Name:          "Everest",
		Capacity:      12,
		Description:   "Large conference room",
		ContactPerson: "Sarah Johnson",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found on cache miss",
			id:   "room-1",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, room.Name, res.Name)
			assert.Equal(t, room.ContactPerson, res.ContactPerson)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	rooms := []model.Room{
		{ID: "room-1", Name: "Everest", Capacity: 12},
		{ID: "room-2", Name: "Alps", Capacity: 6},
	}

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), params, filter).Return(rooms, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background(), params, filter)

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestRoomService_UpdateContact(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "New Contact", fields[model.FieldContactPerson])

						return nil
					})
				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			req := dto.UpdateRoomContactRequest{ContactPerson: "New Contact"}
			err := svc.UpdateContact(context.Background(), req, "room-1", "admin-user-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
