package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"huddle/config"
	"huddle/infras/otel"
	"huddle/internal/domains/booking/model"
	"huddle/internal/domains/booking/model/dto"
	"huddle/internal/domains/booking/repository"
	"huddle/internal/events"
	"huddle/shared"
	"huddle/shared/cache"
	"huddle/shared/constant"
	gDto "huddle/shared/dto"
	"huddle/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheMyBookings   = "booking:mine"
	cacheRoomBookings = "booking:room"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (dto.CreateBookingResponse, error)
	GetMine(ctx context.Context, userID string) (dto.GetMyBookingsResponse, error)
	GetForRoom(ctx context.Context, roomID string, startTime, endTime int64) (dto.GetRoomBookingsResponse, error)
	Cancel(ctx context.Context, bookingID, userID string) error
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher events.Publisher) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

// Create persists a booking for the caller. The conflict check and insert
// run atomically in the repository; an overlapping slot surfaces as a 409.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if userID == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	booking := req.ToModel(userID)

	if err = s.repo.InsertIfFree(ctx, booking); err != nil {
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to create booking")

		return res, err //nolint:wrapcheck
	}

	res.ID = booking.ID

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.BookingCreated(c, booking); err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking created event")
		}

		shared.InvalidateCaches(c, s.cache, cacheMyBookings)
		shared.InvalidateCaches(c, s.cache, cacheRoomBookings)
	}()

	return res, nil
}

// GetMine lists the caller's bookings joined with room details, newest first
// by start time. An anonymous caller gets an empty list, never an error.
func (s *serviceImpl) GetMine(ctx context.Context, userID string) (res dto.GetMyBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Bookings = []dto.BookingWithRoomResponse{}

	if userID == constant.Empty {
		return res, nil
	}

	cacheKey := shared.BuildCacheKey(cacheMyBookings, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for my bookings")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, model.FieldStartTime),
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAllWithRoom(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// GetForRoom lists a room's bookings whose start time falls inside the
// requested range, earliest first.
func (s *serviceImpl) GetForRoom(ctx context.Context, roomID string, startTime, endTime int64) (res dto.GetRoomBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetForRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Bookings = []dto.BookingResponse{}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, model.FieldStartTime),
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "start_time_from",
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    startTime,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "start_time_to",
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorLessEq,
				Value:    endTime,
				Table:    model.TableName,
			},
		},
	}

	// Digest the range into the key so arbitrary client-chosen windows cannot
	// grow the key space unbounded.
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheRoomBookings, roomID), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, fmt.Errorf("failed to get room bookings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room bookings to cache")
		}
	}()

	return res, nil
}

// Cancel deletes a booking. Only the owner may cancel; anyone else gets a
// 403 and the booking stays.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if userID == constant.Empty {
		return failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	filter := shared.FilterByID(bookingID, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.UserID != userID {
		log.Warn().Str("booking_id", bookingID).Str("user_id", userID).Msg("cancel attempt by non-owner")

		return failure.Forbidden("only the booking owner can cancel it") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.BookingCancelled(c, booking); err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking cancelled event")
		}

		shared.InvalidateCaches(c, s.cache, cacheMyBookings)
		shared.InvalidateCaches(c, s.cache, cacheRoomBookings)
	}()

	return nil
}
