package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"huddle/infras/otel"
	"huddle/infras/postgres"
	"huddle/internal/domains/booking/model"
	roomModel "huddle/internal/domains/room/model"
	"huddle/shared/constant"
	gDto "huddle/shared/dto"
	"huddle/shared/failure"
	"huddle/shared/logger"
	gRepo "huddle/shared/repository"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllWithRoom(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingWithRoom, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	InsertIfFree(ctx context.Context, booking model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	withRoom gRepo.Repository[model.BookingWithRoom]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		withRoom:   gRepo.NewRepository[model.BookingWithRoom](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetAllWithRoom(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingWithRoom, error) {
	return repo.withRoom.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

// InsertIfFree persists the booking only if its padded window is free. The
// room row is locked first, which serializes concurrent bookings for the
// same room: of two simultaneous requests for overlapping slots, the second
// observes the first's row and fails with a conflict.
func (repo *repositoryImpl) InsertIfFree(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertIfFree")
	defer scope.End()
	defer scope.TraceIfError(err)

	windowLower, windowUpper := model.ConflictWindow(booking.StartTime, booking.EndTime)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to roll back booking transaction")
		}
	}()

	lockQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 FOR UPDATE",
		roomModel.FieldID, roomModel.TableName, roomModel.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	var roomID string
	if err = tx.GetContext(ctx, &roomID, lockQuery, booking.RoomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = failure.NotFound("room not found")

			return err //nolint:wrapcheck
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room row (%s): %w", model.EntityName, err)
	}

	overlapQuery := fmt.Sprintf("SELECT COUNT(%s) FROM %s WHERE %s = $1 AND %s < $2 AND %s > $3",
		model.FieldID, model.TableName, model.FieldRoomID, model.FieldStartTime, model.FieldEndTime)

	var conflicts int
	if err = tx.GetContext(ctx, &conflicts, overlapQuery, booking.RoomID, windowUpper, windowLower); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check for conflicting bookings: %w", err)
	}

	if conflicts > 0 {
		err = failure.Conflict("time slot already booked")

		return err //nolint:wrapcheck
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}
