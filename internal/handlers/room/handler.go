package room

import (
	"net/http"

	"huddle/infras/otel"
	"huddle/internal/domains/room/model"
	"huddle/internal/domains/room/model/dto"
	"huddle/internal/domains/room/service"
	"huddle/shared"
	"huddle/shared/constant"
	gDto "huddle/shared/dto"
	"huddle/shared/validator"
	"huddle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Post("/seed", handler.SeedRooms)
		routerGroup.Patch("/{id}/contact", handler.UpdateRoomContact)
	})
}

// GetRooms lists the meeting rooms.
// @Summary Get all rooms
// @Description Retrieve all meeting rooms with optional filtering and pagination.
// @Tags Room
// @Produce json
// @Param name query string false "Filter by name"
// @Param min_capacity query integer false "Minimum capacity"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    request.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if raw := request.URL.Query().Get("min_capacity"); raw != constant.Empty {
		minCapacity, err := shared.ConvertStringToInt(raw)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    minCapacity,
			Table:    model.TableName,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(writer, http.StatusOK, rooms)
}

// GetRoomByID retrieves a single room.
// @Summary Get a room by ID
// @Description Retrieve a meeting room by its unique identifier.
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(writer, http.StatusOK, room)
}

// SeedRooms inserts the default room catalog.
// @Summary Seed the room catalog
// @Description Insert the built-in set of meeting rooms. Rooms that already exist are left untouched.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Message "Rooms seeded successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/seed [post]
// @Security BearerAuth
func (handler *Handler) SeedRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SeedRooms")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Seed(ctx, user); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to seed rooms")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rooms seeded successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Rooms seeded successfully")
}

// UpdateRoomContact changes who is responsible for a room.
// @Summary Update a room's contact person
// @Description Update the contact person of an existing meeting room.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomContactRequest true "Update Room Contact Request"
// @Success 200 {object} response.Message "Room contact updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/contact [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomContact")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateRoomContactRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.UpdateContact(ctx, req, id, user); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room contact")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room contact updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Room contact updated successfully")
}
