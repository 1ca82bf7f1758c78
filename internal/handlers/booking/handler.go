package booking

import (
	"math"
	"net/http"

	"huddle/infras/jwt"
	"huddle/infras/otel"
	"huddle/internal/domains/booking/model/dto"
	"huddle/internal/domains/booking/service"
	"huddle/shared"
	"huddle/shared/constant"
	"huddle/shared/validator"
	"huddle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	jwtService jwt.JWT
	otel       otel.Otel
}

func New(service service.Booking, jwtService jwt.JWT, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		jwtService: jwtService,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/mine", handler.GetMyBookings)
		routerGroup.Get("/room/{id}", handler.GetRoomBookings)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})
}

// CreateBooking reserves a room for a time window.
// @Summary Create a booking
// @Description Reserve a room for a time window. Rejected with 409 when the slot collides with an existing booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Create(ctx, req, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMyBookings lists the caller's bookings joined with room details.
// @Summary List my bookings
// @Description List the caller's bookings, newest first by start time. Anonymous callers get an empty list.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetMyBookingsResponse] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mine [get]
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	res, err := handler.service.GetMine(ctx, handler.callerID(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomBookings lists a room's bookings with a start time in the range.
// @Summary List bookings for a room
// @Description List a room's bookings whose start time falls inside the requested epoch-millisecond range.
// @Tags Booking
// @Produce json
// @Param id path string true "Room ID"
// @Param start_time query integer false "Range start (epoch ms)"
// @Param end_time query integer false "Range end (epoch ms)"
// @Success 200 {object} response.Data[dto.GetRoomBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/room/{id} [get]
func (handler *Handler) GetRoomBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomBookings")
	defer scope.End()

	roomID := chi.URLParam(request, constant.RequestParamID)

	startTime := int64(0)
	if raw := request.URL.Query().Get(constant.RequestParamStartTime); raw != constant.Empty {
		parsed, err := shared.ConvertStringToInt64(raw)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		startTime = parsed
	}

	endTime := int64(math.MaxInt64)
	if raw := request.URL.Query().Get(constant.RequestParamEndTime); raw != constant.Empty {
		parsed, err := shared.ConvertStringToInt64(raw)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		endTime = parsed
	}

	res, err := handler.service.GetForRoom(ctx, roomID, startTime, endTime)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking deletes a booking owned by the caller.
// @Summary Cancel a booking
// @Description Cancel a booking. Only the owner may cancel; other callers get 403.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := handler.service.Cancel(ctx, id, user); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}

// callerID resolves the caller on endpoints that skip the auth middleware.
// The bearer token, when present, is parsed best-effort so the listing can
// stay public while remaining identity-aware.
func (handler *Handler) callerID(request *http.Request) string {
	if user, ok := request.Context().Value(constant.ContextKeyUserID).(string); ok && user != constant.Empty {
		return user
	}

	authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == constant.Empty {
		return constant.Empty
	}

	token, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return constant.Empty
	}

	claims, err := handler.jwtService.ValidateToken(request.Context(), token, jwt.AccessToken)
	if err != nil {
		return constant.Empty
	}

	return claims.UserID
}
