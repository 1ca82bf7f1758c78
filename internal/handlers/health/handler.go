package health

import (
	"net/http"

	"huddle/config"
	"huddle/infras/postgres"
	"huddle/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
)

type Handler struct {
	cfg   *config.Config
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(cfg *config.Config, db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports dependency liveness.
// @Summary Health check
// @Description Report the service status along with its Postgres and Redis connectivity.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service healthy"
// @Failure 503 {object} map[string]string "A dependency is down"
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	status := map[string]string{
		"app":      handler.cfg.App.Name,
		"status":   "ok",
		"postgres": "up",
		"redis":    "up",
	}
	code := http.StatusOK

	if err := handler.db.Read.PingContext(ctx); err != nil {
		status["postgres"] = "down"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	} else if err := handler.db.Write.PingContext(ctx); err != nil {
		status["postgres"] = "down"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}

	if _, err := handler.redis.Ping(ctx).Result(); err != nil {
		status["redis"] = "down"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}

	response.WithJSON(writer, code, status)
}
