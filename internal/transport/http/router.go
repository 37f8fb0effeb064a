package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
	"github.com/Gunvolt24/wb_warehouse/internal/ports"
	"github.com/Gunvolt24/wb_warehouse/pkg/httpx"
	"github.com/Gunvolt24/wb_warehouse/pkg/validate"
)

// Handler — HTTP-обработчики сервиса размещений.
// reqTimeout > 0 ограничивает время выполнения бизнес-логики одного запроса.
type Handler struct {
	service    ports.PlacementService
	log        ports.Logger
	reqTimeout time.Duration
}

func NewHandler(service ports.PlacementService, log ports.Logger, reqTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, reqTimeout: reqTimeout}
}

// withTimeout — контекст запроса с таймаутом обработчика (если задан).
func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout > 0 {
		return context.WithTimeout(ctx, h.reqTimeout)
	}
	return ctx, func() {}
}

// NewRouter — сборка gin-роутера: middleware (recovery, трейсинг, request-id,
// логирование), служебные маршруты и маршруты API.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	// Единообразные ответы на неизвестный маршрут/метод
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.Header("Allow", allowedMethods(c.Request.URL.Path))
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/placements", h.registerPlacement)
	r.GET("/placement/:id", h.getPlacementByID)
	r.GET("/warehouse/:id/placements", h.listPlacementsByWarehouse)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// allowedMethods — значение заголовка Allow для 405-х ответов.
func allowedMethods(path string) string {
	if path == "/placements" {
		return "POST"
	}
	return "GET"
}

// registerPlacement — POST /placements.
// 201 {"placement_id": id} | 400 | 404 | 409 | 500.
func (h *Handler) registerPlacement(c *gin.Context) {
	var req domain.PlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.withTimeout(c.Request.Context())
	defer cancel()

	id, err := h.service.RegisterPlacement(ctx, req.WarehouseID, req.ProductID, req.Amount)
	if err != nil {
		h.writeRegisterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"placement_id": id})
}

// writeRegisterError — проекция доменных ошибок регистрации на HTTP-статусы.
func (h *Handler) writeRegisterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validate.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, domain.ErrWarehouseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "warehouse not found"})
	case errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "eligible order not found"})
	case errors.Is(err, domain.ErrAlreadyPlaced):
		c.JSON(http.StatusConflict, gin.H{"error": "placement already exists for order"})
	default:
		h.log.Errorf(c.Request.Context(), "RegisterPlacement failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// getPlacementByID — GET /placement/:id.
func (h *Handler) getPlacementByID(c *gin.Context) {
	id, ok := httpx.ParsePositiveID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := h.withTimeout(c.Request.Context())
	defer cancel()

	placement, err := h.service.GetPlacement(ctx, id)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "GetPlacement failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if placement == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "placement not found"})
		return
	}
	c.JSON(http.StatusOK, placement)
}

// listPlacementsByWarehouse — GET /warehouse/:id/placements?limit=&offset=.
func (h *Handler) listPlacementsByWarehouse(c *gin.Context) {
	id, ok := httpx.ParsePositiveID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid warehouse id"})
		return
	}

	// limit/offset с безопасными дефолтами и границами
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.withTimeout(c.Request.Context())
	defer cancel()

	placements, err := h.service.PlacementsByWarehouse(ctx, id, limit, offset)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "PlacementsByWarehouse failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, placements)
}
