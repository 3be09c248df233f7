package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
	"github.com/Gunvolt24/sku_upload/internal/usecase"
	"github.com/Gunvolt24/sku_upload/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	formFileField    = "file"
)

// Handler — HTTP-обработчики загрузок и контекста корзины.
type Handler struct {
	uploads        ports.UploadService
	carts          ports.CartRegistrar
	log            ports.Logger
	reqTimeout     time.Duration
	maxUploadBytes int64
}

// NewHandler — reqTimeout ограничивает только чтение истории;
// maxUploadBytes <= 0 снимает ограничение размера тела.
func NewHandler(uploads ports.UploadService, carts ports.CartRegistrar, log ports.Logger, reqTimeout time.Duration, maxUploadBytes int64) *Handler {
	return &Handler{
		uploads:        uploads,
		carts:          carts,
		log:            log,
		reqTimeout:     reqTimeout,
		maxUploadBytes: maxUploadBytes,
	}
}

// NewRouter — gin-движок с middleware; otelServiceName пустой — без otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware(), httpx.SessionIDMiddleware(), httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/uploads", h.upload)
	r.GET("/uploads/:id", h.getRun)

	sessions := r.Group("/sessions/:id")
	sessions.GET("/uploads", h.listSessionRuns)
	sessions.GET("/processing", h.processing)
	sessions.PUT("/cart", h.setCart)

	return r
}

// upload — POST /uploads: multipart-поле file, сессия из X-Session-ID.
// Отчёт о прогоне (в том числе отклонённом) отдаётся с 200.
func (h *Handler) upload(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := strings.TrimSpace(c.GetHeader(httpx.HeaderSessionID))
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + httpx.HeaderSessionID + " header"})
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	fh, err := c.FormFile(formFileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	var body io.Reader
	f, err := fh.Open()
	if err != nil {
		// ошибку чтения отдаём в отчёт прогона, а не статусом
		h.log.Warnf(ctx, "open upload failed name=%q err=%v", fh.Filename, err)
		body = failingReader{err: err}
	} else {
		defer f.Close()
		body = f
	}

	run, err := h.uploads.Process(ctx, sessionID, domain.UploadFile{
		Name:      fh.Filename,
		MediaType: fh.Header.Get("Content-Type"),
		Body:      body,
	})
	switch {
	case errors.Is(err, usecase.ErrSessionRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrRunSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "run": run})
	case err != nil:
		h.log.Errorf(ctx, "Process failed session=%s err=%v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		c.JSON(http.StatusOK, run)
	}
}

func (h *Handler) getRun(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	run, err := h.uploads.GetRun(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "GetRun failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *Handler) listSessionRuns(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Param("id"))
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty session id"})
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, defaultListLimit, maxListLimit)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	runs, err := h.uploads.RunsBySession(ctx, sessionID, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "RunsBySession failed session=%s err=%v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if runs == nil {
		runs = []*domain.Run{}
	}
	c.JSON(http.StatusOK, runs)
}

func (h *Handler) processing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"processing": h.uploads.Processing(strings.TrimSpace(c.Param("id")))})
}

type setCartRequest struct {
	CartID string `json:"cartId"`
}

// setCart — PUT /sessions/:id/cart: привязка корзины к сессии в обход Kafka.
func (h *Handler) setCart(c *gin.Context) {
	ctx := c.Request.Context()

	var req setCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	err := h.carts.SetCart(ctx, c.Param("id"), req.CartID)
	switch {
	case errors.Is(err, usecase.ErrInvalidCartSummary):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.log.Errorf(ctx, "SetCart failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}

// failingReader — тело, которое не удалось открыть.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
