// Package server exposes tag inspection over HTTP.
//
//	POST /v1/tags   body: the first bytes of a media file
//	GET  /healthz
package server

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
	jsoniter "github.com/json-iterator/go"

	"github.com/simonhull/id3meta"
	"github.com/simonhull/id3meta/internal/report"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultMaxBodyBytes bounds request bodies when Config.MaxBodyBytes is 0.
const DefaultMaxBodyBytes = 16 << 20

// Config configures the HTTP handler.
type Config struct {
	// MaxBodyBytes limits how much of a request body is read.
	MaxBodyBytes int64

	// AllowOrigins lists the origins allowed by CORS. Empty disables CORS.
	AllowOrigins []string

	Logger   logr.Logger
	Registry *id3meta.Registry
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler serves tag inspection requests.
type Handler struct {
	cfg Config
}

// NewHandler creates a Handler, filling in defaults.
func NewHandler(cfg Config) *Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Registry == nil {
		cfg.Registry = id3meta.DefaultRegistry()
	}
	if cfg.Logger.GetSink() == nil {
		cfg.Logger = logr.Discard()
	}
	return &Handler{cfg: cfg}
}

// Router returns a gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if len(h.cfg.AllowOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = h.cfg.AllowOrigins
		config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		router.Use(cors.New(config))
	}

	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		v1.POST("/tags", h.Inspect)
	}
	return router
}

// Health reports that the server is up.
func (h *Handler) Health(c *gin.Context) {
	render(c, http.StatusOK, gin.H{
		"status":  "ok",
		"version": id3meta.Version,
	})
}

// Inspect reads the tag at the start of the request body and responds with
// its report. A body without a tag yields 422.
func (h *Handler) Inspect(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxBodyBytes)
	log := h.cfg.Logger.WithValues("remote", c.ClientIP())

	tag, err := id3meta.Read(body, id3meta.WithLogger(log))
	switch {
	case errors.Is(err, id3meta.ErrNoTag):
		render(c, http.StatusUnprocessableEntity, ErrorResponse{Error: "no tag"})
		return
	case isTooLarge(err):
		render(c, http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		render(c, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	frames, failed := id3meta.ExtractWithFailures(tag.Frames,
		id3meta.WithRegistry(h.cfg.Registry),
		id3meta.WithLogger(log),
	)
	render(c, http.StatusOK, report.New("", tag, frames, failed))
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// render writes v as JSON.
func render(c *gin.Context, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", b)
}
