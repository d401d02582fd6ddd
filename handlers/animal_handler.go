package handlers

import (
	"context"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	m "github.com/ChrisTheAbysswalker/animals-web/models"
	"github.com/ChrisTheAbysswalker/animals-web/views"
)

// AnimalFetcher is satisfied by *services.AnimalService.
type AnimalFetcher interface {
	FetchAnimals(ctx context.Context, animalName string) []m.AnimalRecord
	HasAPIKey() bool
}

type AnimalHandler struct {
	fetcher   AnimalFetcher
	templates *template.Template
	logger    *zap.Logger
}

func NewAnimalHandler(fetcher AnimalFetcher, templates *template.Template, logger *zap.Logger) *AnimalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnimalHandler{
		fetcher:   fetcher,
		templates: templates,
		logger:    logger,
	}
}

func (h *AnimalHandler) Index(c *gin.Context) {
	h.render(c, m.PageData{})
}

func (h *AnimalHandler) Search(c *gin.Context) {
	var form m.SearchForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Info("Rejected search form", zap.Error(err))
		h.render(c, m.PageData{})
		return
	}

	animalName := strings.TrimSpace(form.AnimalName)
	if animalName == "" {
		h.render(c, m.PageData{})
		return
	}

	records := h.fetcher.FetchAnimals(c.Request.Context(), animalName)
	if len(records) == 0 {
		// Missing key, transport errors and genuine misses all end up here.
		h.render(c, m.PageData{
			AnimalName: animalName,
			NotFound:   true,
		})
		return
	}

	cards, err := views.RenderCards(h.templates, records)
	if err != nil {
		h.logger.Error("Error rendering animal cards", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	h.render(c, m.PageData{
		AnimalName: animalName,
		Cards:      cards,
	})
}

func (h *AnimalHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, m.HealthResponse{
		Status:           "healthy",
		Timestamp:        time.Now().Unix(),
		APIKeyConfigured: h.fetcher.HasAPIKey(),
	})
}

func (h *AnimalHandler) render(c *gin.Context, data m.PageData) {
	c.HTML(http.StatusOK, views.IndexTemplate, data)
}
