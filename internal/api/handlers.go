package api

import (
	"errors"
	"log"
	"net/http"

	"clipnotes/internal/model"
	"clipnotes/internal/pipeline"
	"clipnotes/internal/repository"
	"clipnotes/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handlers bundles the injected collaborators for the HTTP surface.
type Handlers struct {
	repo     repository.SummarizationRepository
	pipeline pipeline.Runner
}

// NewHandlers creates the HTTP handlers.
func NewHandlers(repo repository.SummarizationRepository, runner pipeline.Runner) *Handlers {
	return &Handlers{
		repo:     repo,
		pipeline: runner,
	}
}

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	// Health check
	r.GET("/health", h.healthCheck)

	r.POST("/summarization", h.createSummarization)
	r.GET("/summarization", h.listSummarizations)
	r.PUT("/summarization/:id", h.updateSummarization)
	r.DELETE("/summarization/:id", h.deleteSummarization)
}

// healthCheck returns server health status
func (h *Handlers) healthCheck(c *gin.Context) {
	utils.Success(c, http.StatusOK, gin.H{
		"status":  "ok",
		"service": "clipnotes",
	})
}

// summarizationBody is the inbound request shape for create and update.
// Float fields are pointers so startAt=0 survives the required check.
type summarizationBody struct {
	Title   string   `json:"title" binding:"required"`
	Link    string   `json:"link" binding:"required"`
	StartAt *float64 `json:"startAt" binding:"required"`
	EndAt   *float64 `json:"endAt" binding:"required"`
}

func (b *summarizationBody) toInput() pipeline.Input {
	return pipeline.Input{
		Title:   b.Title,
		Link:    b.Link,
		StartAt: *b.StartAt,
		EndAt:   *b.EndAt,
	}
}

// createSummarization runs the full pipeline and persists the result
func (h *Handlers) createSummarization(c *gin.Context) {
	var body summarizationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, http.StatusBadRequest, "body is invalid, check the body parameters: "+err.Error())
		return
	}

	rec, err := h.pipeline.Run(c.Request.Context(), body.toInput())
	if err != nil {
		h.pipelineError(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), rec); err != nil {
		log.Printf("[API] Failed to store summarization %s: %v", rec.ID, err)
		utils.Error(c, http.StatusInternalServerError, "failed to store summarization")
		return
	}

	log.Printf("[API] Summarization created: %s (%s)", rec.ID, rec.Title)
	utils.Success(c, http.StatusCreated, gin.H{
		"id":      rec.ID,
		"message": "successfully created summarization",
	})
}

// listSummarizations returns all records, optionally filtered by a title
// substring via ?search=
func (h *Handlers) listSummarizations(c *gin.Context) {
	records, err := h.repo.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		log.Printf("[API] Failed to list summarizations: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to list summarizations")
		return
	}

	// Empty list, not null.
	if records == nil {
		records = []model.Summarization{}
	}
	c.JSON(http.StatusOK, records)
}

// updateSummarization re-runs the full pipeline and replaces all fields of an
// existing record. An unknown id still affects zero rows and reports success.
func (h *Handlers) updateSummarization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid summarization id, expected a UUID")
		return
	}

	var body summarizationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, http.StatusBadRequest, "body is invalid, check the body parameters: "+err.Error())
		return
	}

	rec, err := h.pipeline.Run(c.Request.Context(), body.toInput())
	if err != nil {
		h.pipelineError(c, err)
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, rec); err != nil {
		log.Printf("[API] Failed to update summarization %s: %v", id, err)
		utils.Error(c, http.StatusInternalServerError, "failed to update summarization")
		return
	}

	log.Printf("[API] Summarization updated: %s", id)
	c.Status(http.StatusNoContent)
}

// deleteSummarization removes a record; deleting a missing id still reports
// success.
func (h *Handlers) deleteSummarization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid summarization id, expected a UUID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[API] Failed to delete summarization %s: %v", id, err)
		utils.Error(c, http.StatusInternalServerError, "failed to delete summarization")
		return
	}

	log.Printf("[API] Summarization deleted: %s", id)
	utils.Success(c, http.StatusOK, gin.H{"message": "successfully removed"})
}

// pipelineError maps a pipeline failure to an HTTP response. Malformed input
// is the client's fault; everything else is a server-side stage failure.
func (h *Handlers) pipelineError(c *gin.Context, err error) {
	var verr *pipeline.ValidationError
	if errors.As(err, &verr) {
		utils.Error(c, http.StatusBadRequest, verr.Error())
		return
	}

	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		log.Printf("[API] Pipeline failed at stage %s: %v", stageErr.Stage, stageErr.Err)
		utils.Error(c, http.StatusInternalServerError, stageErr.Error())
		return
	}

	log.Printf("[API] Pipeline failed: %v", err)
	utils.Error(c, http.StatusInternalServerError, err.Error())
}
