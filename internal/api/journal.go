package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutwise/backend/internal/service"
	"github.com/gutwise/backend/internal/state"
	"github.com/gutwise/backend/internal/types"
)

// JournalHandler serves the meal journal.
type JournalHandler struct {
	session *service.Session
}

// NewJournalHandler creates a new JournalHandler instance.
func NewJournalHandler(session *service.Session) *JournalHandler {
	return &JournalHandler{session: session}
}

// RegisterRoutes registers the journal routes.
func (h *JournalHandler) RegisterRoutes(router *gin.RouterGroup) {
	journal := router.Group("/journal")
	{
		journal.GET("", h.ListEntries)
		journal.POST("", h.CreateEntry)
		journal.GET("/symptoms", h.GetSymptoms)
	}
}

// ListEntries returns the journal newest-first along with the derived
// summary counters. Storage order is insertion order; only the display is
// reversed.
func (h *JournalHandler) ListEntries(c *gin.Context) {
	snap := h.session.Snapshot()

	entries := make([]types.JournalEntry, 0, len(snap.Journal))
	for i := len(snap.Journal) - 1; i >= 0; i-- {
		entries = append(entries, snap.Journal[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"summary": state.SummarizeJournal(snap.Journal),
	})
}

// CreateEntry appends a journal entry for a tracked meal and switches the
// view to the journal.
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	var req types.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, snap, err := h.session.LogMeal(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, state.ErrInvalidRating), errors.Is(err, state.ErrUnknownSymptom):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"entry": entry,
		"view":  snap.View,
	})
}

// GetSymptoms returns the fixed symptom vocabulary for the tracking form.
func (h *JournalHandler) GetSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symptoms": types.SymptomOptions})
}
