package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutwise/backend/internal/service"
	"github.com/gutwise/backend/internal/state"
	"github.com/gutwise/backend/internal/types"
)

// ShoppingHandler manages the shopping checklist.
type ShoppingHandler struct {
	session *service.Session
}

// NewShoppingHandler creates a new ShoppingHandler instance.
func NewShoppingHandler(session *service.Session) *ShoppingHandler {
	return &ShoppingHandler{session: session}
}

// RegisterRoutes registers the shopping list routes.
func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	list := router.Group("/shopping-list")
	{
		list.GET("", h.ListItems)
		list.POST("", h.AddItem)
		list.PATCH("/:id/toggle", h.ToggleItem)
		list.DELETE("/:id", h.DeleteItem)
	}
}

// ListItems returns the flat list plus the category grouping, which is
// derived on every request rather than cached.
func (h *ShoppingHandler) ListItems(c *gin.Context) {
	snap := h.session.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"items":  snap.ShoppingList,
		"groups": state.GroupShoppingList(snap.ShoppingList),
	})
}

// AddItem adds a manual item. Empty or whitespace-only names are rejected.
func (h *ShoppingHandler) AddItem(c *gin.Context) {
	var req types.AddShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.session.AddShoppingItem(req.Name, req.Category)
	if err != nil {
		if errors.Is(err, state.ErrEmptyItemName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item name must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"items": snap.ShoppingList})
}

// ToggleItem flips an item's checked state.
func (h *ShoppingHandler) ToggleItem(c *gin.Context) {
	snap, found := h.session.ToggleShoppingItem(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": snap.ShoppingList})
}

// DeleteItem removes an item. Deleting an absent id is a no-op, so the
// response is 204 either way.
func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	h.session.DeleteShoppingItem(c.Param("id"))
	c.Status(http.StatusNoContent)
}
