package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodorder/internal/domain/model"
	"github.com/polkiloo/foodorder/internal/server/http/dto"
)

const menuItemNotFound = "menu item not found"

// MenuHandler serves the public menu and its admin endpoints.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// Active handles GET /api/menu_items.
func (h *MenuHandler) Active(c *gin.Context) {
	items, err := h.facade.ActiveMenu(c.Request.Context())
	h.writeItems(c, items, err)
}

// All handles GET /admin/menu.
func (h *MenuHandler) All(c *gin.Context) {
	items, err := h.facade.AllMenuItems(c.Request.Context())
	h.writeItems(c, items, err)
}

func (h *MenuHandler) writeItems(c *gin.Context, items []model.MenuItem, err error) {
	if err != nil {
		writeError(c, err, menuItemNotFound)
		return
	}
	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /admin/menu.
func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err, "invalid request body")
		return
	}
	item, err := h.facade.CreateMenuItem(c.Request.Context(), toMenuItemDraft(req))
	if err != nil {
		writeError(c, err, menuItemNotFound)
		return
	}
	c.JSON(http.StatusCreated, toMenuItemResponse(*item))
}

// Update handles PUT /admin/menu/:id.
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBindError(c, err, "invalid request body")
		return
	}
	item, err := h.facade.UpdateMenuItem(c.Request.Context(), id, toMenuItemDraft(req))
	if err != nil {
		writeError(c, err, menuItemNotFound)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// Toggle handles POST /admin/menu/:id/toggle.
func (h *MenuHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.facade.ToggleMenuItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, menuItemNotFound)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// Delete handles DELETE /admin/menu/:id.
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteMenuItem(c.Request.Context(), id); err != nil {
		writeError(c, err, menuItemNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func toMenuItemDraft(req dto.MenuItemRequest) model.MenuItemDraft {
	draft := model.MenuItemDraft{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		ImageURL:    req.ImageURL,
	}
	for _, c := range req.Customizations {
		draft.Customizations = append(draft.Customizations, model.CustomizationDraft{Name: c.Name, Price: c.Price})
	}
	return draft
}
