package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodorder/internal/domain/errors"
	"github.com/polkiloo/foodorder/internal/server/http/dto"
	"github.com/polkiloo/foodorder/internal/server/http/middleware"
)

// StaffHandler processes staff login and logout.
type StaffHandler struct {
	facade StaffFacade
}

// NewStaffHandler creates StaffHandler instance.
func NewStaffHandler(facade StaffFacade) *StaffHandler {
	return &StaffHandler{facade: facade}
}

// Login handles POST /staff/login.
func (h *StaffHandler) Login(c *gin.Context) {
	var req dto.StaffLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		abortBindError(c, err, "invalid request body")
		return
	}

	token, err := h.facade.StaffLogin(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUnauthorized) {
			abortWithError(c, http.StatusUnauthorized, "invalid password")
			return
		}
		writeError(c, err, "")
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.StaffLoginResponse{Token: token})
}

// Logout handles POST /staff/logout.
func (h *StaffHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}
