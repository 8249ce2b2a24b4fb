package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-service/internal/domain"
	"blog-service/internal/middleware"
	"blog-service/internal/service"
)

// AccountHandler serves profile reads and updates and staff-only account
// removal.
type AccountHandler struct {
	accounts service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Profile handles GET /accounts/profile.
func (h *AccountHandler) Profile(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	view, err := h.accounts.Profile(c.Request.Context(), actor.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateProfile handles PUT /accounts/profile.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var form domain.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.accounts.UpdateProfile(c.Request.Context(), actor.ID, form)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// RemoveUser handles DELETE /accounts/users/:id. Staff only.
func (h *AccountHandler) RemoveUser(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.accounts.RemoveUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
