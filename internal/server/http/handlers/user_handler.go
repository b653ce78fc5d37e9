package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/qdryclean/qadmin/internal/domain/errors"
	"github.com/qdryclean/qadmin/internal/server/http/dto"
)

// UserHandler serves the account listing.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		if errors.Is(err, domainErrors.ErrSessionExpired) {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: domainErrors.UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, users)
}
