package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usermapper "github.com/pickbotics/storefront/internal/domains/users/adapters/http/mapper"
	userports "github.com/pickbotics/storefront/internal/domains/users/ports"
)

// AuthAPI wires HTTP transport with the users bounded context.
type AuthAPI struct {
	service userports.Service
}

// NewAuthAPI creates an AuthAPI backed by the provided service.
func NewAuthAPI(service userports.Service) AuthAPI {
	return AuthAPI{service: service}
}

// Post /auth/register
// Create an account
func (api *AuthAPI) Register(c *gin.Context) {
	var payload usermapper.Credentials
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := api.service.Register(c.Request.Context(), payload.Username, payload.Password, payload.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usermapper.FromDomain(user))
}

// Post /auth/login
// Open a session
func (api *AuthAPI) Login(c *gin.Context) {
	var payload usermapper.Credentials
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	token, err := api.service.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := api.service.GetByUsername(c.Request.Context(), payload.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.SessionFor(user, token))
}

// Post /auth/logout
// Close the session for a username
func (api *AuthAPI) Logout(c *gin.Context) {
	var payload usermapper.Credentials
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	api.service.Logout(c.Request.Context(), payload.Username)
	c.Status(http.StatusNoContent)
}
