package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	usermapper "github.com/havendogs/api-server/internal/domains/users/adapters/http/mapper"
	usersapp "github.com/havendogs/api-server/internal/domains/users/application"
	userports "github.com/havendogs/api-server/internal/domains/users/ports"
)

// AuthAPI wires HTTP transport with the users bounded context.
type AuthAPI struct {
	service userports.Service
}

// NewAuthAPI creates an AuthAPI backed by the provided service.
func NewAuthAPI(service userports.Service) AuthAPI {
	return AuthAPI{service: service}
}

// Post /api/auth/register
// Register a new account and sign its first token
func (api *AuthAPI) Register(c *gin.Context) {
	var payload usermapper.Register
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	result, err := api.service.Register(c.Request.Context(), usermapper.ToRegistration(payload))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    usermapper.FromDomainUser(result.User),
	})
}

// Post /api/auth/login
// Check credentials and sign a fresh token
func (api *AuthAPI) Login(c *gin.Context) {
	var payload usermapper.Login
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	result, err := api.service.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  usermapper.FromDomainUser(result.User),
	})
}

// Put /api/auth/boarding-availability
// Update the caller's boarding profile
func (api *AuthAPI) UpdateBoardingAvailability(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		respondUnauthorized(c, "No token provided")
		return
	}
	var payload usermapper.BoardingAvailability
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	update := userports.BoardingUpdate{
		IsBoardingAvailable: payload.IsBoardingAvailable,
		BoardingFee:         payload.BoardingFee,
	}
	user, err := api.service.UpdateBoardingAvailability(c.Request.Context(), identity.UserID, update)
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":             "Boarding availability updated successfully",
		"isBoardingAvailable": user.IsBoardingAvailable,
		"boardingFee":         user.BoardingFee,
	})
}

// Get /api/auth/boarders
// List accounts currently offering boarding
func (api *AuthAPI) GetAvailableBoarders(c *gin.Context) {
	boarders, err := api.service.ListBoarders(c.Request.Context())
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainBoarders(boarders))
}

// Get /api/auth/vets
// List veterinary accounts
func (api *AuthAPI) GetAllVets(c *gin.Context) {
	vets, err := api.service.ListVets(c.Request.Context())
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usermapper.FromDomainVets(vets))
}

func (api *AuthAPI) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, userports.ErrEmailTaken):
		respondBadRequest(c, "User already exists")
	case errors.Is(err, userports.ErrNotFound):
		respondBadRequest(c, "User not found")
	case errors.Is(err, usersapp.ErrInvalidCredentials):
		respondBadRequest(c, "Invalid credentials")
	case errors.Is(err, usersapp.ErrInvalidInput):
		respondBadRequest(c, err.Error())
	default:
		respondInternal(c, err)
	}
}
