package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	interestmapper "github.com/havendogs/api-server/internal/domains/interests/adapters/http/mapper"
	interestsapp "github.com/havendogs/api-server/internal/domains/interests/application"
	interestports "github.com/havendogs/api-server/internal/domains/interests/ports"
)

// InterestAPI wires HTTP transport with the interests bounded context.
type InterestAPI struct {
	service interestports.Service
}

// NewInterestAPI creates an InterestAPI backed by the provided service.
func NewInterestAPI(service interestports.Service) InterestAPI {
	return InterestAPI{service: service}
}

// Post /api/interests
// Express interest in adopting a pet
func (api *InterestAPI) ExpressInterest(c *gin.Context) {
	var payload interestmapper.SubmitInterest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	saved, err := api.service.SubmitInterest(c.Request.Context(), payload.PetID, interestmapper.ToForm(payload))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Interest expressed successfully",
		"interest": interestmapper.FromProjection(saved),
	})
}

// Get /api/interests/pet/:petId
// List interests for one listing, newest first
func (api *InterestAPI) GetInterestsByPet(c *gin.Context) {
	results, err := api.service.ListByPet(c.Request.Context(), c.Param("petId"))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interestmapper.FromProjectionList(results))
}

// Get /api/interests
// List all interests, optionally filtered by status, with the pet joined
func (api *InterestAPI) GetAllInterests(c *gin.Context) {
	views, err := api.service.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interestmapper.FromViewList(views))
}

// Put /api/interests/:id/status
// Apply a review decision to one submission
func (api *InterestAPI) UpdateInterestStatus(c *gin.Context) {
	var payload interestmapper.UpdateStatus
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	updated, err := api.service.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Interest status updated successfully",
		"interest": interestmapper.FromProjection(updated),
	})
}

func (api *InterestAPI) respondServiceError(c *gin.Context, err error) {
	var validation *interestsapp.ValidationError
	switch {
	case errors.As(err, &validation):
		respondValidation(c, validation.Fields())
	case errors.Is(err, interestports.ErrListingNotFound):
		respondNotFound(c, "Pet not found")
	case errors.Is(err, interestports.ErrNotFound):
		respondNotFound(c, "Interest not found")
	case errors.Is(err, interestsapp.ErrInvalidInput):
		respondBadRequest(c, err.Error())
	default:
		respondInternal(c, err)
	}
}
