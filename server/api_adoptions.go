package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	listingmapper "github.com/havendogs/api-server/internal/domains/listings/adapters/http/mapper"
	listingsapp "github.com/havendogs/api-server/internal/domains/listings/application"
	listingports "github.com/havendogs/api-server/internal/domains/listings/ports"
)

// AdoptionAPI wires HTTP transport with the listings bounded context.
type AdoptionAPI struct {
	service listingports.Service
}

// NewAdoptionAPI creates an AdoptionAPI backed by the provided service.
func NewAdoptionAPI(service listingports.Service) AdoptionAPI {
	return AdoptionAPI{service: service}
}

// Get /api/adoptions
// List all adoption listings, newest first
func (api *AdoptionAPI) GetAllListings(c *gin.Context) {
	results, err := api.service.List(c.Request.Context())
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listingmapper.FromProjectionList(results))
}

// Get /api/adoptions/:id
// Fetch one listing
func (api *AdoptionAPI) GetListingByID(c *gin.Context) {
	found, err := api.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listingmapper.FromProjection(found))
}

// Get /api/adoptions/location/:location
// Search available listings near a location fragment
func (api *AdoptionAPI) FindByLocation(c *gin.Context) {
	results, err := api.service.FindByLocation(c.Request.Context(), c.Param("location"))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listingmapper.FromProjectionList(results))
}

// Get /api/adoptions/breed/:breed
// Search available listings by breed fragment
func (api *AdoptionAPI) FindByBreed(c *gin.Context) {
	results, err := api.service.FindByBreed(c.Request.Context(), c.Param("breed"))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listingmapper.FromProjectionList(results))
}

// Post /api/adoptions
// Publish a new listing; the poster is the authenticated caller
func (api *AdoptionAPI) CreateListing(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		respondUnauthorized(c, "No token provided")
		return
	}
	var payload listingmapper.CreateListing
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	saved, err := api.service.Create(c.Request.Context(), listingmapper.ToCreateInput(payload, identity.UserID))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listingmapper.FromProjection(saved))
}

// Put /api/adoptions/:id
// Partially update a listing, including its status
func (api *AdoptionAPI) UpdateListing(c *gin.Context) {
	var payload listingmapper.MutationListing
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	updated, err := api.service.Update(c.Request.Context(), c.Param("id"), listingmapper.ToUpdateInput(payload))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listingmapper.FromProjection(updated))
}

// Delete /api/adoptions/:id
// Remove a listing
func (api *AdoptionAPI) DeleteListing(c *gin.Context) {
	if err := api.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pet listing deleted successfully"})
}

func (api *AdoptionAPI) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, listingports.ErrNotFound):
		respondNotFound(c, "Pet listing not found")
	case errors.Is(err, listingsapp.ErrInvalidInput):
		respondBadRequest(c, err.Error())
	default:
		respondInternal(c, err)
	}
}
