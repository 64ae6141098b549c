package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	boardingmapper "github.com/havendogs/api-server/internal/domains/boarding/adapters/http/mapper"
	boardingapp "github.com/havendogs/api-server/internal/domains/boarding/application"
	boardingports "github.com/havendogs/api-server/internal/domains/boarding/ports"
)

// BoardingAPI wires HTTP transport with the boarding bounded context.
type BoardingAPI struct {
	service boardingports.Service
}

// NewBoardingAPI creates a BoardingAPI backed by the provided service.
func NewBoardingAPI(service boardingports.Service) BoardingAPI {
	return BoardingAPI{service: service}
}

// Post /api/boarding
// Submit a boarding intake request
func (api *BoardingAPI) CreateSubmission(c *gin.Context) {
	var payload boardingmapper.SubmitBoarding
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	saved, err := api.service.Submit(c.Request.Context(), boardingmapper.ToIntakeForm(payload))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Boarding submission created successfully",
		"submission": boardingmapper.FromProjection(saved),
	})
}

// Get /api/boarding
// List submissions, optionally filtered by status
func (api *BoardingAPI) GetSubmissions(c *gin.Context) {
	results, err := api.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, boardingmapper.FromProjectionList(results))
}

// Get /api/boarding/:id
// Fetch one submission
func (api *BoardingAPI) GetSubmissionByID(c *gin.Context) {
	found, err := api.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, boardingmapper.FromProjection(found))
}

// Patch /api/boarding/:id/status
// Update a submission's review status
func (api *BoardingAPI) UpdateSubmissionStatus(c *gin.Context) {
	var payload boardingmapper.UpdateStatus
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
		"message":    "Boarding status updated successfully",
		"submission": boardingmapper.FromProjection(updated),
	})
}

func (api *BoardingAPI) respondServiceError(c *gin.Context, err error) {
	var validation *boardingapp.ValidationError
	switch {
	case errors.As(err, &validation):
		respondValidation(c, validation.Fields())
	case errors.Is(err, boardingports.ErrNotFound):
		respondNotFound(c, "Boarding submission not found")
	case errors.Is(err, boardingapp.ErrInvalidInput):
		respondBadRequest(c, err.Error())
	default:
		respondInternal(c, err)
	}
}
