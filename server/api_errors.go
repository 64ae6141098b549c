package server

import (
	"github.com/gin-gonic/gin"

	apierrors "github.com/havendogs/api-server/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

func respondBadRequest(c *gin.Context, detail string) {
	respondProblem(c, apierrors.ErrBadRequest.WithDetail(detail))
}

func respondNotFound(c *gin.Context, detail string) {
	respondProblem(c, apierrors.ErrNotFound.WithDetail(detail))
}

func respondUnauthorized(c *gin.Context, detail string) {
	respondProblem(c, apierrors.ErrUnauthorized.WithDetail(detail))
}

func respondInternal(c *gin.Context, err error) {
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}

func respondValidation(c *gin.Context, fieldErrors map[string]string) {
	respondProblem(c, apierrors.NewValidationProblem(fieldErrors))
}
