package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userports "github.com/havendogs/api-server/internal/domains/users/ports"
)

// ApiHandleFunctions groups the bounded-context APIs mounted on the router.
type ApiHandleFunctions struct {
	InterestAPI InterestAPI
	AdoptionAPI AdoptionAPI
	BoardingAPI BoardingAPI
	AuthAPI     AuthAPI
}

// NewRouter builds the gin engine with the full HavenDogs route table.
// tokens guards the routes that record or act on the caller's identity.
func NewRouter(handlers ApiHandleFunctions, tokens userports.TokenIssuer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	authRequired := AuthRequired(tokens)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to HavenDogs API"})
	})

	interests := router.Group("/api/interests")
	{
		interests.POST("", handlers.InterestAPI.ExpressInterest)
		interests.GET("", handlers.InterestAPI.GetAllInterests)
		interests.GET("/pet/:petId", handlers.InterestAPI.GetInterestsByPet)
		interests.PUT("/:id/status", authRequired, handlers.InterestAPI.UpdateInterestStatus)
	}

	adoptions := router.Group("/api/adoptions")
	{
		adoptions.GET("", handlers.AdoptionAPI.GetAllListings)
		adoptions.GET("/:id", handlers.AdoptionAPI.GetListingByID)
		adoptions.GET("/location/:location", handlers.AdoptionAPI.FindByLocation)
		adoptions.GET("/breed/:breed", handlers.AdoptionAPI.FindByBreed)
		adoptions.POST("", authRequired, handlers.AdoptionAPI.CreateListing)
		adoptions.PUT("/:id", authRequired, handlers.AdoptionAPI.UpdateListing)
		adoptions.DELETE("/:id", authRequired, handlers.AdoptionAPI.DeleteListing)
	}

	boarding := router.Group("/api/boarding")
	{
		boarding.POST("", handlers.BoardingAPI.CreateSubmission)
		boarding.GET("", handlers.BoardingAPI.GetSubmissions)
		boarding.GET("/:id", handlers.BoardingAPI.GetSubmissionByID)
		boarding.PATCH("/:id/status", authRequired, handlers.BoardingAPI.UpdateSubmissionStatus)
	}

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", handlers.AuthAPI.Register)
		auth.POST("/login", handlers.AuthAPI.Login)
		auth.PUT("/boarding-availability", authRequired, handlers.AuthAPI.UpdateBoardingAvailability)
		auth.GET("/boarders", handlers.AuthAPI.GetAvailableBoarders)
		auth.GET("/vets", handlers.AuthAPI.GetAllVets)
	}

	return router
}
