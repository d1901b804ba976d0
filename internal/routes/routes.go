package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/config"
	"github.com/BruksfildServices01/stay-listings/internal/handlers"
	infraRepo "github.com/BruksfildServices01/stay-listings/internal/infra/repository"
	"github.com/BruksfildServices01/stay-listings/internal/middleware"
	ucAmenity "github.com/BruksfildServices01/stay-listings/internal/usecase/amenity"
	ucPlace "github.com/BruksfildServices01/stay-listings/internal/usecase/place"
	ucReview "github.com/BruksfildServices01/stay-listings/internal/usecase/review"
	ucUser "github.com/BruksfildServices01/stay-listings/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	placeRepo := infraRepo.NewPlaceGormRepository(db)
	amenityRepo := infraRepo.NewAmenityGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUserUC := ucUser.NewRegisterUser(userRepo, auditDispatcher)
	updateUserUC := ucUser.NewUpdateUser(userRepo, auditDispatcher)
	deleteUserUC := ucUser.NewDeleteUser(userRepo, auditDispatcher)

	createAmenityUC := ucAmenity.NewCreateAmenity(amenityRepo, auditDispatcher)
	updateAmenityUC := ucAmenity.NewUpdateAmenity(amenityRepo, auditDispatcher)

	createPlaceUC := ucPlace.NewCreatePlace(userRepo, placeRepo, amenityRepo, auditDispatcher)
	updatePlaceUC := ucPlace.NewUpdatePlace(placeRepo, amenityRepo, auditDispatcher)
	deletePlaceUC := ucPlace.NewDeletePlace(placeRepo, auditDispatcher)

	createReviewUC := ucReview.NewCreateReview(userRepo, placeRepo, reviewRepo, auditDispatcher)
	updateReviewUC := ucReview.NewUpdateReview(reviewRepo, auditDispatcher)
	deleteReviewUC := ucReview.NewDeleteReview(reviewRepo, auditDispatcher)
	listPlaceReviewsUC := ucReview.NewListReviewsByPlace(placeRepo, reviewRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	userHandler := handlers.NewUserHandler(userRepo, registerUserUC, updateUserUC, deleteUserUC)
	amenityHandler := handlers.NewAmenityHandler(amenityRepo, createAmenityUC, updateAmenityUC)
	placeHandler := handlers.NewPlaceHandler(placeRepo, createPlaceUC, updatePlaceUC, deletePlaceUC)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, createReviewUC, updateReviewUC, deleteReviewUC, listPlaceReviewsUC)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC READS + REGISTRATION
		// ------------------------------
		api.POST("/users", userHandler.Register)
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)

		api.GET("/amenities", amenityHandler.List)
		api.GET("/amenities/:id", amenityHandler.Get)

		api.GET("/places", placeHandler.List)
		api.GET("/places/:id", placeHandler.Get)
		api.GET("/places/:id/reviews", reviewHandler.ListByPlace)

		api.GET("/reviews", reviewHandler.List)
		api.GET("/reviews/:id", reviewHandler.Get)

		// ------------------------------
		// AUTHENTICATED MUTATIONS
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.PUT("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)

			secured.POST("/amenities", amenityHandler.Create)
			secured.PUT("/amenities/:id", amenityHandler.Update)

			secured.POST("/places", placeHandler.Create)
			secured.PUT("/places/:id", placeHandler.Update)
			secured.DELETE("/places/:id", placeHandler.Delete)

			secured.POST("/reviews", reviewHandler.Create)
			secured.PUT("/reviews/:id", reviewHandler.Update)
			secured.DELETE("/reviews/:id", reviewHandler.Delete)
		}
	}
}
