package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripforge/cmd/fx/controllers_fx"
	"tripforge/cmd/fx/session_fx"
	"tripforge/cmd/fx/suggestion_fx"
	"tripforge/cmd/fx/trip_fx"
	"tripforge/internal/api/controllers"
	"tripforge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	app := fx.New(
		session_fx.Module,
		suggestion_fx.Module,
		trip_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	suggestionsController *controllers.SuggestionsController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, suggestionsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	suggestionsController *controllers.SuggestionsController) {

	sessions := r.Group("/sessions")
	sessions.POST("", tripController.CreateSession)
	sessions.GET("/:sessionId", tripController.GetTripState)
	sessions.POST("/:sessionId/reset", tripController.ResetSession)
	sessions.DELETE("/:sessionId", tripController.DeleteSession)

	trips := r.Group("/trips")
	trips.POST("/set-trip-dates", tripController.SetTripDates)
	trips.POST("/select-day", tripController.SelectDay)
	trips.POST("/update-time-slot", tripController.UpdateTimeSlot)
	trips.POST("/add-item-to-schedule", tripController.AddItemToSchedule)
	trips.POST("/remove-item-from-schedule", tripController.RemoveItemFromSchedule)
	trips.PUT("/metadata", tripController.UpdateTripMetadata)
	trips.POST("/book-accommodation", tripController.BookAccommodation)
	trips.POST("/remove-accommodation", tripController.RemoveAccommodation)

	suggestions := r.Group("/suggestions")
	suggestions.GET("/item/:id", suggestionsController.GetSuggestionById)
	suggestions.GET("/:kind", suggestionsController.ListSuggestions)
}
