package api

import (
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Dependencies groups what the handlers need. ImageLookup resolves catalog
// image names to URLs.
type Dependencies struct {
	ExerciseRepo    repository.ExerciseRepository
	ImageLookup     repository.ImageLookupRepository
	WorkoutRepo     repository.WorkoutRepository
	SaveDataService service.SaveDataService
	BMIService      service.BMIService
	Metrics         *metrics.Manager
	Gatherer        prometheus.Gatherer
	Log             logrus.FieldLogger
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	exerciseHandler := NewExerciseHandler(deps.ExerciseRepo, deps.ImageLookup, deps.Metrics, deps.Log)
	workoutHandler := NewWorkoutHandler(deps.WorkoutRepo, deps.ExerciseRepo, deps.BMIService, deps.SaveDataService, deps.Metrics, deps.Log)
	fitnessHandler := NewFitnessHandler(deps.ExerciseRepo, deps.BMIService, deps.Log)
	saveDataHandler := NewSaveDataHandler(deps.SaveDataService, deps.Log)
	bmiHandler := NewBMIHandler(deps.BMIService, deps.Log)

	router.Use(RequestMetrics(deps.Metrics), RequestLogger(deps.Log))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		// --- Exercise Routes ---
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.GET("/:id/images", exerciseHandler.GetExerciseImages)
		}

		// --- Workout Routes ---
		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.RecordWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
		}

		// --- Calculation engine ---
		apiV1.POST("/calories", fitnessHandler.TrackCalories)
		apiV1.POST("/sets/validate", fitnessHandler.ValidateSet)

		// --- Save Data Routes ---
		saveDataGroup := apiV1.Group("/savedata")
		{
			saveDataGroup.GET("", saveDataHandler.ListSaveData)
			saveDataGroup.POST("", saveDataHandler.CreateSaveData)
			saveDataGroup.GET("/:name", saveDataHandler.GetSaveData)
			saveDataGroup.PUT("/:name", saveDataHandler.UpdateSaveData)
			saveDataGroup.POST("/:name/progress", saveDataHandler.RecordProgress)
		}

		apiV1.GET("/bmi", bmiHandler.GetBMI)
		apiV1.PUT("/bmi", bmiHandler.UpdateBMI)
	}
}
