package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker/service"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/pkg/logger"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/pkg/metrics"
)

// RegisterRoutes registers the exercise tracker API. Create endpoints take
// URL-encoded form fields; logs take query parameters.
func RegisterRoutes(r *gin.Engine, svc *service.Service) {
	r.POST("/api/users", func(c *gin.Context) {
		u, err := svc.CreateUser(c.Request.Context(), c.PostForm("username"))
		if err != nil {
			writeError(c, err)
			return
		}
		metrics.UsersCreated.Inc()
		c.JSON(http.StatusOK, u)
	})

	r.GET("/api/users", func(c *gin.Context) {
		list, err := svc.ListUsers(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.POST("/api/users/:id/exercises", func(c *gin.Context) {
		in := service.AddExerciseInput{
			Description: c.PostForm("description"),
			Duration:    c.PostForm("duration"),
			Date:        c.PostForm("date"),
		}
		out, err := svc.AddExercise(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		metrics.ExercisesCreated.Inc()
		c.JSON(http.StatusOK, out)
	})

	r.GET("/api/users/:id/logs", func(c *gin.Context) {
		q := service.LogQuery{
			From:  c.Query("from"),
			To:    c.Query("to"),
			Limit: c.Query("limit"),
		}
		out, err := svc.UserLog(c.Request.Context(), c.Param("id"), q)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	})
}

// writeError maps service errors onto the single {"error": ...} failure shape:
// 400 for validation, 404 for unknown user, 500 otherwise.
func writeError(c *gin.Context, err error) {
	var verr service.ValidationError
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	default:
		logger.Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
