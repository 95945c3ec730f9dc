package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vyasmiri21/AttendanceApp/internal/httpmiddleware"
)

// allowedOrigins is the fixed CORS allow list for the frontend dev servers.
var allowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// NewRouter builds the gin engine with middleware and all routes wired.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	}))

	r.Use(httpmiddleware.SecurityHeaders())
	r.Use(httpmiddleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", h.Healthz)

	// Users
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:user_id", h.GetUser)

	// Attendance
	r.POST("/attendance", h.CreateAttendance)
	r.GET("/attendance/user/:user_id", h.AttendanceByUser)
	r.GET("/attendance/date/:date_str", h.AttendanceByDate)

	// Search
	r.GET("/search/users", h.SearchUsers)

	return r
}
