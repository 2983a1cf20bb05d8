package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medroster/backend/config"
	"medroster/backend/internal/api/handler"
	"medroster/backend/internal/api/middleware"
	"medroster/backend/pkg/redis"
)

// Setup builds the Gin engine with middleware and routes.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(rdb, 120, time.Minute))
	{
		rosters := v1.Group("/rosters")
		{
			rosters.GET("", h.Roster.ListRosters)
			rosters.POST("", h.Roster.CreateRoster)
			rosters.GET("/:id", h.Roster.GetRoster)
			rosters.PUT("/:id/assignments", h.Roster.UpsertAssignments)
			rosters.DELETE("/:id/assignments", h.Roster.DeleteAssignments)
			rosters.GET("/:id/totals", h.Totals.GetTotals)
			rosters.POST("/:id/validate", h.Validation.ValidateRoster)
			rosters.GET("/:id/export", h.Export.ExportRoster)
			rosters.GET("/:id/constraints", h.Constraint.ListConstraints)
			rosters.PUT("/:id/constraints", h.Constraint.PutConstraint)
		}

		people := v1.Group("/people")
		{
			people.GET("", h.Person.ListPeople)
			people.POST("", h.Person.CreatePerson)
			people.PUT("/:id", h.Person.UpdatePerson)
			people.GET("/:id/availability", h.Availability.ListBlocks)
			people.POST("/:id/availability", h.Availability.CreateBlock)
			people.DELETE("/:id/availability/:blockId", h.Availability.DeleteBlock)
		}

		v1.GET("/shift-types", h.ShiftType.ListShiftTypes)
	}

	return r
}
