package service

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"

	"github.com/gin-gonic/gin"
)

// Router returns the HTTP surface of the service:
//
//	GET /registration?firstName=&lastName=&birthMonth=&birthYear=&zip=
//	GET /           (same as /registration)
//	GET /health
func (s Service) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), cors())

	router.GET("/", s.handleRegistration)
	router.GET("/registration", s.handleRegistration)
	router.GET("/health", handleHealth)
	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.InfoContext(
			c.Request.Context(), "handled request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// queryFromRequest copies the parameters over untouched, missing ones are
// sent to the portal as empty strings.
func queryFromRequest(c *gin.Context) mvic.PersonQuery {
	return mvic.PersonQuery{
		FirstName:  c.Query("firstName"),
		LastName:   c.Query("lastName"),
		BirthMonth: c.Query("birthMonth"),
		BirthYear:  c.Query("birthYear"),
		Zip:        c.Query("zip"),
	}
}

func writeJSON(c *gin.Context, status int, value any) {
	body, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to serialize response", "err", err)
		c.Data(http.StatusInternalServerError, "application/json", []byte(`{"error":"internal"}`))
		return
	}
	c.Data(status, "application/json", body)
}

func (s Service) handleRegistration(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := s.lookup(ctx, queryFromRequest(c))
	if err != nil {
		status, body := errorResponse(err)
		slog.ErrorContext(ctx, "registration lookup failed", "status", status, "err", err)
		writeJSON(c, status, body)
		return
	}

	writeJSON(c, http.StatusOK, result)
}
