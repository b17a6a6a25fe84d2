package controllers

import (
	"net/http"
	"time"

	redisclient "Courtside/services/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Liveness ping
// @Tags health
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

type HealthController struct {
	DB        *gorm.DB
	Cache     *redisclient.RedisClient
	Version   string
	StartedAt time.Time
}

// @Summary Full health report
// @Description Reports overall status plus database details
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string}
// @Router /health [get]
func (hc *HealthController) GetHealth(c *gin.Context) {
	database := gin.H{"status": "connected", "details": gin.H{}}
	healthy := true

	var version string
	if err := hc.DB.Raw("SELECT version()").Scan(&version).Error; err != nil {
		database["status"] = "error"
		database["details"] = gin.H{"error": err.Error()}
		healthy = false
	} else {
		details := gin.H{"version": version}
		if sqlDB, err := hc.DB.DB(); err == nil {
			details["connectionPoolSize"] = sqlDB.Stats().OpenConnections
		}
		database["details"] = details
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   hc.Version,
		"database":  database,
		"uptime":    time.Since(hc.StartedAt).Seconds(),
	})
}

// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string}
// @Router /health/ready [get]
func (hc *HealthController) GetReadiness(c *gin.Context) {
	sqlDB, err := hc.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not ready",
			"message":   err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	if hc.Cache != nil {
		if err := hc.Cache.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "not ready",
				"message":   err.Error(),
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} object{status=string}
// @Router /health/live [get]
func (hc *HealthController) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(hc.StartedAt).Seconds(),
	})
}
