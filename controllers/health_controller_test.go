package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupHealthTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)

	gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	hc := &HealthController{
		DB:        gormDB,
		Version:   "1.0",
		StartedAt: time.Now().Add(-time.Minute),
	}

	router := gin.New()
	router.GET("/ping", Ping)
	router.GET("/health", hc.GetHealth)
	router.GET("/health/ready", hc.GetReadiness)
	router.GET("/health/live", hc.GetLiveness)
	return router, mock
}

func TestPing(t *testing.T) {
	router, _ := setupHealthTest(t)

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestGetHealthHealthy(t *testing.T) {
	router, mock := setupHealthTest(t)

	mock.ExpectQuery(`SELECT version\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).
			AddRow("PostgreSQL 16.2"))

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])

	database := resp["database"].(map[string]any)
	assert.Equal(t, "connected", database["status"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHealthDatabaseDown(t *testing.T) {
	router, mock := setupHealthTest(t)

	mock.ExpectQuery(`SELECT version\(\)`).
		WillReturnError(assert.AnError)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp["status"])
}

func TestGetReadiness(t *testing.T) {
	router, _ := setupHealthTest(t)

	req, _ := http.NewRequest("GET", "/health/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ready")
}

func TestGetLiveness(t *testing.T) {
	router, _ := setupHealthTest(t)

	req, _ := http.NewRequest("GET", "/health/live", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alive", resp["status"])
	assert.Greater(t, resp["uptime"].(float64), 0.0)
}
