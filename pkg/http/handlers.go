package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/auth"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/coldstore"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/models"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/report"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// UpdateSensorData runs one ingestion cycle on demand. The status is always
// 200; the message tells the caller what actually happened, so a dashboard
// refresh button can surface "already running" without treating it as an
// error.
func (rs *RestfulServer) UpdateSensorData(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	_, err := rs.Cold.Ingest.RunCycle(ctx)
	switch {
	case errors.Is(err, coldstore.ErrCycleInFlight):
		c.JSON(http.StatusOK, gin.H{"message": "Sensor data update already running"})
	case err != nil:
		c.JSON(http.StatusOK, gin.H{"message": "Sensor data update failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Sensor data updated"})
	}
}

func (rs *RestfulServer) GetAnalysis(c *gin.Context) {
	analysis, err := rs.Cold.Analysis.Analyze()
	if errors.Is(err, coldstore.ErrNoReadings) {
		c.JSON(http.StatusOK, gin.H{"message": "No data"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to analyze sensor data"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	var alerts []models.Alert
	var err error
	if alerts, err = rs.Cold.Alert.ListAlerts(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list alerts"})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type ThresholdsRequest struct {
	MaxTemperature  float64 `json:"maxTemperature"`
	AlertOnDoorOpen bool    `json:"alertOnDoorOpen"`
}

var thresholdsRequestSchema = z.Struct(z.Shape{
	"MaxTemperature":  z.Float64().Required(),
	"AlertOnDoorOpen": z.Bool(),
})

func (rs *RestfulServer) UpdateThresholds(c *gin.Context) {
	var req ThresholdsRequest
	if err := thresholdsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	thresholds := models.Thresholds{
		MaxTemperature:  req.MaxTemperature,
		AlertOnDoorOpen: req.AlertOnDoorOpen,
	}

	if err := rs.Cold.Threshold.UpsertThresholds(&thresholds); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store thresholds"})
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetReport(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")

	readings, err := rs.Cold.Reading.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read sensor data"})
		return
	}

	now := time.Now()

	switch format {
	case "xlsx":
		data, err := report.BuildReadingsXLSX(readings, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build report"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="coldstorage-readings.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "pdf":
		data, err := report.BuildReadingsPDF(readings, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build report"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="coldstorage-readings.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Unknown report format %q", format)})
	}
}

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"FullName": z.String().Required(),
	"Email":    z.String().Email().Required(),
	"Phone":    z.String().Required(),
	"Password": z.String().Min(6).Required(),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	_, err := rs.Auth.Register(auth.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if errors.Is(err, auth.ErrUserExists) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Email().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	token, user, err := rs.Auth.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrUserNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		return
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
