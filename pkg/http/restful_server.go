package http

import (
	"github.com/gin-gonic/gin"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/auth"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/coldstore"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/metrics"
)

type RestfulServer struct {
	Server *gin.Engine
	Cold   *coldstore.ColdStore
	Auth   *auth.Auth
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(metrics.Handler()))

	sensors := rs.Server.Group("/api/sensors")
	{
		sensors.GET("/update", rs.UpdateSensorData)
		sensors.GET("/analysis", rs.GetAnalysis)
		sensors.GET("/alerts", rs.GetAlerts)
		sensors.POST("/thresholds", rs.UpdateThresholds)
		sensors.GET("/report", rs.GetReport)
	}

	users := rs.Server.Group("/api/auth")
	{
		users.POST("/register", rs.Register)
		users.POST("/login", rs.Login)
	}
}
