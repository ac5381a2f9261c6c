package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"greentech.xyz/greenhouse-monitor-service/pkg/greenhouse"
	"greentech.xyz/greenhouse-monitor-service/pkg/metrics"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *greenhouse.Core
	RateLimiterStore *greenhouse.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(greenhouseKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(greenhouseKey)
	}
}

func (rs *RestfulServer) CheckGreenhouseLimiter(greenhouseKey string) bool {
	limiter := rs.GetLimiter(greenhouseKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(greenhouseKey string, ghRate float64, ghBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(greenhouseKey, rate.Limit(ghRate), ghBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(TrackRequests())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(metrics.Handler()))
	rs.Server.POST("/login", rs.Login)

	authed := rs.Server.Group("/")
	authed.Use(AuthRequired(rs.Core.Cfg.AuthSecret))
	{
		authed.GET("/dashboard", rs.GetDashboard)

		authed.GET("/issues", rs.ListIssues)
		authed.POST("/issues/:issue_id/resolve", rs.ResolveIssue)

		greenhouses := authed.Group("/greenhouses")
		{
			greenhouses.POST("", rs.CreateGreenhouse)
			greenhouses.GET("", rs.ListGreenhouses)
			greenhouses.POST("/:greenhouse_id/readings", rs.PostReading)
			greenhouses.GET("/:greenhouse_id/issues", rs.GetGreenhouseIssues)
			greenhouses.GET("/:greenhouse_id/data/latest", rs.GetLatestData)
			greenhouses.POST("/:greenhouse_id/limiter", rs.PostLimiter)
		}

		authed.GET("/historical_data", rs.GetHistoricalData)

		employees := authed.Group("/employees")
		{
			employees.POST("", rs.CreateEmployee)
			employees.GET("", rs.ListEmployees)
			employees.GET("/:employee_id", rs.GetEmployee)
			employees.PUT("/:employee_id", rs.UpdateEmployee)
		}

		authed.POST("/change_password", rs.ChangePassword)
	}
}
