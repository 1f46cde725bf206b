package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/wardenlabs/alarm-console/pkg/console"
)

type RestfulServer struct {
	Server           *gin.Engine
	Console          *console.Console
	RateLimiterStore *console.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/login", rs.Login)

	alarms := rs.Server.Group("/alarms", rs.RequireSession)
	{
		alarms.GET("", rs.ListAlarms)
		alarms.GET("/details/:id", rs.GetAlarmDetails)
		alarms.GET("/export", rs.ExportAlarms)
		alarms.POST("/acknowledge", rs.AcknowledgeAlarms)
	}

	profiles := rs.Server.Group("/alarm_profiles", rs.RequireSession)
	{
		profiles.GET("", rs.ListAlarmProfiles)
		profiles.GET("/details/:id", rs.GetAlarmProfileDetails)
	}
}
