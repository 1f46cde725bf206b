package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/wardenlabs/alarm-console/pkg/console"
	"github.com/wardenlabs/alarm-console/pkg/models"
)

// fail maps the console error taxonomy onto the uniform {"error": ...}
// envelope.
func fail(c *gin.Context, err error) {
	var validationErr *console.ValidationError
	var notFoundErr *console.NotFoundError
	var upstreamErr *console.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &upstreamErr):
		status := upstreamErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": upstreamErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// positiveIntQuery parses a positive integer query parameter; anything
// missing or malformed falls back to the default.
func positiveIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// typeFilters collects filter_<type>=true query flags.
func typeFilters(c *gin.Context) []models.AlarmType {
	var types []models.AlarmType
	for _, at := range models.AllAlarmTypes() {
		if c.Query("filter_"+string(at)) == "true" {
			types = append(types, at)
		}
	}
	return types
}

func (rs *RestfulServer) ListAlarms(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	page, err := rs.Console.Alarm.QueryAlarms(&console.AlarmQuery{
		Page:     positiveIntQuery(c, "page", 1),
		PageSize: positiveIntQuery(c, "pageSize", console.DefaultPageSize),
		Search:   c.Query("search"),
		Types:    typeFilters(c),
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (rs *RestfulServer) GetAlarmDetails(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	record, err := rs.Console.Alarm.GetAlarm(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

type AcknowledgeRequest struct {
	AlarmIDs []string `json:"alarmIds" zog:"alarmIds"`
	Comment  string   `json:"comment"`
	Note     string   `json:"note"`
}

var acknowledgeRequestSchema = z.Struct(z.Shape{
	"alarmIDs": z.Slice(z.String()).Min(1).Required(),
	"comment":  z.String().Min(1).Required(),
	"note":     z.String().Optional(),
})

func (rs *RestfulServer) AcknowledgeAlarms(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req AcknowledgeRequest
	if err := acknowledgeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alarmIds and comment are required"})
		return
	}

	result, err := rs.Console.Alarm.AcknowledgeAlarms(c.GetString(ctxKeyUsername), &console.AcknowledgeInput{
		AlarmIDs: req.AlarmIDs,
		Comment:  req.Comment,
		Note:     req.Note,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) ListAlarmProfiles(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	page, err := rs.Console.Profile.QueryProfiles(&console.ProfileQuery{
		Page:     positiveIntQuery(c, "page", 1),
		PageSize: positiveIntQuery(c, "pageSize", console.DefaultPageSize),
		Search:   c.Query("search"),
		Types:    typeFilters(c),
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (rs *RestfulServer) GetAlarmProfileDetails(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	profile, err := rs.Console.Profile.GetProfile(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"username": z.String().Min(1).Required(),
	"password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	if !rs.CheckClientLimiter(clientKey(c)) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	token, user, err := rs.Console.Auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, console.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		fail(c, err)
		return
	}

	c.SetCookie(SessionCookieName, token, 12*60*60, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"username":     user.Username,
			"display_name": user.DisplayName,
			"role":         user.Role,
		},
	})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
