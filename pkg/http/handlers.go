package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"greentech.xyz/greenhouse-monitor-service/pkg/auth"
	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/greenhouse"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// errStatus maps core sentinel errors onto HTTP statuses. Anything
// unrecognized is a storage failure and stays a 500.
func errStatus(err error) int {
	switch {
	case errors.Is(err, greenhouse.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, greenhouse.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, greenhouse.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, greenhouse.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, greenhouse.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := errStatus(err)
	if status == http.StatusInternalServerError {
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Min(1).Required(),
	"Password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	employee, err := rs.Core.Employee.Authenticate(req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	token, exp, err := auth.IssueToken(rs.Core.Cfg.AuthSecret, auth.Claims{
		EmployeeID:   employee.ID,
		IsAdmin:      employee.IsAdmin,
		GreenhouseID: employee.GreenhouseID,
	}, rs.Core.Cfg.TokenTTLMin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": exp,
		"employee":   employee,
	})
}

type ReadingRequest struct {
	Temperature    float64   `json:"temperature"`
	Humidity       float64   `json:"humidity"`
	CO2            float64   `json:"co2"`
	LightIntensity float64   `json:"light_intensity"`
	SoilPH         float64   `json:"soil_ph"`
	SoilMoisture   float64   `json:"soil_moisture"`
	Timestamp      time.Time `json:"timestamp"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"Temperature":    z.Float64().Required(),
	"Humidity":       z.Float64().Required(),
	"CO2":            z.Float64().Required(),
	"LightIntensity": z.Float64().Required(),
	"SoilPH":         z.Float64().Required(),
	"SoilMoisture":   z.Float64().Required(),
	"Timestamp":      z.Time(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	greenhouseID, ok := parseIDParam(c, "greenhouse_id")
	if !ok {
		return
	}

	if !rs.CheckGreenhouseLimiter(c.Param("greenhouse_id")) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	result, err := rs.Core.Reading.RecordReading(greenhouseID, &greenhouse.Reading{
		Temperature:    req.Temperature,
		Humidity:       req.Humidity,
		CO2:            req.CO2,
		LightIntensity: req.LightIntensity,
		SoilPH:         req.SoilPH,
		SoilMoisture:   req.SoilMoisture,
		Timestamp:      req.Timestamp,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) ResolveIssue(c *gin.Context) {
	issueID, ok := parseIDParam(c, "issue_id")
	if !ok {
		return
	}

	result, err := rs.Core.Issue.ResolveIssue(issueID, actorFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) ListIssues(c *gin.Context) {
	issues, err := rs.Core.Issue.ListIssues(actorFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

func (rs *RestfulServer) GetGreenhouseIssues(c *gin.Context) {
	greenhouseID, ok := parseIDParam(c, "greenhouse_id")
	if !ok {
		return
	}

	issues, err := rs.Core.Issue.GetGreenhouseIssues(greenhouseID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

func (rs *RestfulServer) GetDashboard(c *gin.Context) {
	summary, err := rs.Core.Dashboard.Summary(actorFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type GreenhouseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

var greenhouseRequestSchema = z.Struct(z.Shape{
	"Name":     z.String().Min(1).Required(),
	"Location": z.String().Min(1).Required(),
})

func (rs *RestfulServer) CreateGreenhouse(c *gin.Context) {
	var req GreenhouseRequest
	if err := greenhouseRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	gh, err := rs.Core.Greenhouse.CreateGreenhouse(req.Name, req.Location)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gh)
}

func (rs *RestfulServer) ListGreenhouses(c *gin.Context) {
	greenhouses, err := rs.Core.Greenhouse.ListGreenhouses()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, greenhouses)
}

func (rs *RestfulServer) GetLatestData(c *gin.Context) {
	greenhouseID, ok := parseIDParam(c, "greenhouse_id")
	if !ok {
		return
	}

	gh, err := rs.Core.Greenhouse.GetGreenhouse(greenhouseID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	latest, err := rs.Core.Greenhouse.LatestReading(greenhouseID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"greenhouse_name": gh.Name,
		"location":        gh.Location,
		"data":            latest,
	})
}

func (rs *RestfulServer) GetHistoricalData(c *gin.Context) {
	page := 1
	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		page = p
	}

	data, total, err := rs.Core.Greenhouse.HistoricalData(page, 0)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  data,
		"total": total,
		"page":  page,
	})
}

type EmployeeRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	GreenhouseID *uint  `json:"greenhouse_id"`
	IsAdmin      bool   `json:"is_admin"`
}

var employeeRequestSchema = z.Struct(z.Shape{
	"Name":  z.String().Min(1).Required(),
	"Email": z.String().Email().Required(),
})

func (rs *RestfulServer) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if err := employeeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	created, err := rs.Core.Employee.CreateEmployee(&greenhouse.NewEmployee{
		Name:         req.Name,
		Email:        req.Email,
		GreenhouseID: req.GreenhouseID,
		IsAdmin:      req.IsAdmin,
	}, actorFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (rs *RestfulServer) ListEmployees(c *gin.Context) {
	employees, err := rs.Core.Employee.ListEmployees()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (rs *RestfulServer) GetEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	employee, err := rs.Core.Employee.GetEmployee(employeeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

type EmployeeUpdateRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Available    bool   `json:"available"`
	GreenhouseID *uint  `json:"greenhouse_id"`
	IsAdmin      *bool  `json:"is_admin"`
}

var employeeUpdateRequestSchema = z.Struct(z.Shape{
	"Name":  z.String().Min(1).Required(),
	"Email": z.String().Email().Required(),
})

func (rs *RestfulServer) UpdateEmployee(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "employee_id")
	if !ok {
		return
	}

	var req EmployeeUpdateRequest
	if err := employeeUpdateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	employee, err := rs.Core.Employee.UpdateEmployee(employeeID, &greenhouse.EmployeeUpdate{
		Name:         req.Name,
		Email:        req.Email,
		Available:    req.Available,
		GreenhouseID: req.GreenhouseID,
		IsAdmin:      req.IsAdmin,
	}, actorFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

var changePasswordRequestSchema = z.Struct(z.Shape{
	"CurrentPassword": z.String().Min(1).Required(),
	"NewPassword":     z.String().Min(1).Required(),
	"ConfirmPassword": z.String().Min(1).Required(),
})

func (rs *RestfulServer) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := changePasswordRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new password and confirmation do not match"})
		return
	}

	if err := rs.Core.Employee.ChangePassword(actorFromContext(c), req.CurrentPassword, req.NewPassword); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	greenhouseKey := c.Param("greenhouse_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(greenhouseKey, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
