package greenhouse

import (
	"time"

	"greentech.xyz/greenhouse-monitor-service/pkg/db"
	"greentech.xyz/greenhouse-monitor-service/pkg/models"
)

// Actor is the identity context of the request: who is acting, whether
// they are an admin, and which greenhouse (if any) they are assigned to.
// It is supplied by the caller on every operation that needs it; the
// core never manages sessions itself.
type Actor struct {
	EmployeeID   uint
	IsAdmin      bool
	GreenhouseID *uint
}

// Reading is one submitted snapshot of the six monitored metrics.
type Reading struct {
	Temperature    float64
	Humidity       float64
	CO2            float64
	LightIntensity float64
	SoilPH         float64
	SoilMoisture   float64
	Timestamp      time.Time
}

type IReading interface {
	RecordReading(greenhouseID uint, input *Reading) (*RecordResult, error)
}

type IIssue interface {
	ResolveIssue(issueID uint, actor Actor) (*ResolveResult, error)
	ListIssues(actor Actor) ([]models.Issue, error)
	GetGreenhouseIssues(greenhouseID uint) ([]models.Issue, error)
}

type IDashboard interface {
	Summary(actor Actor) (*DashboardSummary, error)
}

type IEmployee interface {
	CreateEmployee(input *NewEmployee, actor Actor) (*CreatedEmployee, error)
	UpdateEmployee(employeeID uint, input *EmployeeUpdate, actor Actor) (*models.Employee, error)
	GetEmployee(employeeID uint) (*models.Employee, error)
	ListEmployees() ([]models.Employee, error)
	Authenticate(email string, password string) (*models.Employee, error)
	ChangePassword(actor Actor, currentPassword string, newPassword string) error
}

type IGreenhouse interface {
	CreateGreenhouse(name string, location string) (*models.Greenhouse, error)
	ListGreenhouses() ([]models.Greenhouse, error)
	GetGreenhouse(greenhouseID uint) (*models.Greenhouse, error)
	LatestReading(greenhouseID uint) (*models.EnvironmentalData, error)
	HistoricalData(page int, perPage int) ([]models.EnvironmentalData, int64, error)
}

// Notifier is the outbound notification transport. Send reports delivery
// success; it must never panic or raise past this boundary.
type Notifier interface {
	Send(subject string, recipients []string, body string) bool
}

type Core struct {
	Db  db.DB
	Cfg *AppConfig

	Reading    IReading
	Issue      IIssue
	Dashboard  IDashboard
	Employee   IEmployee
	Greenhouse IGreenhouse
	Notifier   Notifier
}

type ServiceOpts struct {
	Reading    IReading
	Issue      IIssue
	Dashboard  IDashboard
	Employee   IEmployee
	Greenhouse IGreenhouse
	Notifier   Notifier
}

func (g *Core) WithServices(opts ServiceOpts) *Core {
	if opts.Reading != nil {
		g.Reading = opts.Reading
	}
	if opts.Issue != nil {
		g.Issue = opts.Issue
	}
	if opts.Dashboard != nil {
		g.Dashboard = opts.Dashboard
	}
	if opts.Employee != nil {
		g.Employee = opts.Employee
	}
	if opts.Greenhouse != nil {
		g.Greenhouse = opts.Greenhouse
	}
	if opts.Notifier != nil {
		g.Notifier = opts.Notifier
	}
	return g
}
