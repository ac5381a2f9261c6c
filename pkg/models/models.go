package models

import "time"

type IssueStatus string

const (
	IssueStatusOngoing  IssueStatus = "Ongoing"
	IssueStatusResolved IssueStatus = "Resolved"
)

type DataSource string

const (
	DataSourceManual     DataSource = "manual"
	DataSourceResolution DataSource = "resolution"
)

const (
	GreenhouseStatusNormal        = "normal"
	GreenhouseStatusIssueDetected = "issue-detected"
)

type Greenhouse struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:100;not null"`
	Location string `gorm:"size:100;not null"`
	Status   string `gorm:"size:20;not null"`

	// Employees are assigned, not owned: deleting a greenhouse must not
	// delete its staff, so no cascade on this relation.
	Employees []Employee          `gorm:"foreignKey:GreenhouseID"`
	Issues    []Issue             `gorm:"foreignKey:GreenhouseID;constraint:OnDelete:CASCADE"`
	Readings  []EnvironmentalData `gorm:"foreignKey:GreenhouseID;constraint:OnDelete:CASCADE"`
}

type Employee struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:256;not null" json:"-"`
	Available    bool   `gorm:"not null;default:true"`
	GreenhouseID *uint  `gorm:"index"`
	CompanyID    string `gorm:"size:10;uniqueIndex;not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
}

// EnvironmentalData is an append-only snapshot of the six monitored
// metrics. Rows are never updated once written.
type EnvironmentalData struct {
	ID             uint       `gorm:"primaryKey"`
	GreenhouseID   uint       `gorm:"index;not null"`
	Temperature    float64    `gorm:"not null"`
	Humidity       float64    `gorm:"not null"`
	CO2            float64    `gorm:"column:co2;not null"`
	LightIntensity float64    `gorm:"not null"`
	SoilPH         float64    `gorm:"column:soil_ph;not null"`
	SoilMoisture   float64    `gorm:"not null"`
	Timestamp      time.Time  `gorm:"index"`
	Source         DataSource `gorm:"type:varchar(20);not null;default:'manual';index;check:source IN ('manual','resolution')"`
}

// TableName overrides gorm's pluralizer, which would mangle "data".
func (EnvironmentalData) TableName() string {
	return "environmental_data"
}

type Issue struct {
	ID           uint        `gorm:"primaryKey"`
	GreenhouseID uint        `gorm:"index;not null"`
	Description  string      `gorm:"size:500;not null"`
	Status       IssueStatus `gorm:"type:varchar(20);not null;default:'Ongoing';index;check:status IN ('Ongoing','Resolved')"`
	CreatedAt    time.Time   `gorm:"index"`
	ResolvedAt   *time.Time
}
