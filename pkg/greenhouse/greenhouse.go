package greenhouse

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/models"
)

const historicalDataPerPage = 20

func (g *Core) createGreenhouse(name string, location string) (*models.Greenhouse, error) {
	if name == "" || location == "" {
		return nil, fmt.Errorf("name and location are required: %w", ErrValidation)
	}

	gh := models.Greenhouse{
		Name:     name,
		Location: location,
		Status:   models.GreenhouseStatusNormal,
	}
	if err := g.Db.Conn.Create(&gh).Error; err != nil {
		return nil, err
	}

	common.GetLoggerWith(
		common.LoggerNameGreenhouseCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryGreenhouses),
	).Info("Greenhouse created", zap.Reflect("greenhouse", gh))

	return &gh, nil
}

func (g *Core) listGreenhouses() ([]models.Greenhouse, error) {
	var greenhouses []models.Greenhouse
	err := g.Db.Conn.Order("name").Find(&greenhouses).Error
	return greenhouses, err
}

func (g *Core) getGreenhouse(greenhouseID uint) (*models.Greenhouse, error) {
	var gh models.Greenhouse
	if err := g.Db.Conn.First(&gh, greenhouseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("greenhouse %d: %w", greenhouseID, ErrNotFound)
		}
		return nil, err
	}
	return &gh, nil
}

// latestReading returns nil without error when the greenhouse has no
// readings yet.
func (g *Core) latestReading(greenhouseID uint) (*models.EnvironmentalData, error) {
	var data models.EnvironmentalData
	err := g.Db.Conn.
		Where("greenhouse_id = ?", greenhouseID).
		Order("timestamp desc").
		First(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// historicalData pages through manually submitted readings, newest
// first. Resolution baselines are excluded. Also returns the total
// manual row count for pagination.
func (g *Core) historicalData(page int, perPage int) ([]models.EnvironmentalData, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = historicalDataPerPage
	}

	var total int64
	if err := g.Db.Conn.Model(&models.EnvironmentalData{}).
		Where("source = ?", models.DataSourceManual).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var data []models.EnvironmentalData
	err := g.Db.Conn.
		Where("source = ?", models.DataSourceManual).
		Order("timestamp desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&data).Error
	return data, total, err
}

type IGreenhouseImpl struct {
	core *Core
}

func (ig *IGreenhouseImpl) CreateGreenhouse(name string, location string) (*models.Greenhouse, error) {
	return ig.core.createGreenhouse(name, location)
}

func (ig *IGreenhouseImpl) ListGreenhouses() ([]models.Greenhouse, error) {
	return ig.core.listGreenhouses()
}

func (ig *IGreenhouseImpl) GetGreenhouse(greenhouseID uint) (*models.Greenhouse, error) {
	return ig.core.getGreenhouse(greenhouseID)
}

func (ig *IGreenhouseImpl) LatestReading(greenhouseID uint) (*models.EnvironmentalData, error) {
	return ig.core.latestReading(greenhouseID)
}

func (ig *IGreenhouseImpl) HistoricalData(page int, perPage int) ([]models.EnvironmentalData, int64, error) {
	return ig.core.historicalData(page, perPage)
}

func (g *Core) GetIGreenhouse() IGreenhouse {
	return &IGreenhouseImpl{core: g}
}
