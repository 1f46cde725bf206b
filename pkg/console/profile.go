package console

import (
	"strings"

	"gorm.io/gorm"

	"github.com/wardenlabs/alarm-console/pkg/models"
)

type ProfileQuery struct {
	Page     int
	PageSize int
	Search   string
	Types    []models.AlarmType
}

type ProfilePage struct {
	Data     []models.AlarmProfileRecord `json:"data"`
	Total    int64                       `json:"total"`
	Page     int                         `json:"page"`
	PageSize int                         `json:"page_size"`
}

// queryProfiles pages over profile configuration records. The alarm_types
// relation lives in a JSON column, so the type-flag filter is applied after
// scanning; profile tables are config-sized, not telemetry-sized.
func (c *Console) queryProfiles(query *ProfileQuery) (*ProfilePage, error) {
	page, pageSize := normalizePaging(query.Page, query.PageSize)

	tx := c.Db.Conn.Model(&models.AlarmProfileRecord{})

	if search := strings.TrimSpace(query.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("lower(name) LIKE ? OR lower(coalition) LIKE ?", like, like)
	}

	var profiles []models.AlarmProfileRecord
	if err := tx.Order("name ASC, id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}

	if len(query.Types) > 0 {
		filtered := make([]models.AlarmProfileRecord, 0, len(profiles))
		for _, profile := range profiles {
			matchesAll := true
			for _, at := range query.Types {
				if !profile.HasAlarmType(at) {
					matchesAll = false
					break
				}
			}
			if matchesAll {
				filtered = append(filtered, profile)
			}
		}
		profiles = filtered
	}

	total := int64(len(profiles))

	start := (page - 1) * pageSize
	if start > len(profiles) {
		start = len(profiles)
	}
	end := start + pageSize
	if end > len(profiles) {
		end = len(profiles)
	}
	pageData := profiles[start:end]
	if pageData == nil {
		pageData = []models.AlarmProfileRecord{}
	}

	return &ProfilePage{
		Data:     pageData,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (c *Console) getProfile(id string) (*models.AlarmProfileRecord, error) {
	var profile models.AlarmProfileRecord
	if err := c.Db.Conn.First(&profile, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Kind: "alarm profile", ID: id}
		}
		return nil, err
	}
	return &profile, nil
}

type IProfileImpl struct {
	console *Console
}

func (ip *IProfileImpl) QueryProfiles(query *ProfileQuery) (*ProfilePage, error) {
	return ip.console.queryProfiles(query)
}

func (ip *IProfileImpl) GetProfile(id string) (*models.AlarmProfileRecord, error) {
	return ip.console.getProfile(id)
}

func (c *Console) GetIProfile() IProfile {
	return &IProfileImpl{console: c}
}
