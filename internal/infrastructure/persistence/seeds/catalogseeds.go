package seeds

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"centro/internal/infrastructure/persistence/models"
	"centro/internal/shared/id"
)

// ServiceSeed describes one catalog service in the seed file.
type ServiceSeed struct {
	Code              string     `yaml:"code"`
	Name              string     `yaml:"name"`
	Description       string     `yaml:"description"`
	PriceMonthlyCents int64      `yaml:"price_monthly_cents"`
	PriceYearlyCents  int64      `yaml:"price_yearly_cents"`
	HasFreeTier       bool       `yaml:"has_free_tier"`
	TrialDays         int        `yaml:"trial_days"`
	AddonPriceCents   int64      `yaml:"addon_price_cents"`
	Plans             []PlanSeed `yaml:"plans"`
}

type PlanSeed struct {
	Code              string   `yaml:"code"`
	Name              string   `yaml:"name"`
	PriceMonthlyCents int64    `yaml:"price_monthly_cents"`
	PriceYearlyCents  int64    `yaml:"price_yearly_cents"`
	Features          []string `yaml:"features"`
	IsDefault         bool     `yaml:"is_default"`
}

type SeedFile struct {
	Services []ServiceSeed `yaml:"services"`
}

// LoadSeedFile parses the YAML catalog seed file.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return &file, nil
}

// SeedCatalog inserts the services and plans from the seed file that are not
// already present, matching by code. Existing rows are never touched.
func SeedCatalog(db *gorm.DB, path string) error {
	file, err := LoadSeedFile(path)
	if err != nil {
		return err
	}

	for _, serviceSeed := range file.Services {
		serviceModel := models.ServiceModel{
			SID:               id.MustGenerateWithPrefix(id.PrefixService, id.DefaultLength),
			Code:              serviceSeed.Code,
			Name:              serviceSeed.Name,
			Description:       serviceSeed.Description,
			PriceMonthlyCents: serviceSeed.PriceMonthlyCents,
			PriceYearlyCents:  serviceSeed.PriceYearlyCents,
			HasFreeTier:       serviceSeed.HasFreeTier,
			TrialDays:         serviceSeed.TrialDays,
			AddonPriceCents:   serviceSeed.AddonPriceCents,
		}

		if err := db.Where(models.ServiceModel{Code: serviceSeed.Code}).
			FirstOrCreate(&serviceModel).Error; err != nil {
			return fmt.Errorf("failed to seed service %s: %w", serviceSeed.Code, err)
		}

		for _, planSeed := range serviceSeed.Plans {
			features, err := json.Marshal(planSeed.Features)
			if err != nil {
				return fmt.Errorf("failed to marshal features for plan %s: %w", planSeed.Code, err)
			}

			planModel := models.PlanModel{
				SID:               id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength),
				ServiceID:         serviceModel.ID,
				Code:              planSeed.Code,
				Name:              planSeed.Name,
				PriceMonthlyCents: planSeed.PriceMonthlyCents,
				PriceYearlyCents:  planSeed.PriceYearlyCents,
				Features:          features,
				IsDefault:         planSeed.IsDefault,
			}

			if err := db.Where(models.PlanModel{ServiceID: serviceModel.ID, Code: planSeed.Code}).
				FirstOrCreate(&planModel).Error; err != nil {
				return fmt.Errorf("failed to seed plan %s/%s: %w", serviceSeed.Code, planSeed.Code, err)
			}
		}
	}

	return nil
}
