package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"partner-crm-backend/internal/config"
	"partner-crm-backend/internal/database"
	"partner-crm-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type RegionData struct {
	Name     string        `yaml:"name"`
	Chapters []ChapterData `yaml:"chapters,omitempty"`
}

type ChapterData struct {
	Name     string       `yaml:"name"`
	Counties []CountyData `yaml:"counties,omitempty"`
}

type CountyData struct {
	Name     string `yaml:"name"`
	State    string `yaml:"state"`
	FIPSCode string `yaml:"fips_code,omitempty"`
}

type GeographyFile struct {
	Regions []RegionData `yaml:"regions"`
}

func main() {
	log.Println("Loading geography data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadGeographyFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load geography data: %v", err)
	}

	log.Println("Geography data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadGeographyFromYAMLFiles(db *gorm.DB, dataDir string) error {
	regions, err := loadRegions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load regions: %w", err)
	}

	regionsCreated, chaptersCreated, countiesCreated := 0, 0, 0

	for _, regionData := range regions {
		region, created, err := createRegion(db, regionData)
		if err != nil {
			return fmt.Errorf("failed to create region %s: %w", regionData.Name, err)
		}
		if created {
			regionsCreated++
		}

		for _, chapterData := range regionData.Chapters {
			chapter, created, err := createChapter(db, chapterData, region)
			if err != nil {
				return fmt.Errorf("failed to create chapter %s: %w", chapterData.Name, err)
			}
			if created {
				chaptersCreated++
			}

			for _, countyData := range chapterData.Counties {
				_, created, err := createCounty(db, countyData, chapter)
				if err != nil {
					return fmt.Errorf("failed to create county %s: %w", countyData.Name, err)
				}
				if created {
					countiesCreated++
				}
			}
		}
	}

	log.Printf("Regions: %d created, %d total", regionsCreated, len(regions))
	log.Printf("Chapters: %d created", chaptersCreated)
	log.Printf("Counties: %d created", countiesCreated)
	return nil
}

func loadRegions(dataDir string) ([]RegionData, error) {
	var allRegions []RegionData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "geography") {
			var file GeographyFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allRegions = append(allRegions, file.Regions...)
		}
		return nil
	})

	return allRegions, err
}

func createRegion(db *gorm.DB, regionData RegionData) (*models.Region, bool, error) {
	var region models.Region
	if err := db.Where("name = ?", regionData.Name).First(&region).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			region = models.Region{
				Name: regionData.Name,
			}

			if err := db.Create(&region).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create region: %w", err)
			}
			return &region, true, nil
		}
		return nil, false, fmt.Errorf("failed to query region: %w", err)
	}

	return &region, false, nil
}

func createChapter(db *gorm.DB, chapterData ChapterData, region *models.Region) (*models.Chapter, bool, error) {
	var chapter models.Chapter
	if err := db.Where("name = ? AND region_id = ?", chapterData.Name, region.ID).First(&chapter).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			chapter = models.Chapter{
				RegionID: region.ID,
				Name:     chapterData.Name,
			}

			if err := db.Create(&chapter).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create chapter: %w", err)
			}
			return &chapter, true, nil
		}
		return nil, false, fmt.Errorf("failed to query chapter: %w", err)
	}

	return &chapter, false, nil
}

func createCounty(db *gorm.DB, countyData CountyData, chapter *models.Chapter) (*models.County, bool, error) {
	var county models.County
	if err := db.Where("name = ? AND chapter_id = ?", countyData.Name, chapter.ID).First(&county).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			county = models.County{
				ChapterID: chapter.ID,
				Name:      countyData.Name,
				State:     countyData.State,
				FIPSCode:  countyData.FIPSCode,
			}

			if err := db.Create(&county).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create county: %w", err)
			}
			return &county, true, nil
		}
		return nil, false, fmt.Errorf("failed to query county: %w", err)
	}

	return &county, false, nil
}
