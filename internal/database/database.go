package database

import (
	"fmt"
	"time"

	"partner-crm-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// withDefaults fills zero-valued tuning knobs. SkipMigrate keeps its zero
// value, so migrations run unless the caller opts out.
func withDefaults(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	return opts
}

// Initialize opens a Postgres connection, creates the schema from GORM models
// and installs the SQL functions the dashboard and duplicate search rely on.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	opts = withDefaults(opts)

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// pgcrypto backs gen_random_uuid(), pg_trgm backs the duplicate search
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return nil, fmt.Errorf("create pgcrypto extension: %w", err)
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`).Error; err != nil {
		return nil, fmt.Errorf("create pg_trgm extension: %w", err)
	}

	if !opts.SkipMigrate {
		all := []interface{}{
			&models.Region{},
			&models.Chapter{},
			&models.County{},
			&models.Organization{},
			&models.Person{},
			&models.Meeting{},
			&models.MeetingAttendee{},
			&models.Attachment{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	if err := installFunctions(db); err != nil {
		return nil, err
	}

	return db, nil
}

// installFunctions creates the dashboard and duplicate-search SQL functions.
// Both are part of the backend contract and must keep these exact semantics.
func installFunctions(db *gorm.DB) error {
	const dashboardStats = `
CREATE OR REPLACE FUNCTION get_dashboard_stats()
RETURNS jsonb AS $$
SELECT jsonb_build_object(
	'total_organizations', (SELECT count(*) FROM organizations),
	'active_organizations', (SELECT count(*) FROM organizations WHERE status = 'active'),
	'total_people', (SELECT count(*) FROM people),
	'total_meetings', (SELECT count(*) FROM meetings),
	'meetings_this_month', (SELECT count(*) FROM meetings
		WHERE date_trunc('month', date) = date_trunc('month', now())),
	'follow_ups_due', (SELECT count(*) FROM meetings
		WHERE follow_up_date IS NOT NULL AND follow_up_date <= now())
);
$$ LANGUAGE sql STABLE;`

	const duplicateSearch = `
CREATE OR REPLACE FUNCTION find_duplicate_organizations(
	input_name text,
	input_region_id uuid DEFAULT NULL,
	similarity_threshold real DEFAULT 0.6
) RETURNS TABLE(id uuid, name text, region_id uuid, score real) AS $$
SELECT o.id, o.name::text, o.region_id, similarity(o.name, input_name) AS score
FROM organizations o
WHERE similarity(o.name, input_name) >= similarity_threshold
	AND (input_region_id IS NULL OR o.region_id = input_region_id)
ORDER BY score DESC;
$$ LANGUAGE sql STABLE;`

	if err := db.Exec(dashboardStats).Error; err != nil {
		return fmt.Errorf("create get_dashboard_stats: %w", err)
	}
	if err := db.Exec(duplicateSearch).Error; err != nil {
		return fmt.Errorf("create find_duplicate_organizations: %w", err)
	}
	return nil
}
