package database

import "context"

// Migrate creates the schema if it does not exist yet. Statements are ordered
// by foreign-key dependencies.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS organizations (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			login_time VARCHAR(5),
			logoff_time VARCHAR(5),
			timezone VARCHAR(64),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			organization_id UUID REFERENCES organizations(id),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'employee',
			login_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			login_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			period VARCHAR(20),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_user_login_at
			ON attendance (user_id, login_at DESC)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			client_name VARCHAR(255) NOT NULL,
			client_code VARCHAR(100) UNIQUE NOT NULL,
			industry_sector VARCHAR(255),
			company_size VARCHAR(100),
			headquarters_location TEXT,
			primary_office_location TEXT,
			website_domain VARCHAR(255),
			client_tier VARCHAR(50) NOT NULL DEFAULT 'Normal'
				CHECK (client_tier IN ('Strategic', 'Normal', 'Low Touch')),
			engagement_health VARCHAR(20) NOT NULL DEFAULT 'Neutral'
				CHECK (engagement_health IN ('Good', 'Neutral', 'Risk')),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS stakeholders (
			id UUID PRIMARY KEY,
			client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
			contact_name VARCHAR(255) NOT NULL,
			designation_role VARCHAR(255),
			email VARCHAR(255),
			phone VARCHAR(50),
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS recordings (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			transcript TEXT,
			duration_seconds INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS location_profiles (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(50) NOT NULL CHECK (type IN ('base', 'client')),
			address TEXT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			use_current_location BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
