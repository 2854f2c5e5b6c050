package client

import "time"

type Tier string

const (
	TierStrategic Tier = "Strategic"
	TierNormal    Tier = "Normal"
	TierLowTouch  Tier = "Low Touch"
)

type Health string

const (
	HealthGood    Health = "Good"
	HealthNeutral Health = "Neutral"
	HealthRisk    Health = "Risk"
)

type Client struct {
	ID                    string
	UserID                string
	ClientName            string
	ClientCode            string
	IndustrySector        *string
	CompanySize           *string
	HeadquartersLocation  *string
	PrimaryOfficeLocation *string
	WebsiteDomain         *string
	ClientTier            Tier
	EngagementHealth      Health
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type Stakeholder struct {
	ID              string
	ClientID        string
	ContactName     string
	DesignationRole *string
	Email           *string
	Phone           *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
