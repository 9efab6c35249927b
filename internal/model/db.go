package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	FirstName    string `gorm:"size:64"`
	LastName     string `gorm:"size:64"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Campaign is a photo-based fundraising entry. GoalAmount is the fixed
// fundraising goal; the amount raised is always derived by summing donations
// at read time and is never stored on this row.
type Campaign struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"size:36;index"`
	FirstName   string `gorm:"size:64"`
	LastName    string `gorm:"size:64"`
	Email       string `gorm:"size:255"`
	Purpose     string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	GoalAmount  float64
	// base64-encoded image, stored in the row itself
	PhotoData string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Donation struct {
	ID string `gorm:"primaryKey;size:36"`
	// FK → users.id
	UserID string `gorm:"size:36;index;not null"`
	// FK → campaigns.id; empty for manual dashboard entries
	CampaignID string `gorm:"size:36;index"`
	// free-text title for manual entries recorded outside a campaign
	CampaignTitle string  `gorm:"size:255"`
	Amount        float64 `gorm:"not null"`
	Currency      string  `gorm:"size:8;not null"`
	Method        string  `gorm:"size:16"`
	DonationDate  time.Time
	CreatedAt     time.Time
}

type DonationComment struct {
	ID string `gorm:"primaryKey;size:36"`
	// FK → campaigns.id
	CampaignID string `gorm:"size:36;index;not null"`
	// FK → donations.id
	DonationID string `gorm:"size:36;index"`
	UserID     string `gorm:"size:36;index"`
	Message    string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

type DonationGoal struct {
	ID           string  `gorm:"primaryKey;size:36"`
	UserID       string  `gorm:"size:36;index;not null"`
	Title        string  `gorm:"size:255;not null"`
	TargetAmount float64 `gorm:"not null"`
	// recomputed from the user's donation sum on read
	CurrentAmount float64
	Currency      string `gorm:"size:8;not null"`
	TargetDate    *time.Time
	IsActive      bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
