package dto

import "time"

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AuthResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

type CreateCampaignRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Purpose     string  `json:"purpose"`
	Description string  `json:"description"`
	GoalAmount  float64 `json:"goalAmount"`
	PhotoData   string  `json:"photoData"`
}

type CampaignSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Organizer    string    `json:"organizer"`
	Description  string    `json:"description"`
	GoalAmount   float64   `json:"goalAmount"`
	AmountRaised float64   `json:"amountRaised"`
	PhotoData    string    `json:"photoData,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type DonationHighlight struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	// recent | top | first
	Type string `json:"type"`
}

type CommentView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type CampaignDetail struct {
	CampaignSummary
	DonationCount int64               `json:"donations"`
	Progress      float64             `json:"progress"`
	Highlights    []DonationHighlight `json:"highlights"`
	Comments      []CommentView       `json:"comments"`
}

type CreateSessionRequest struct {
	CampaignID string  `json:"campaignId"`
	UserID     string  `json:"userId"`
	Amount     float64 `json:"amount"`
	Comment    string  `json:"comment,omitempty"`
	Method     string  `json:"method"`
}

type CreateSessionResponse struct {
	Success     bool   `json:"success"`
	PaymentURL  string `json:"paymentUrl"`
	QRCodeURL   string `json:"qrCodeUrl,omitempty"`
	PaymentID   string `json:"paymentId"`
	IsMock      bool   `json:"isMock"`
	CallbackURL string `json:"callbackUrl"`
}

type AddDonationRequest struct {
	CampaignTitle string  `json:"campaignTitle"`
	Amount        float64 `json:"amount"`
	DonationDate  string  `json:"donationDate,omitempty"`
}

type DonationView struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaignId,omitempty"`
	CampaignTitle string    `json:"campaignTitle,omitempty"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method,omitempty"`
	DonationDate  time.Time `json:"donationDate"`
}

type AddGoalRequest struct {
	Title        string  `json:"title"`
	TargetAmount float64 `json:"targetAmount"`
	TargetDate   string  `json:"targetDate,omitempty"`
}

type GoalView struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Currency      string     `json:"currency"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	IsActive      bool       `json:"isActive"`
}

type ClearCommentsRequest struct {
	CampaignID string `json:"campaignId"`
}
