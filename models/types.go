package models

import "time"

// Request types

// CreateSpinRequest is the participant form. Award and IsSpecialPrize are
// accepted for older frontends but never decide the outcome.
type CreateSpinRequest struct {
	CustomerName   string `json:"customerName" validate:"required,max=100"`
	NationalID     string `json:"nationalId" validate:"required,national_id"`
	Email          string `json:"email" validate:"required,max=254,email"`
	PhoneNumber    string `json:"phoneNumber" validate:"required,local_phone"`
	Branch         string `json:"branch" validate:"omitempty,max=100"`
	Award          string `json:"award" validate:"omitempty,max=100"`
	IsSpecialPrize *bool  `json:"isSpecialPrize"`
}

// Response types

type SpecialPrizeResponse struct {
	Awarded bool `json:"awarded"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

// Spin is one participation record. Only IsDisbursed changes after creation.
type Spin struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	NationalID     string    `json:"nationalId"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	Branch         string    `json:"branch,omitempty"`
	Award          string    `json:"award"`
	IsSpecialPrize bool      `json:"isSpecialPrize"`
	IsDisbursed    bool      `json:"isDisbursed"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
