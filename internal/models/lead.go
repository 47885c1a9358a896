package models

import "time"

type Lead struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Age            int       `json:"age"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	Description    string    `json:"description"`
	OrganizationID int       `json:"organization_id"`
	AgentID        *int      `json:"agent_id"`    // nil = не назначен
	CategoryID     *int      `json:"category_id"` // nil = без категории
	CreatedAt      time.Time `json:"created_at"`
}

type LeadRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Age         int    `json:"age" binding:"gte=0"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
	Description string `json:"description"`
}

type AssignAgentRequest struct {
	AgentID int `json:"agent_id" binding:"required"`
}

type UpdateLeadCategoryRequest struct {
	// null снимает категорию
	CategoryID *int `json:"category_id"`
}
