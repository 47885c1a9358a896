package models

// Category — стадия воронки (New / Contacted / Converted / Unconverted и т.п.).
type Category struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	OrganizationID int    `json:"organization_id"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
