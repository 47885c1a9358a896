package models

import "time"

// Organization — граница тенанта; владелец — пользователь-организатор.
type Organization struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
