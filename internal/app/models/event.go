package models

import "time"

// Event is a scheduled activity authored by a senior. The date is free text
// as entered by the author (e.g. "2025-03-14"); no parsing is applied.
// Events are append-only and visible to all accounts in real time.
type Event struct {
	ID          int64     `json:"id" db:"id"`
	AccountID   int64     `json:"accountId" db:"account_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        string    `json:"date" db:"event_date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
