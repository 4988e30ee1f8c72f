package types

import "time"

type Reminder struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReminderRequest struct {
	Text string `json:"text" schema:"text"`
}

type ListRemindersResponse struct {
	SessionID string      `json:"session_id"`
	Reminders []*Reminder `json:"reminders"`
}

// DashboardRequest carries the page session of a dashboard form post.
type DashboardRequest struct {
	SessionID string `schema:"session_id" form:"required,uuid"`
}

type DashboardAnalyzeRequest struct {
	DashboardRequest
	Query string `schema:"query"`
}

type DashboardReminderRequest struct {
	DashboardRequest
	Text string `schema:"text"`
}
