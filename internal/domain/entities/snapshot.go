package entities

import "time"

// SyncSnapshot is the aggregated, point-in-time view of a user's meetings,
// tasks, teams and notifications. It is rebuilt on every sync and never
// persisted.
type SyncSnapshot struct {
	Meetings      []*Meeting      `json:"meetings"`
	Tasks         []Task          `json:"tasks"`
	Teams         []*Team         `json:"teams"`
	Notifications []*Notification `json:"notifications"`
	LastUpdated   time.Time       `json:"last_updated"`
	Online        bool            `json:"online"`
}
