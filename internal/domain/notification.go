package domain

import "time"

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationFailure NotificationLevel = "failure"
)

type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionRefresh Action = "refresh"
)

// Notification is the short-lived, non-blocking signal emitted after every
// data store operation.
type Notification struct {
	Level      NotificationLevel `json:"level"`
	Action     Action            `json:"action"`
	Collection string            `json:"collection"`
	EntityID   string            `json:"entityId,omitempty"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp"`
}
