package domain

// Default configuration values
const (
	DefaultMaxParticipants          = 3
	DefaultMaxWaitlist              = 5
	DefaultCancelCutoffHours        = 48
	DefaultLeaveWaitlistCutoffHours = 24
	DefaultActionTimeoutSeconds     = 10
)

// Business validation constants
const (
	MaxDisplayNameLength = 200
	MaxEmailLength       = 254
)

// Роли записей в хранилище
const (
	EntryRoleParticipant = "participant"
	EntryRoleWaitlist    = "waitlist"
)
