package models

import (
	"telecare-service/internal/pkg/constvars"
	"time"
)

// Principal is the verified caller of a single request. It is rebuilt from the
// session token on every request and never persisted.
type Principal struct {
	SubjectID   string
	Role        constvars.RoleName
	AccountType constvars.AccountType
}

// SessionToken is a signed credential together with the claims it carries.
type SessionToken struct {
	Token       string
	SubjectID   string
	Role        constvars.RoleName
	AccountType constvars.AccountType
	IssuedAt    time.Time
	ExpiresAt   time.Time
}
