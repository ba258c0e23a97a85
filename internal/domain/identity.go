package domain

import "context"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleYouth Role = "youth"
)

type AuthMethod string

const (
	AuthMethodEmail  AuthMethod = "email"
	AuthMethodGoogle AuthMethod = "google"
)

// StaffRecord is a read-only staff lookup entry owned by an external system
// of record. Only staff with YouthPortalAccess may administer the portal.
type StaffRecord struct {
	Email             string
	Name              string
	YouthPortalAccess bool
}

// CustomerRecord is a read-only customer lookup entry owned by an external
// system of record.
type CustomerRecord struct {
	Email     string
	FirstName string
	LastName  string
}

// AccessGrant is the result of the pre-authentication access check.
type AccessGrant struct {
	Role               Role         `json:"role"`
	Message            string       `json:"message"`
	AllowedAuthMethods []AuthMethod `json:"allowedAuthMethods"`
}

// RoleInfo is the result of the post-authentication role lookup.
type RoleInfo struct {
	Role               Role         `json:"role"`
	Email              string       `json:"email"`
	Name               string       `json:"name"`
	AllowedAuthMethods []AuthMethod `json:"allowedAuthMethods"`
}

type StaffDirectory interface {
	// GetByEmail returns the staff record for a normalized email, or
	// ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*StaffRecord, error)
}

type CustomerDirectory interface {
	// GetByEmail returns the customer record for a normalized email, or
	// ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*CustomerRecord, error)
}
