package entity

import (
	"time"
)

// DefaultTenantIdentifier is used when the scheduler does not name a tenant
const DefaultTenantIdentifier = "default"

// Tenant identifies the platform tenant a COB step runs for
type Tenant struct {
	ID         int64
	Identifier string
	Name       string
	TimezoneID string
}

// NewDefaultTenant returns the single-tenant default
func NewDefaultTenant() Tenant {
	return Tenant{
		ID:         1,
		Identifier: DefaultTenantIdentifier,
		Name:       "Default",
		TimezoneID: "UTC",
	}
}

// Location returns the tenant's time zone, falling back to UTC when unknown
func (t Tenant) Location() *time.Location {
	if t.TimezoneID == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(t.TimezoneID)
	if err != nil {
		return time.UTC
	}
	return loc
}
