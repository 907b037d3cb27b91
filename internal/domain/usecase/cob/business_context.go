package cob

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/entity"
)

// BusinessContext carries the tenant and business dates fixed for one step invocation
type BusinessContext struct {
	Tenant        entity.Tenant
	BusinessDates map[entity.BusinessDateType]time.Time
}

type businessContextKey struct{}

// NewBusinessContext builds the context of a COB run closing cobDate.
// The business date is the day after the COB date.
func NewBusinessContext(tenant entity.Tenant, cobDate time.Time) BusinessContext {
	day := entity.BusinessDay(cobDate)
	return BusinessContext{
		Tenant: tenant,
		BusinessDates: map[entity.BusinessDateType]time.Time{
			entity.COBDate:      day,
			entity.BusinessDate: day.AddDate(0, 0, 1),
		},
	}
}

// BusinessDate returns the date of the given type, if set
func (bc BusinessContext) BusinessDate(dateType entity.BusinessDateType) (time.Time, bool) {
	date, ok := bc.BusinessDates[dateType]
	if !ok || date.IsZero() {
		return time.Time{}, false
	}
	return date, true
}

// WithBusinessContext returns a copy of ctx carrying bc
func WithBusinessContext(ctx context.Context, bc BusinessContext) context.Context {
	return context.WithValue(ctx, businessContextKey{}, bc)
}

// BusinessContextFrom returns the business context attached to ctx
func BusinessContextFrom(ctx context.Context) (BusinessContext, bool) {
	bc, ok := ctx.Value(businessContextKey{}).(BusinessContext)
	return bc, ok
}
