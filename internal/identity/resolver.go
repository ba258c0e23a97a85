// Package identity resolves a caller's portal role from the staff,
// customer and youth-whitelist lookup sources. It is read-only and runs on
// every authenticated request; results are never cached across requests
// because whitelist and staff state can change at any time.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vishal-Gehlot-DrJoe/youth-portal/internal/domain"
)

type Resolver struct {
	staff     domain.StaffDirectory
	customers domain.CustomerDirectory
	youth     domain.YouthEmailRepository
}

func NewResolver(staff domain.StaffDirectory, customers domain.CustomerDirectory, youth domain.YouthEmailRepository) *Resolver {
	return &Resolver{staff: staff, customers: customers, youth: youth}
}

// Normalize lowercases and trims an email. Every lookup goes through this so
// stored and submitted addresses compare equal.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// match is the outcome of the shared lookup core. Both public call sites
// build their responses from the same match so the precedence rules cannot
// diverge between them.
type match struct {
	role     domain.Role
	staff    *domain.StaffRecord
	customer *domain.CustomerRecord
}

// lookup applies the resolution order: staff with portal access wins
// outright; otherwise the caller must be both actively whitelisted and a
// known customer. A nil match means no role.
func (r *Resolver) lookup(ctx context.Context, email string) (*match, error) {
	staff, err := r.staff.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("identity.lookup: staff: %w", err)
	}
	if staff != nil && staff.YouthPortalAccess {
		return &match{role: domain.RoleAdmin, staff: staff}, nil
	}

	entry, err := r.youth.GetActiveByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("identity.lookup: whitelist: %w", err)
	}
	if entry == nil {
		return nil, nil
	}

	customer, err := r.customers.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("identity.lookup: customer: %w", err)
	}
	if customer == nil {
		return nil, nil
	}

	return &match{role: domain.RoleYouth, customer: customer}, nil
}

// ValidateAccess is the pre-authentication access check. A miss is
// ErrNotFound so the portal login page can tell the visitor their email is
// not authorized.
//
// Youth members are offered both Google and email sign-in here, while
// ResolveRole reports Google only. The asymmetry is long-standing observed
// behavior that existing clients depend on; both paths share lookup so at
// least the role decision cannot drift.
func (r *Resolver) ValidateAccess(ctx context.Context, email string) (*domain.AccessGrant, error) {
	m, err := r.lookup(ctx, Normalize(email))
	if err != nil {
		return nil, fmt.Errorf("identity.ValidateAccess: %w", err)
	}

	switch {
	case m == nil:
		return nil, fmt.Errorf("identity.ValidateAccess: email not authorized for youth portal access: %w", domain.ErrNotFound)
	case m.role == domain.RoleAdmin:
		return &domain.AccessGrant{
			Role:               domain.RoleAdmin,
			Message:            "User is a Youth Portal Admin",
			AllowedAuthMethods: []domain.AuthMethod{domain.AuthMethodEmail},
		}, nil
	default:
		return &domain.AccessGrant{
			Role:               domain.RoleYouth,
			Message:            "User is a Youth Member",
			AllowedAuthMethods: []domain.AuthMethod{domain.AuthMethodGoogle, domain.AuthMethodEmail},
		}, nil
	}
}

// ResolveRole is the post-authentication role lookup. A miss is ErrForbidden:
// the caller proved who they are but is not entitled to the portal.
func (r *Resolver) ResolveRole(ctx context.Context, email string) (*domain.RoleInfo, error) {
	normalized := Normalize(email)

	m, err := r.lookup(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("identity.ResolveRole: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("identity.ResolveRole: user not authorized for youth portal: %w", domain.ErrForbidden)
	}

	if m.role == domain.RoleAdmin {
		name := m.staff.Name
		if name == "" {
			name = "Admin"
		}
		return &domain.RoleInfo{
			Role:               domain.RoleAdmin,
			Email:              normalized,
			Name:               name,
			AllowedAuthMethods: []domain.AuthMethod{domain.AuthMethodEmail},
		}, nil
	}

	name := "Youth Member"
	if m.customer.FirstName != "" {
		name = strings.TrimSpace(m.customer.FirstName + " " + m.customer.LastName)
	}

	return &domain.RoleInfo{
		Role:               domain.RoleYouth,
		Email:              normalized,
		Name:               name,
		AllowedAuthMethods: []domain.AuthMethod{domain.AuthMethodGoogle},
	}, nil
}
