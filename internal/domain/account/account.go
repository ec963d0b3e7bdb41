package account

import (
	"context"

	"github.com/salonhub/salon-booking-api/internal/httperr"
)

// ===============================
// Account kinds
// ===============================

// Each kind is bound to its own credential store. Superadmin and user
// accounts live in the same table, split by role.
type Kind string

const (
	KindSuperadmin Kind = "superadmin"
	KindShopOwner  Kind = "shopowner"
	KindStaff      Kind = "staff"
	KindUser       Kind = "user"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSuperadmin, KindShopOwner, KindStaff, KindUser:
		return Kind(s), nil
	}
	return "", httperr.ErrBusiness("invalid_user_type")
}

// ===============================
// Credential resolution
// ===============================

// Principal is the identity any store resolves to.
type Principal struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
}

type Store interface {
	FindByEmail(ctx context.Context, email string) (*Principal, error)
	FindByID(ctx context.Context, id uint) (*Principal, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

// Directory maps each account kind onto its store.
type Directory map[Kind]Store

func (d Directory) Lookup(kind Kind) (Store, error) {
	store, ok := d[kind]
	if !ok {
		return nil, httperr.ErrBusiness("invalid_user_type")
	}
	return store, nil
}
