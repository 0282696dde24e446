package service

import (
	"context"

	"seedshare/internal/domain/entity"
	"seedshare/internal/errors"
)

// AccountLookup finds accounts by their unique keys. Implementations return
// notFound when no account holds the key.
type AccountLookup interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByCPF(ctx context.Context, cpf string) (*entity.User, error)
}

// AccountConflicts checks the email and tax id of an account against the
// accounts already stored.
type AccountConflicts struct {
	lookup   AccountLookup
	notFound error
}

// NewAccountConflicts creates a checker that treats notFound as "key is free".
func NewAccountConflicts(lookup AccountLookup, notFound error) *AccountConflicts {
	return &AccountConflicts{lookup: lookup, notFound: notFound}
}

// Check returns one message per unique key held by a different account, email
// first. A nil list means the account can be stored.
func (c *AccountConflicts) Check(ctx context.Context, user *entity.User) ([]string, error) {
	var conflicts []string

	taken, err := c.takenByOther(user, func() (*entity.User, error) {
		return c.lookup.FindByEmail(ctx, user.Email)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up email")
	}
	if taken {
		conflicts = append(conflicts, entity.MsgUserEmailInUse)
	}

	if cpf := user.CPFValue(); cpf != "" && !user.IsLegalPerson {
		taken, err = c.takenByOther(user, func() (*entity.User, error) {
			return c.lookup.FindByCPF(ctx, cpf)
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to look up cpf")
		}
		if taken {
			conflicts = append(conflicts, entity.MsgUserCPFInUse)
		}
	}

	return conflicts, nil
}

func (c *AccountConflicts) takenByOther(user *entity.User, find func() (*entity.User, error)) (bool, error) {
	existing, err := find()
	if errors.Is(err, c.notFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return existing.ID != user.ID, nil
}
