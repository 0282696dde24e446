package service

import (
	"context"
	"testing"

	"seedshare/internal/domain/entity"
	"seedshare/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoAccount = errors.New("no account")

type stubLookup struct {
	byEmail map[string]*entity.User
	byCPF   map[string]*entity.User
	err     error
}

func (s *stubLookup) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}

	return nil, errNoAccount
}

func (s *stubLookup) FindByCPF(_ context.Context, cpf string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if user, ok := s.byCPF[cpf]; ok {
		return user, nil
	}

	return nil, errNoAccount
}

func individual(id int64, email, cpf string) *entity.User {
	return &entity.User{ID: id, Email: email, CPF: &cpf}
}

func TestAccountConflicts_Check(t *testing.T) {
	stored := individual(7, "maria@example.com", "52998224725")
	lookup := &stubLookup{
		byEmail: map[string]*entity.User{stored.Email: stored},
		byCPF:   map[string]*entity.User{*stored.CPF: stored},
	}
	checker := NewAccountConflicts(lookup, errNoAccount)

	tests := []struct {
		name string
		user *entity.User
		want []string
	}{
		{"both keys free", individual(0, "joao@example.com", "11144477735"), nil},
		{"email taken", individual(0, "maria@example.com", "11144477735"), []string{entity.MsgUserEmailInUse}},
		{"both taken", individual(0, "maria@example.com", "52998224725"), []string{entity.MsgUserEmailInUse, entity.MsgUserCPFInUse}},
		{"same account is not a conflict", individual(7, "maria@example.com", "52998224725"), nil},
		{"legal person skips cpf", &entity.User{Email: "loja@example.com", IsLegalPerson: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checker.Check(context.Background(), tt.user)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountConflicts_LookupFailure(t *testing.T) {
	checker := NewAccountConflicts(&stubLookup{err: errors.New("connection refused")}, errNoAccount)

	got, err := checker.Check(context.Background(), individual(0, "a@b.com", "52998224725"))

	assert.Error(t, err)
	assert.Nil(t, got)
}
