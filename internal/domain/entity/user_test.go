package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Individual(t *testing.T) {
	user, err := NewUser(prefixHasher{}, NewUserParams{
		CPF:      validCPF,
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "s3gredo-forte",
	})

	require.NoError(t, err)
	require.NotNil(t, user.CPF)
	assert.Equal(t, validCPF, *user.CPF)
	assert.True(t, user.IsApproved)
	assert.Equal(t, DefaultPhotoID, user.PhotoID)
	assert.Equal(t, "hashed:s3gredo-forte", user.PasswordHash)
	assert.False(t, user.CreationDate.IsZero())
	assert.Empty(t, user.ValidateAt(time.Now().Add(time.Second)))
}

func TestNewUser_LegalPersonDropsCPF(t *testing.T) {
	user, err := NewUser(prefixHasher{}, NewUserParams{
		CPF:           validCPF,
		Name:          "Jardim Ltda",
		Email:         "contato@jardim.com.br",
		Password:      "s3gredo-forte",
		IsLegalPerson: true,
	})

	require.NoError(t, err)
	assert.Nil(t, user.CPF)
	assert.Empty(t, user.CPFValue())
	assert.False(t, user.IsApproved)
}

func TestNewUser_HasherFailure(t *testing.T) {
	user, err := NewUser(failingHasher{}, NewUserParams{
		CPF:      validCPF,
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "s3gredo-forte",
	})

	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestNewUser_EmptyPasswordIsInvalid(t *testing.T) {
	user, err := NewUser(failingHasher{}, NewUserParams{
		CPF:   validCPF,
		Name:  "Maria Silva",
		Email: "maria@example.com",
	})

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, []string{MsgUserPasswordInvalid}, user.ValidateAt(time.Now().Add(time.Second)))
}

func TestUser_Validate_ShortCPF(t *testing.T) {
	user := newTestIndividual()
	cpf := "000000000"
	user.CPF = &cpf

	assert.Equal(t, []string{MsgUserCPFInvalid}, user.Validate())
}

func TestUser_Validate_CPFRules(t *testing.T) {
	tests := []struct {
		name  string
		cpf   *string
		legal bool
		want  []string
	}{
		{"empty individual cpf", new(string), false, []string{MsgUserCPFInvalid}},
		{"missing individual cpf", nil, false, []string{MsgUserCPFInvalid}},
		{"legal person ignores cpf", nil, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := newTestIndividual()
			user.CPF = tt.cpf
			user.IsLegalPerson = tt.legal

			assert.Equal(t, tt.want, user.Validate())
		})
	}
}

func TestUser_Validate_PasswordLength(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		valid  bool
	}{
		{"too short", "1234567", false},
		{"minimum", "12345678", true},
		{"maximum", strings.Repeat("x", MaxPasswordLength), true},
		{"too long", strings.Repeat("x", MaxPasswordLength+1), false},
		{"multibyte counted as characters", strings.Repeat("ç", MinPasswordLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := newTestIndividual()
			require.NoError(t, user.ChangePassword(prefixHasher{}, tt.secret))

			errs := user.Validate()
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, []string{MsgUserPasswordInvalid}, errs)
			}
		})
	}
}

func TestUser_Validate_StoredHashWithoutChange(t *testing.T) {
	user := &User{
		Name:         "Maria Silva",
		Email:        "maria@example.com",
		CPF:          new(string),
		PhotoID:      DefaultPhotoID,
		PasswordHash: "stored-hash",
		CreationDate: time.Now().Add(-time.Hour),
	}
	*user.CPF = validCPF

	assert.Empty(t, user.Validate())

	user.CleanPassword()
	assert.Equal(t, []string{MsgUserPasswordInvalid}, user.Validate())
}

func TestUser_Validate_EmailRules(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain address", "maria@example.com", true},
		{"empty", "", false},
		{"missing at sign", "maria.example.com", false},
		{"missing domain", "maria@", false},
		{"too long", strings.Repeat("a", MaxUserEmailLength-len("@example.com")+1) + "@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := newTestIndividual()
			user.Email = tt.email

			errs := user.Validate()
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, []string{MsgUserEmailInvalid}, errs)
			}
		})
	}
}

func TestUser_Validate_CreationDate(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	user := newTestIndividual()

	user.CreationDate = now
	assert.Empty(t, user.ValidateAt(now))

	user.CreationDate = now.Add(time.Minute)
	assert.Equal(t, []string{MsgUserCreationDateInvalid}, user.ValidateAt(now))

	user.CreationDate = time.Time{}
	assert.Equal(t, []string{MsgUserCreationDateInvalid}, user.ValidateAt(now))
}

func TestUser_Validate_OrderAndCascade(t *testing.T) {
	user := &User{
		Email:   "bad",
		Address: &Address{Street: "Rua", Number: "1", Neighborhood: "B", City: "C", State: "SP", PostalCode: "123"},
	}

	assert.Equal(t, []string{
		MsgUserEmailInvalid,
		MsgUserPasswordInvalid,
		MsgUserPhotoInvalid,
		MsgUserCPFInvalid,
		MsgUserNameInvalid,
		MsgUserCreationDateInvalid,
		MsgAddressPostalCodeInvalid,
	}, user.Validate())
}

func TestUser_HasValidName(t *testing.T) {
	user := &User{Name: longText(MaxUserNameLength)}
	assert.True(t, user.HasValidName())

	user.Name = longText(MaxUserNameLength + 1)
	assert.False(t, user.HasValidName())

	user.Name = ""
	assert.False(t, user.HasValidName())
}
