package entity

import (
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validation messages reported by User.Validate.
const (
	MsgUserEmailInvalid        = "Email inválido"
	MsgUserPasswordInvalid     = "Senha inválida"
	MsgUserPhotoInvalid        = "Erro inexperado ao salvar foto de perfil"
	MsgUserCPFInvalid          = "CPF inválido"
	MsgUserNameInvalid         = "Nome inválido"
	MsgUserCreationDateInvalid = "Data de criação inválida"
)

// Conflict messages reported when a unique account key is already taken.
const (
	MsgUserEmailInUse = "Email já cadastrado."
	MsgUserCPFInUse   = "CPF já cadastrado."
)

// Account field bounds.
const (
	MaxUserEmailLength = 100
	MaxUserNameLength  = 100
	MinPasswordLength  = 8
	MaxPasswordLength  = 250
)

// DefaultPhotoID is the stored photo assigned to accounts without a profile picture.
const DefaultPhotoID = "3e577c3e-a5a4-4390-8f25-64f6abd883bf"

// emailValidate checks addresses against the validator's email grammar.
// A *validator.Validate caches struct info and is safe for concurrent use.
var emailValidate = validator.New()

// SecretHasher is the one-way digest the account applies to a new password.
type SecretHasher interface {
	Hash(secret string) (string, error)
}

// User is the core entity in the system, representing a private individual
// or a business (legal person) account.
type User struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	CPF           *string       `json:"cpf,omitempty"` // Individual taxpayer id; nil for legal persons.
	PhotoID       string        `json:"photo_id"`
	PasswordHash  string        `json:"-"`
	PhoneNumber   string        `json:"phone_number,omitempty"`
	IsLegalPerson bool          `json:"is_legal_person"`
	IsApproved    bool          `json:"is_approved"` // Legal persons start unapproved and need manual approval.
	CreationDate  time.Time     `json:"creation_date"`
	Address       *Address      `json:"address,omitempty"`
	Addresses     []*Address    `json:"addresses,omitempty"`
	FlowerShops   []*FlowerShop `json:"flower_shops,omitempty"`
	Offers        []*Offer      `json:"-"`
	Requests      []*Request    `json:"-"`

	// secretLength is the cleartext length captured when the secret last changed.
	secretLength  int
	secretChanged bool
}

// NewUserParams holds the inputs of NewUser.
type NewUserParams struct {
	CPF           string
	Name          string
	Email         string
	Password      string
	IsLegalPerson bool
	Address       *Address
	PhoneNumber   string
}

// NewUser builds an account, normalizing the tax id and approval flag from
// the legal-person flag and hashing the secret when one is supplied.
func NewUser(hasher SecretHasher, params NewUserParams) (*User, error) {
	user := &User{
		Name:          params.Name,
		Email:         params.Email,
		PhotoID:       DefaultPhotoID,
		PhoneNumber:   params.PhoneNumber,
		IsLegalPerson: params.IsLegalPerson,
		IsApproved:    !params.IsLegalPerson,
		CreationDate:  time.Now(),
		Address:       params.Address,
	}
	if !params.IsLegalPerson {
		cpf := params.CPF
		user.CPF = &cpf
	}

	if params.Password != "" {
		if err := user.ChangePassword(hasher, params.Password); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// ChangePassword hashes secret and replaces the stored hash. The cleartext
// length is kept only so the next validation can check it.
func (u *User) ChangePassword(hasher SecretHasher, secret string) error {
	hash, err := hasher.Hash(secret)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	u.PasswordHash = hash
	u.secretLength = utf8.RuneCountInString(secret)
	u.secretChanged = true

	return nil
}

// CleanPassword removes the password hash. Callers must redact an account
// before exposing it outside the service.
func (u *User) CleanPassword() {
	u.PasswordHash = ""
	u.secretLength = 0
	u.secretChanged = false
}

// Validate evaluates the account rules against the current time.
func (u *User) Validate() []string {
	return u.ValidateAt(time.Now())
}

// ValidateAt evaluates the account rules with now as the reference time,
// then cascades into the optional address.
func (u *User) ValidateAt(now time.Time) []string {
	var errs []string

	if !u.hasValidEmail() {
		errs = append(errs, MsgUserEmailInvalid)
	}
	if !u.hasValidPassword() {
		errs = append(errs, MsgUserPasswordInvalid)
	}
	if u.PhotoID == "" {
		errs = append(errs, MsgUserPhotoInvalid)
	}
	if !u.IsLegalPerson && (u.CPF == nil || !IsValidCPF(*u.CPF)) {
		errs = append(errs, MsgUserCPFInvalid)
	}
	if !u.HasValidName() {
		errs = append(errs, MsgUserNameInvalid)
	}
	if u.CreationDate.IsZero() || u.CreationDate.After(now) {
		errs = append(errs, MsgUserCreationDateInvalid)
	}

	return cascadeOptional(errs, u.Address != nil, u.Address)
}

// HasValidName reports whether the name is non-empty and within bounds.
func (u *User) HasValidName() bool {
	return lengthBetween(u.Name, 1, MaxUserNameLength)
}

func (u *User) hasValidEmail() bool {
	if !lengthBetween(u.Email, 1, MaxUserEmailLength) {
		return false
	}

	return emailValidate.Var(u.Email, "email") == nil
}

// hasValidPassword checks the cleartext length of a pending change, or the
// presence of a stored hash when the secret has not changed.
func (u *User) hasValidPassword() bool {
	if u.secretChanged {
		return u.secretLength >= MinPasswordLength && u.secretLength <= MaxPasswordLength
	}

	return u.PasswordHash != ""
}

// CPFValue returns the tax id, or an empty string when none is set.
func (u *User) CPFValue() string {
	if u.CPF == nil {
		return ""
	}

	return *u.CPF
}

// PhotoType implements Photogenic.
func (u *User) PhotoType() PhotoType {
	return PhotoTypeUser
}
