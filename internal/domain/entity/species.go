package entity

import "time"

// Validation messages reported by Species.Validate.
const (
	MsgSpeciesCommonNameInvalid     = "Nome comum inválido."
	MsgSpeciesScientificNameInvalid = "Nome científico inválido."
	MsgSpeciesDescriptionInvalid    = "Descrição da espécie inválida."
)

// Species is a catalog entry for a plant species that offers refer to.
type Species struct {
	ID             int64     `json:"id"`
	CommonName     string    `json:"common_name"`
	ScientificName string    `json:"scientific_name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate returns the species field failures in declaration order.
func (s *Species) Validate() []string {
	var errs []string

	if !lengthBetween(s.CommonName, 1, 100) {
		errs = append(errs, MsgSpeciesCommonNameInvalid)
	}
	if !lengthBetween(s.ScientificName, 1, 100) {
		errs = append(errs, MsgSpeciesScientificNameInvalid)
	}
	if !lengthBetween(s.Description, 0, 5000) {
		errs = append(errs, MsgSpeciesDescriptionInvalid)
	}

	return errs
}

// PhotoType implements Photogenic.
func (s *Species) PhotoType() PhotoType {
	return PhotoTypeSpecies
}
