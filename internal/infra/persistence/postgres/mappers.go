package postgres

import (
	"seedshare/internal/domain/entity"
	"seedshare/internal/infra/persistence/model"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.
// Domain-to-model mappers carry foreign keys only; associations are written
// by their own repositories.

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	address := &entity.Address{
		ID:           data.ID,
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.UserID != nil {
		address.UserID = *data.UserID
	}

	return address
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		UserID:       optionalID(data.UserID),
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		PhotoID:       data.PhotoID,
		PasswordHash:  data.PasswordHash,
		PhoneNumber:   data.PhoneNumber,
		IsLegalPerson: data.IsLegalPerson,
		IsApproved:    data.IsApproved,
		CreationDate:  data.CreationDate,
		Address:       toAddressDomain(data.Address),
	}
	if data.CPF != nil {
		cpf := *data.CPF
		user.CPF = &cpf
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		PhotoID:       data.PhotoID,
		PasswordHash:  data.PasswordHash,
		PhoneNumber:   data.PhoneNumber,
		IsLegalPerson: data.IsLegalPerson,
		IsApproved:    data.IsApproved,
		CreationDate:  data.CreationDate,
	}
	if data.CPF != nil && !data.IsLegalPerson {
		cpf := *data.CPF
		userM.CPF = &cpf
	}
	if data.Address != nil {
		userM.AddressID = optionalID(data.Address.ID)
	}

	return userM
}

func toSpeciesDomain(data *model.SpeciesModel) *entity.Species {
	if data == nil {
		return nil
	}

	return &entity.Species{
		ID:             data.ID,
		CommonName:     data.CommonName,
		ScientificName: data.ScientificName,
		Description:    data.Description,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromSpeciesDomain(data *entity.Species) *model.SpeciesModel {
	return &model.SpeciesModel{
		ID:             data.ID,
		CommonName:     data.CommonName,
		ScientificName: data.ScientificName,
		Description:    data.Description,
	}
}

func toFlowerShopDomain(data *model.FlowerShopModel) *entity.FlowerShop {
	if data == nil {
		return nil
	}

	return &entity.FlowerShop{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		CNPJ:        data.CNPJ,
		Description: data.Description,
		PhoneNumber: data.PhoneNumber,
		Address:     toAddressDomain(data.Address),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromFlowerShopDomain(data *entity.FlowerShop) *model.FlowerShopModel {
	shopM := &model.FlowerShopModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		CNPJ:        data.CNPJ,
		Description: data.Description,
		PhoneNumber: data.PhoneNumber,
	}
	if data.Address != nil {
		shopM.AddressID = data.Address.ID
	}

	return shopM
}

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:              data.ID,
		UnitPrice:       data.UnitPrice,
		RemainingAmount: data.RemainingAmount,
		InitialAmount:   data.InitialAmount,
		Status:          entity.OfferStatus(data.Status),
		Type:            entity.OfferType(data.Type),
		ProductAge:      data.ProductAge,
		Description:     data.Description,
		User:            toUserDomain(data.User),
		Species:         toSpeciesDomain(data.Species),
		FlowerShop:      toFlowerShopDomain(data.FlowerShop),
		Address:         toAddressDomain(data.Address),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	offerM := &model.OfferModel{
		ID:              data.ID,
		UnitPrice:       data.UnitPrice,
		RemainingAmount: data.RemainingAmount,
		InitialAmount:   data.InitialAmount,
		Status:          int16(data.Status),
		Type:            int16(data.Type),
		ProductAge:      data.ProductAge,
		Description:     data.Description,
	}
	if data.User != nil {
		offerM.UserID = data.User.ID
	}
	if data.Species != nil {
		offerM.SpeciesID = data.Species.ID
	}
	if data.FlowerShop != nil {
		offerM.FlowerShopID = optionalID(data.FlowerShop.ID)
	}
	if data.Address != nil {
		offerM.AddressID = data.Address.ID
	}

	return offerM
}

func toRequestDomain(data *model.RequestModel) *entity.Request {
	return &entity.Request{
		ID:           data.ID,
		UserID:       data.UserID,
		OfferID:      data.OfferID,
		Amount:       data.Amount,
		CreationDate: data.CreationDate,
	}
}

// mapAll converts every row with conv, keeping order.
func mapAll[M, E any](rows []*M, conv func(*M) *E) []*E {
	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		out = append(out, conv(row))
	}

	return out
}

// optionalID maps the zero id to a NULL foreign key.
func optionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}

	return &id
}
