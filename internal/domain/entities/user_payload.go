package entities

// NaturalUserPayload is the MangoPay body for a natural user.

type NaturalUserPayload struct {
	ID                 string     `json:"Id,omitempty"`
	PersonType         PersonType `json:"PersonType"`
	FirstName          string     `json:"FirstName" validate:"required"`
	LastName           string     `json:"LastName" validate:"required"`
	Birthday           int64      `json:"Birthday" validate:"required"`
	Nationality        string     `json:"Nationality" validate:"required,len=2"`
	CountryOfResidence string     `json:"CountryOfResidence" validate:"required,len=2"`
	Email              string     `json:"Email" validate:"required,email"`
	Tag                string     `json:"Tag,omitempty"`
}

// LegalUserPayload is the MangoPay body for a legal user.
//
// LegalRepresentativeAddress is only checked when present.

type LegalUserPayload struct {
	ID                                    string     `json:"Id,omitempty"`
	PersonType                            PersonType `json:"PersonType"`
	LegalPersonType                       string     `json:"LegalPersonType"`
	Name                                  string     `json:"Name" validate:"required"`
	Email                                 string     `json:"Email" validate:"required,email"`
	CompanyNumber                         string     `json:"CompanyNumber,omitempty"`
	HeadquartersAddress                   *Address   `json:"HeadquartersAddress" validate:"required"`
	LegalRepresentativeAddress            *Address   `json:"LegalRepresentativeAddress,omitempty" validate:"omitempty"`
	LegalRepresentativeEmail              string     `json:"LegalRepresentativeEmail,omitempty" validate:"omitempty,email"`
	LegalRepresentativeBirthday           int64      `json:"LegalRepresentativeBirthday" validate:"required"`
	LegalRepresentativeCountryOfResidence string     `json:"LegalRepresentativeCountryOfResidence" validate:"required,len=2"`
	LegalRepresentativeNationality        string     `json:"LegalRepresentativeNationality" validate:"required,len=2"`
	LegalRepresentativeFirstName          string     `json:"LegalRepresentativeFirstName" validate:"required"`
	LegalRepresentativeLastName           string     `json:"LegalRepresentativeLastName" validate:"required"`
	Tag                                   string     `json:"Tag,omitempty"`
}

const LegalPersonTypeBusiness = "BUSINESS"
