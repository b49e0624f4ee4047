package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

type BusinessType string

const (
	BusinessIndividual BusinessType = "individual"
	BusinessCompany    BusinessType = "company"
)

func (b BusinessType) Valid() bool {
	switch b {
	case BusinessIndividual, BusinessCompany:
		return true
	}
	return false
}

type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	DNI       string `json:"dni"`
	BirthDate string `json:"birthDate"`
}

type BusinessInfo struct {
	BusinessName string       `json:"businessName"`
	BusinessType BusinessType `json:"businessType"`
	CUIT         string       `json:"cuit"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	Province     string       `json:"province"`
	PostalCode   string       `json:"postalCode"`
}

type Experience struct {
	HasExperience   bool     `json:"hasExperience"`
	YearsExperience *int     `json:"yearsExperience,omitempty"`
	PreviousWork    string   `json:"previousWork,omitempty"`
	Specialties     []string `json:"specialties"`
}

type SellerApplication struct {
	ID           string            `json:"id"`
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	BusinessInfo BusinessInfo      `json:"businessInfo"`
	Experience   Experience        `json:"experience"`
	Motivation   string            `json:"motivation"`
	Status       ApplicationStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type SellerApplicationList struct {
	Applications []SellerApplication `json:"applications"`
	Total        int                 `json:"total"`
}
