package models

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" form:"name" binding:"required"`
	Code        string   `json:"code" form:"code" binding:"required"`
	Description string   `json:"description" form:"description"`
	Price       int64    `json:"price" form:"price" binding:"required,gt=0"`
	Stock       int      `json:"stock" form:"stock" binding:"gte=0"`
	Category    string   `json:"category" form:"category" binding:"required"`
	Images      []string `json:"images" form:"images"`
	Featured    bool     `json:"featured" form:"featured"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" form:"name"`
	Code        *string  `json:"code" form:"code"`
	Description *string  `json:"description" form:"description"`
	Price       *int64   `json:"price" form:"price" binding:"omitempty,gt=0"`
	Stock       *int     `json:"stock" form:"stock" binding:"omitempty,gte=0"`
	Category    *string  `json:"category" form:"category"`
	Images      []string `json:"images" form:"images"`
	Featured    *bool    `json:"featured" form:"featured"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutItemRequest struct {
	ID       string `json:"id" binding:"required"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items"`
}

// SellerApplicationRequest is the flat form posted by the seller signup page.
type SellerApplicationRequest struct {
	FirstName       string   `json:"firstName" binding:"required"`
	LastName        string   `json:"lastName" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone" binding:"required"`
	DNI             string   `json:"dni" binding:"required"`
	BirthDate       string   `json:"birthDate"`
	BusinessName    string   `json:"businessName" binding:"required"`
	BusinessType    string   `json:"businessType" binding:"required,oneof=individual company"`
	CUIT            string   `json:"cuit" binding:"required"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Province        string   `json:"province"`
	PostalCode      string   `json:"postalCode"`
	HasExperience   bool     `json:"hasExperience"`
	YearsExperience *int     `json:"yearsExperience"`
	PreviousWork    string   `json:"previousWork"`
	Specialties     []string `json:"specialties"`
	Motivation      string   `json:"motivation"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
