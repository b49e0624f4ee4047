package models

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}

// ProductFilter narrows a catalog listing. Zero values match everything.
type ProductFilter struct {
	Category string
	Featured bool
	Search   string
}

type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

type CategoryList struct {
	Categories []Category `json:"categories"`
	Total      int        `json:"total"`
}
