package repositories

import (
	"time"

	"hardware-store/models"
)

func seedDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// SeedCategories mirrors database/migration/000002_seed_catalog.up.sql.
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Herramientas", Slug: "herramientas", Description: "Herramientas manuales y básicas para todo tipo de trabajos", Image: "https://picsum.photos/300/200?random=tools"},
		{ID: "2", Name: "Herramientas Eléctricas", Slug: "herramientas-electricas", Description: "Herramientas eléctricas para trabajos profesionales", Image: "https://picsum.photos/300/200?random=electric"},
		{ID: "3", Name: "Ferretería", Slug: "ferreteria", Description: "Tornillos, clavos, tuercas y elementos de ferretería", Image: "https://picsum.photos/300/200?random=hardware"},
		{ID: "4", Name: "Pintura", Slug: "pintura", Description: "Pinturas, barnices y accesorios para pintura", Image: "https://picsum.photos/300/200?random=paint"},
		{ID: "5", Name: "Fontanería", Slug: "fontaneria", Description: "Tuberías, llaves, accesorios y herramientas de fontanería", Image: "https://picsum.photos/300/200?random=plumbing"},
		{ID: "6", Name: "Electricidad", Slug: "electricidad", Description: "Cables, enchufes, interruptores y material eléctrico", Image: "https://picsum.photos/300/200?random=electrical"},
		{ID: "7", Name: "Seguridad", Slug: "seguridad", Description: "Elementos de protección personal y seguridad", Image: "https://picsum.photos/300/200?random=safety"},
		{ID: "8", Name: "Jardín", Slug: "jardin", Description: "Herramientas y accesorios para jardín", Image: "https://picsum.photos/300/200?random=garden"},
	}
}

func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Martillo de Acero",
			Code:        "MAR001",
			Description: "Martillo de acero forjado con mango ergonómico. Ideal para trabajos de carpintería y construcción.",
			Price:       25000,
			Stock:       50,
			Category:    "Herramientas",
			Images:      []string{"https://picsum.photos/400/400?random=1"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-01"),
			UpdatedAt:   seedDate("2024-01-01"),
		},
		{
			ID:          "2",
			Name:        "Destornillador Phillips",
			Code:        "DES001",
			Description: "Set de destornilladores Phillips de diferentes tamaños. Mango antideslizante.",
			Price:       15000,
			Stock:       30,
			Category:    "Herramientas",
			Images:      []string{"https://picsum.photos/400/400?random=2"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-02"),
			UpdatedAt:   seedDate("2024-01-02"),
		},
		{
			ID:          "3",
			Name:        "Taladro Eléctrico",
			Code:        "TAL001",
			Description: "Taladro eléctrico de 500W con velocidad variable. Incluye set de brocas.",
			Price:       85000,
			Stock:       15,
			Category:    "Herramientas Eléctricas",
			Images:      []string{"https://picsum.photos/400/400?random=3"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-03"),
			UpdatedAt:   seedDate("2024-01-03"),
		},
		{
			ID:          "4",
			Name:        "Tornillos Autorroscantes",
			Code:        "TOR001",
			Description: "Caja de 100 tornillos autorroscantes de 1 pulgada. Acero galvanizado.",
			Price:       8000,
			Stock:       100,
			Category:    "Ferretería",
			Images:      []string{"https://picsum.photos/400/400?random=4"},
			Featured:    false,
			CreatedAt:   seedDate("2024-01-04"),
			UpdatedAt:   seedDate("2024-01-04"),
		},
		{
			ID:          "5",
			Name:        "Pintura Látex Blanca",
			Code:        "PIN001",
			Description: "Pintura látex blanca de 1 galón. Acabado mate, fácil aplicación.",
			Price:       35000,
			Stock:       25,
			Category:    "Pintura",
			Images:      []string{"https://picsum.photos/400/400?random=5"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-05"),
			UpdatedAt:   seedDate("2024-01-05"),
		},
		{
			ID:          "6",
			Name:        "Llave Inglesa",
			Code:        "LLA001",
			Description: "Llave inglesa ajustable de 10 pulgadas. Acero al carbono.",
			Price:       22000,
			Stock:       40,
			Category:    "Herramientas",
			Images:      []string{"https://picsum.photos/400/400?random=6"},
			Featured:    false,
			CreatedAt:   seedDate("2024-01-06"),
			UpdatedAt:   seedDate("2024-01-06"),
		},
		{
			ID:          "7",
			Name:        "Sierra Circular",
			Code:        "SIE001",
			Description: "Sierra circular de 7 1/4 pulgadas con motor de 1200W. Incluye hoja de corte.",
			Price:       150000,
			Stock:       8,
			Category:    "Herramientas Eléctricas",
			Images:      []string{"https://picsum.photos/400/400?random=7"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-07"),
			UpdatedAt:   seedDate("2024-01-07"),
		},
		{
			ID:          "8",
			Name:        "Clavos de Acero",
			Code:        "CLA001",
			Description: "Caja de 500 clavos de acero de 2 pulgadas. Cabeza redonda.",
			Price:       12000,
			Stock:       80,
			Category:    "Ferretería",
			Images:      []string{"https://picsum.photos/400/400?random=8"},
			Featured:    false,
			CreatedAt:   seedDate("2024-01-08"),
			UpdatedAt:   seedDate("2024-01-08"),
		},
		{
			ID:          "9",
			Name:        "Amoladora Angular",
			Code:        "AMO001",
			Description: "Amoladora angular de 4.5 pulgadas con motor de 850W. Ideal para corte y desbaste.",
			Price:       95000,
			Stock:       12,
			Category:    "Herramientas Eléctricas",
			Images:      []string{"https://picsum.photos/400/400?random=9"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-09"),
			UpdatedAt:   seedDate("2024-01-09"),
		},
		{
			ID:          "10",
			Name:        "Set de Llaves Combinadas",
			Code:        "SET001",
			Description: "Set de 12 llaves combinadas de 8mm a 19mm. Acero cromo vanadio.",
			Price:       45000,
			Stock:       20,
			Category:    "Herramientas",
			Images:      []string{"https://picsum.photos/400/400?random=10"},
			Featured:    false,
			CreatedAt:   seedDate("2024-01-10"),
			UpdatedAt:   seedDate("2024-01-10"),
		},
		{
			ID:          "11",
			Name:        "Soldadora Inverter",
			Code:        "SOL001",
			Description: "Soldadora inverter de 200A con display digital. Incluye accesorios.",
			Price:       280000,
			Stock:       5,
			Category:    "Herramientas Eléctricas",
			Images:      []string{"https://picsum.photos/400/400?random=11"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-11"),
			UpdatedAt:   seedDate("2024-01-11"),
		},
		{
			ID:          "12",
			Name:        "Escalera de Aluminio",
			Code:        "ESC001",
			Description: "Escalera de aluminio de 6 escalones. Capacidad 150kg.",
			Price:       120000,
			Stock:       8,
			Category:    "Seguridad",
			Images:      []string{"https://picsum.photos/400/400?random=12"},
			Featured:    false,
			CreatedAt:   seedDate("2024-01-12"),
			UpdatedAt:   seedDate("2024-01-12"),
		},
		{
			ID:          "13",
			Name:        "Compresor de Aire",
			Code:        "COM001",
			Description: "Compresor de aire de 50L con motor de 2HP. Ideal para herramientas neumáticas.",
			Price:       350000,
			Stock:       3,
			Category:    "Herramientas Eléctricas",
			Images:      []string{"https://picsum.photos/400/400?random=13"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-13"),
			UpdatedAt:   seedDate("2024-01-13"),
		},
		{
			ID:          "14",
			Name:        "Casco de Seguridad",
			Code:        "CAS001",
			Description: "Casco de seguridad industrial con ajuste de cremallera. Certificado.",
			Price:       18000,
			Stock:       50,
			Category:    "Seguridad",
			Images:      []string{"https://picsum.photos/400/400?random=14"},
			Featured:    false,
			CreatedAt:   seedDate("2024-01-14"),
			UpdatedAt:   seedDate("2024-01-14"),
		},
		{
			ID:          "15",
			Name:        "Lijadora Orbital",
			Code:        "LIJ001",
			Description: "Lijadora orbital de 1/4 de hoja con sistema de aspiración de polvo.",
			Price:       75000,
			Stock:       15,
			Category:    "Herramientas Eléctricas",
			Images:      []string{"https://picsum.photos/400/400?random=15"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-15"),
			UpdatedAt:   seedDate("2024-01-15"),
		},
		{
			ID:          "16",
			Name:        "Tubo PVC 110mm",
			Code:        "TUB001",
			Description: "Tubo PVC sanitario de 110mm x 3m. Para desagües cloacales.",
			Price:       12000,
			Stock:       30,
			Category:    "Fontanería",
			Images:      []string{"https://picsum.photos/400/400?random=16"},
			Featured:    false,
			CreatedAt:   seedDate("2024-01-16"),
			UpdatedAt:   seedDate("2024-01-16"),
		},
		{
			ID:          "17",
			Name:        "Cable Eléctrico 2.5mm",
			Code:        "CAB001",
			Description: "Cable eléctrico unipolar de 2.5mm x 100m. Certificado IRAM.",
			Price:       85000,
			Stock:       25,
			Category:    "Electricidad",
			Images:      []string{"https://picsum.photos/400/400?random=17"},
			Featured:    false,
			CreatedAt:   seedDate("2024-01-17"),
			UpdatedAt:   seedDate("2024-01-17"),
		},
		{
			ID:          "18",
			Name:        "Motosierra",
			Code:        "MOT001",
			Description: "Motosierra de 16 pulgadas con motor de 2 tiempos. Ideal para poda.",
			Price:       180000,
			Stock:       6,
			Category:    "Jardín",
			Images:      []string{"https://picsum.photos/400/400?random=18"},
			Featured:    true,
			CreatedAt:   seedDate("2024-01-18"),
			UpdatedAt:   seedDate("2024-01-18"),
		},
	}
}
