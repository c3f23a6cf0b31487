package models

// Painting is one artwork of the gallery catalog
type Painting struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Year        int    `json:"year" yaml:"year"`
	Medium      string `json:"medium" yaml:"medium"`
	Dimensions  string `json:"dimensions" yaml:"dimensions"`
	ImageURL    string `json:"imageUrl" yaml:"image_url"`
}

// Biography holds the artist's fixed biography
type Biography struct {
	Name        string `json:"name" yaml:"name"`
	Birth       string `json:"birth" yaml:"birth"`
	Death       string `json:"death" yaml:"death"`
	Nationality string `json:"nationality" yaml:"nationality"`
	Movement    string `json:"movement" yaml:"movement"`
	KnownFor    string `json:"knownFor" yaml:"known_for"`
	TotalWorks  string `json:"totalWorks" yaml:"total_works"`
	Quote       string `json:"quote" yaml:"quote"`
}

type CatalogResponse struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Data    []Painting `json:"data"`
}

type PaintingResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    Painting `json:"data"`
}

type BiographyResponse struct {
	Success bool      `json:"success"`
	Data    Biography `json:"data"`
}

// HealthStatus is the body of the health check endpoint
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}
