package dto

// CategoryResponse describes one catalog category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductResponse describes one catalog product.
type ProductResponse struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Status      string `json:"status"`
	PhotoURL    string `json:"photo_url,omitempty"`
}
