package response

import "artisanverse/internal/data/entity"

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ArtisanID   string   `json:"artisanId"`
	CategoryID  string   `json:"categoryId"`
	Price       int      `json:"price"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Description string   `json:"description"`
	Story       string   `json:"story"`
	ImageIDs    []string `json:"imageIds"`
}

func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		ArtisanID:   p.ArtisanID,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Description: p.Description,
		Story:       p.Story,
		ImageIDs:    p.ImageIDs,
	}
}

// PurchaseView is a purchase joined with its product for the customer
// dashboard.
type PurchaseView struct {
	OrderID      string           `json:"orderId"`
	PurchaseDate string           `json:"purchaseDate"`
	Product      *ProductResponse `json:"product,omitempty"`
}
