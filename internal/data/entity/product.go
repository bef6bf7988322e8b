package entity

// Product is a marketplace listing owned by an artisan. The artisan id is a
// foreign key by convention only; nothing enforces it at write time.
type Product struct {
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
