package entity

// Purchase is one line of a customer's order history.
type Purchase struct {
	OrderID      string `json:"orderId"`
	CustomerID   string `json:"customerId"`
	ProductID    string `json:"productId"`
	PurchaseDate string `json:"purchaseDate"`
}
