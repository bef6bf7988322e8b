package request

type CheckoutRequest struct {
	ProductID string `json:"productId" validate:"required"`
}
