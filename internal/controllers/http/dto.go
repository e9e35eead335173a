package http

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type LoginRequest struct {
	FiveDigitID string `json:"fiveDigitId" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProductRequest struct {
	Title        string   `json:"title" binding:"required"`
	Price        int64    `json:"price" binding:"min=0"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Category     string   `json:"category"`
	DeliveryTime string   `json:"deliveryTime"`
	Sizes        []string `json:"sizes"`
}

type AddToCartRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	SelectedSize string `json:"selectedSize"`
}

type RemoveFromCartRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	SelectedSize string `json:"selectedSize"`
}

type SetStatusRequest struct {
	Status        string   `json:"status" binding:"required"`
	Weight        *float64 `json:"weight"`
	ShippingPrice *int64   `json:"shippingPrice"`
}

type PatchOrderRequest struct {
	Weight        *float64 `json:"weight"`
	ShippingPrice *int64   `json:"shippingPrice"`
}

type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}
