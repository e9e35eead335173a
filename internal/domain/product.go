package domain

type Product struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Price        int64    `json:"price"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Category     string   `json:"category"`
	DeliveryTime string   `json:"deliveryTime"`
	Sizes        []string `json:"sizes"`
}

func (p Product) HasSizes() bool {
	return len(p.Sizes) > 0
}
