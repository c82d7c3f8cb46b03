package view

import "github.com/designerprogramming-cyber/Designs4U/internal/modules/orders"

type OrderVM struct {
	ID            string `json:"id"`
	ProductName   string `json:"product_name"`
	VariantName   string `json:"variant_name"`
	Price         string `json:"price"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	HasScreenshot bool   `json:"has_screenshot"`
	Downloadable  bool   `json:"downloadable"`
	FileName      string `json:"file_name,omitempty"`
}

func OrderView(o orders.Order) OrderVM {
	vm := OrderVM{
		ID:            o.ID,
		ProductName:   o.Product.Name,
		VariantName:   o.Variant.Name,
		Price:         MoneyFromCents(o.Variant.PriceCents, "USD"),
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		HasScreenshot: o.ScreenshotKey != "",
		Downloadable:  o.Downloadable(),
	}
	if vm.Downloadable {
		vm.FileName = o.Variant.FileName
	}
	return vm
}
