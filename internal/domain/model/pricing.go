package model

// BasketCalculation mirrors the e-commerce basket calculation payload.
// Totals stay raw strings: the discount flag compares them textually.
type BasketCalculation struct {
	TotalInclTax              string `json:"total_incl_tax"`
	TotalInclTaxExclDiscounts string `json:"total_incl_tax_excl_discounts"`
	Currency                  string `json:"currency"`
}

// PricingData is the per-request pricing summary attached to a bundle.
// It is derived on every render and never persisted.
type PricingData struct {
	TotalInclTax              string  `json:"total_incl_tax"`
	TotalInclTaxExclDiscounts string  `json:"total_incl_tax_excl_discounts"`
	Currency                  string  `json:"currency"`
	IsDiscounted              bool    `json:"is_discounted"`
	DiscountValue             float64 `json:"discount_value"`
	PurchaseURL               string  `json:"purchase_url"`
}
