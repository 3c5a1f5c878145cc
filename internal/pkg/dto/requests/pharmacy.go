package requests

type SaveProduct struct {
	Name       string  `json:"name" validate:"required"`
	Category   string  `json:"category" validate:"omitempty"`
	Price      float64 `json:"price" validate:"min=0"`
	Stock      int     `json:"stock" validate:"min=0"`
	ExpiryDate string  `json:"expiryDate" validate:"omitempty"`
}

type UpdateOrderStatus struct {
	Status string `json:"status" validate:"required,oneof=pending accepted packed shipped delivered cancelled"`
}

type UpdatePharmacyProfile struct {
	StoreName   *string       `json:"storeName,omitempty"`
	OwnerName   *string       `json:"ownerName,omitempty"`
	PhoneNumber *string       `json:"phoneNumber,omitempty"`
	Address     *StoreAddress `json:"address,omitempty"`
}

type StoreAddress struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}
