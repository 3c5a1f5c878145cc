package responses

type PharmacyProfile struct {
	ID          string        `json:"id"`
	StoreName   string        `json:"storeName"`
	OwnerName   string        `json:"ownerName,omitempty"`
	Email       string        `json:"email,omitempty"`
	PhoneNumber string        `json:"phoneNumber,omitempty"`
	Status      string        `json:"status,omitempty"`
	Address     *StoreAddress `json:"address,omitempty"`
}

type StoreAddress struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category,omitempty"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	ExpiryDate string  `json:"expiryDate,omitempty"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName,omitempty"`
	Status       string      `json:"status"`
	Total        float64     `json:"total"`
	PlacedAt     string      `json:"placedAt,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
}

type OrderStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Earnings struct {
	Total   float64                  `json:"total"`
	Monthly []map[string]interface{} `json:"monthly,omitempty"`
}

type SupportContacts struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Hours string `json:"hours,omitempty"`
}
