package response

type Booking struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	CameraID   string   `json:"camera_id"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Duration   int      `json:"duration"`
	Purpose    string   `json:"purpose"`
	Status     string   `json:"status"`
	TotalPrice float64  `json:"total_price"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
	Payment    *Payment `json:"payment,omitempty"`
}

type Payment struct {
	ID             string  `json:"id"`
	BookingID      string  `json:"booking_id"`
	PaymentMethod  string  `json:"payment_method"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	GatewayOrderID string  `json:"gateway_order_id,omitempty"`
	PaymentCode    string  `json:"payment_code,omitempty"`
	PaymentURL     string  `json:"payment_url,omitempty"`
	ExpiryTime     string  `json:"expiry_time,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type Availability struct {
	CameraID  string `json:"camera_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

type Reconciliation struct {
	OrderID string `json:"order_id"`
	Outcome string `json:"outcome"`
}
