package dto

type SettlementRequestDTO struct {
	Phone      string  `json:"phone" validate:"required" example:"9876543210"`
	BillAmount float64 `json:"bill_amount" validate:"gte=0" example:"1000"`
}

type SettlementResponseDTO struct {
	TransactionID int     `json:"transaction_id" example:"42"`
	Amount        float64 `json:"amount" example:"1000"`
	Discount      float64 `json:"discount" example:"500"`
	FinalBill     float64 `json:"final_bill" example:"500"`
	PointsEarned  float64 `json:"points_earned" example:"75"`
	NewBalance    float64 `json:"new_balance" example:"75"`
}

type CustomerResponseDTO struct {
	Name          string  `json:"name" example:"Alice Johnson"`
	Phone         string  `json:"phone" example:"9876543210"`
	WalletBalance float64 `json:"wallet_balance" example:"500"`
}
