package dto

import "time"

type TransactionDTO struct {
	ID             int       `json:"id" example:"42"`
	Amount         float64   `json:"amount" example:"1000"`
	PointsEarned   float64   `json:"points_earned" example:"75"`
	PointsRedeemed float64   `json:"points_redeemed" example:"500"`
	Timestamp      time.Time `json:"timestamp" example:"2025-03-09T16:09:57Z"`
}
