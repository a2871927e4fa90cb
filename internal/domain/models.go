package domain

import "time"

type Vendor struct {
	ID                 int    `db:"id"`
	Name               string `db:"name"`
	Email              string `db:"email"`
	PasswordHash       string `db:"password_hash"`
	VendorType         string `db:"vendor_type"`
	SubscriptionStatus bool   `db:"subscription_status"`
}

type RewardPolicy struct {
	ID                int     `db:"id"`
	VendorID          int     `db:"vendor_id"`
	ThresholdAmount   float64 `db:"threshold_amount"`
	EarnPercentageMin float64 `db:"earn_percentage_min"`
	EarnPercentageMax float64 `db:"earn_percentage_max"`
	RedeemPercentage  float64 `db:"redeem_percentage"`
	CanRedeem         bool    `db:"can_redeem"`
}

type Customer struct {
	ID            int       `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	WalletBalance float64   `db:"wallet_balance"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Transaction struct {
	ID             int       `db:"id"`
	VendorID       int       `db:"vendor_id"`
	CustomerID     int       `db:"customer_id"`
	Amount         float64   `db:"amount"`
	PointsEarned   float64   `db:"points_earned"`
	PointsRedeemed float64   `db:"points_redeemed"`
	Timestamp      time.Time `db:"timestamp"`
}
