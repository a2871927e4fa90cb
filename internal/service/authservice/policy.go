package authservice

import (
	"errors"

	"github.com/chaitanyakumarcodes/urs-web/internal/domain"
)

var ErrUnknownVendorClass = errors.New("unknown vendor class")

// classPolicies maps a declared business size to its reward policy numbers.
var classPolicies = map[string]domain.RewardPolicy{
	"small": {
		ThresholdAmount:   50,
		EarnPercentageMin: 5,
		EarnPercentageMax: 10,
		RedeemPercentage:  5,
		CanRedeem:         true,
	},
	"medium": {
		ThresholdAmount:   100,
		EarnPercentageMin: 10,
		EarnPercentageMax: 15,
		RedeemPercentage:  10,
		CanRedeem:         true,
	},
	"large": {
		ThresholdAmount:   200,
		EarnPercentageMin: 15,
		EarnPercentageMax: 20,
		RedeemPercentage:  15,
		CanRedeem:         true,
	},
}

func ClassToPolicy(vendorType string) (*domain.RewardPolicy, error) {
	policy, ok := classPolicies[vendorType]
	if !ok {
		return nil, ErrUnknownVendorClass
	}
	return &policy, nil
}
