package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// PayoutMethod represents a merchant payout method
type PayoutMethod string

const (
	MethodMobile PayoutMethod = "mobile"
	MethodCard   PayoutMethod = "card"
	MethodBank   PayoutMethod = "bank"
)

// Valid reports whether the method is one of the recognized kinds
func (m PayoutMethod) Valid() bool {
	switch m {
	case MethodMobile, MethodCard, MethodBank:
		return true
	}
	return false
}

// MethodSpec describes the required configuration fields and known
// providers for one payout method.
type MethodSpec struct {
	RequiredFields []string `json:"required_fields"`
	Providers      []string `json:"providers"`
	DefaultRate    float64  `json:"-"`
}

// MethodSpecs is the per-method configuration table. DefaultRate is the
// commission percentage applied when a merchant does not override it.
var MethodSpecs = map[PayoutMethod]MethodSpec{
	MethodMobile: {
		RequiredFields: []string{"label", "provider", "phone_number"},
		Providers:      []string{"MTN", "Airtel", "Zamtel"},
		DefaultRate:    2.5,
	},
	MethodCard: {
		RequiredFields: []string{"label", "card_number", "expiry", "cvv"},
		Providers:      []string{"Visa", "Mastercard", "American Express"},
		DefaultRate:    3.0,
	},
	MethodBank: {
		RequiredFields: []string{"label", "account_number", "bank_name", "branch_code"},
		Providers:      []string{"ZANACO", "Stanbic", "Absa", "FNB"},
		DefaultRate:    2.0,
	},
}

// Merchant represents a merchant payout configuration. Exactly one method
// is active at a time; only the credential fields of the active method are
// populated.
type Merchant struct {
	ID             string       `json:"id"`
	Method         PayoutMethod `json:"method"`
	Label          string       `json:"label"`
	Provider       string       `json:"provider,omitempty"`
	PhoneNumber    string       `json:"phone_number,omitempty"`
	CardNumber     string       `json:"card_number,omitempty"`
	Expiry         string       `json:"expiry,omitempty"`
	CVV            string       `json:"cvv,omitempty"`
	AccountNumber  string       `json:"account_number,omitempty"`
	BankName       string       `json:"bank_name,omitempty"`
	BranchCode     string       `json:"branch_code,omitempty"`
	CommissionRate float64      `json:"commission_rate"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// MerchantConfigInput represents the body of a merchant upsert
type MerchantConfigInput struct {
	Method         string       `json:"method" binding:"required"`
	Label          string       `json:"label"`
	Provider       string       `json:"provider"`
	PhoneNumber    string       `json:"phone_number"`
	CardNumber     string       `json:"card_number"`
	Expiry         string       `json:"expiry"`
	CVV            string       `json:"cvv"`
	AccountNumber  string       `json:"account_number"`
	BankName       string       `json:"bank_name"`
	BranchCode     string       `json:"branch_code"`
	CommissionRate null.Float64 `json:"commission_rate"`
}

// Field returns the credential field value carried by the input under its
// wire name. Validation enumerates MethodSpec.RequiredFields through this.
func (in *MerchantConfigInput) Field(name string) string {
	switch name {
	case "label":
		return in.Label
	case "provider":
		return in.Provider
	case "phone_number":
		return in.PhoneNumber
	case "card_number":
		return in.CardNumber
	case "expiry":
		return in.Expiry
	case "cvv":
		return in.CVV
	case "account_number":
		return in.AccountNumber
	case "bank_name":
		return in.BankName
	case "branch_code":
		return in.BranchCode
	}
	return ""
}
