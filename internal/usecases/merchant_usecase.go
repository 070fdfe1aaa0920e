package usecases

import (
	"context"
	"time"

	"ghala.backend/internal/domain/entities"
	domainerrors "ghala.backend/internal/domain/errors"
	"ghala.backend/internal/domain/repositories"
)

// MerchantUsecase handles merchant payout configuration
type MerchantUsecase struct {
	merchantRepo repositories.MerchantRepository
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(merchantRepo repositories.MerchantRepository) *MerchantUsecase {
	return &MerchantUsecase{merchantRepo: merchantRepo}
}

// GetConfig returns the merchant's payout configuration
func (u *MerchantUsecase) GetConfig(ctx context.Context, merchantID string) (*entities.Merchant, error) {
	merchant, err := u.merchantRepo.Get(ctx, merchantID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("merchant not found")
		}
		return nil, err
	}
	return merchant, nil
}

// UpsertConfig creates or replaces the merchant's payout configuration.
// Switching method replaces the credential fields; on update, fields the
// input leaves empty keep their previous value.
func (u *MerchantUsecase) UpsertConfig(ctx context.Context, merchantID string, input *entities.MerchantConfigInput) (*entities.Merchant, error) {
	method := entities.PayoutMethod(input.Method)
	methodSpec, ok := entities.MethodSpecs[method]
	if !ok {
		return nil, domainerrors.BadRequest("unknown payout method: " + input.Method)
	}

	existing, err := u.merchantRepo.Get(ctx, merchantID)
	if err != nil && err != domainerrors.ErrNotFound {
		return nil, err
	}

	// A method switch starts from a clean slate; a same-method update may
	// leave already-stored credential fields out of the request body.
	sameMethod := existing != nil && existing.Method == method

	var missing []string
	for _, field := range methodSpec.RequiredFields {
		if input.Field(field) == "" {
			if sameMethod && existingField(existing, field) != "" {
				continue
			}
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.Validation(missing)
	}

	rate := methodSpec.DefaultRate
	if input.CommissionRate.Valid {
		if input.CommissionRate.Float64 < 0 {
			return nil, domainerrors.BadRequest("commission_rate must not be negative")
		}
		rate = input.CommissionRate.Float64
	} else if sameMethod {
		rate = existing.CommissionRate
	}

	now := time.Now().UTC()
	merchant := &entities.Merchant{
		ID:             merchantID,
		Method:         method,
		CommissionRate: rate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if existing != nil {
		merchant.CreatedAt = existing.CreatedAt
	}

	for _, field := range methodSpec.RequiredFields {
		value := input.Field(field)
		if value == "" && sameMethod {
			value = existingField(existing, field)
		}
		setMerchantField(merchant, field, value)
	}

	if err := u.merchantRepo.Put(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// PaymentMethods returns the method catalogue shown to configuration UIs
func (u *MerchantUsecase) PaymentMethods() map[entities.PayoutMethod]entities.MethodSpec {
	return entities.MethodSpecs
}

// ListMerchants returns every configured merchant keyed by id (admin view)
func (u *MerchantUsecase) ListMerchants(ctx context.Context) (map[string]*entities.Merchant, error) {
	merchants, err := u.merchantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entities.Merchant, len(merchants))
	for _, m := range merchants {
		byID[m.ID] = m
	}
	return byID, nil
}

func existingField(m *entities.Merchant, name string) string {
	switch name {
	case "label":
		return m.Label
	case "provider":
		return m.Provider
	case "phone_number":
		return m.PhoneNumber
	case "card_number":
		return m.CardNumber
	case "expiry":
		return m.Expiry
	case "cvv":
		return m.CVV
	case "account_number":
		return m.AccountNumber
	case "bank_name":
		return m.BankName
	case "branch_code":
		return m.BranchCode
	}
	return ""
}

func setMerchantField(m *entities.Merchant, name, value string) {
	switch name {
	case "label":
		m.Label = value
	case "provider":
		m.Provider = value
	case "phone_number":
		m.PhoneNumber = value
	case "card_number":
		m.CardNumber = value
	case "expiry":
		m.Expiry = value
	case "cvv":
		m.CVV = value
	case "account_number":
		m.AccountNumber = value
	case "bank_name":
		m.BankName = value
	case "branch_code":
		m.BranchCode = value
	}
}
