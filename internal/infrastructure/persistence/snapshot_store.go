package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ghala.backend/internal/domain/entities"
	"ghala.backend/internal/infrastructure/models"
	"ghala.backend/internal/infrastructure/store"
	"ghala.backend/pkg/logger"
)

// SnapshotStore is the durable side of the in-memory store: one structured
// snapshot of merchants, orders and users, rewritten after every mutation
// and read once at startup.
type SnapshotStore struct {
	db *gorm.DB
}

// Open connects to the snapshot database and migrates its tables. The
// sqlite driver covers the single-file demo setup; postgres is available
// for a shared database.
func Open(driver, dsn string) (*SnapshotStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true})
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported snapshot driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if err := db.AutoMigrate(&models.Merchant{}, &models.Order{}, &models.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot tables: %w", err)
	}

	return &SnapshotStore{db: db}, nil
}

// NewSnapshotStore wraps an existing connection (used for testing)
func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Save rewrites the snapshot tables from the given state
func (s *SnapshotStore) Save(ctx context.Context, snap *store.Snapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"orders", "merchants", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		for _, m := range snap.Merchants {
			if err := tx.Create(toMerchantModel(m)).Error; err != nil {
				return err
			}
		}
		for _, byID := range snap.Orders {
			for _, o := range byID {
				if err := tx.Create(toOrderModel(o)).Error; err != nil {
					return err
				}
			}
		}
		for _, u := range snap.Users {
			if err := tx.Create(toUserModel(u)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Load reads the whole snapshot. Malformed rows are skipped with a
// warning, never treated as fatal.
func (s *SnapshotStore) Load(ctx context.Context) (*store.Snapshot, error) {
	snap := &store.Snapshot{
		Merchants: make(map[string]*entities.Merchant),
		Orders:    make(map[string]map[string]*entities.Order),
		Users:     make(map[string]*entities.User),
	}

	var merchantRows []models.Merchant
	if err := s.db.WithContext(ctx).Find(&merchantRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load merchants: %w", err)
	}
	for i := range merchantRows {
		m, err := toMerchantEntity(&merchantRows[i])
		if err != nil {
			logger.Warn(ctx, "skipping malformed merchant row", zap.String("merchant_id", merchantRows[i].ID), zap.Error(err))
			continue
		}
		snap.Merchants[m.ID] = m
	}

	var orderRows []models.Order
	if err := s.db.WithContext(ctx).Find(&orderRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	for i := range orderRows {
		o, err := toOrderEntity(&orderRows[i])
		if err != nil {
			logger.Warn(ctx, "skipping malformed order row", zap.String("order_id", orderRows[i].ID), zap.Error(err))
			continue
		}
		byID, ok := snap.Orders[o.MerchantID]
		if !ok {
			byID = make(map[string]*entities.Order)
			snap.Orders[o.MerchantID] = byID
		}
		byID[o.ID] = o
	}

	var userRows []models.User
	if err := s.db.WithContext(ctx).Find(&userRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for i := range userRows {
		u, err := toUserEntity(&userRows[i])
		if err != nil {
			logger.Warn(ctx, "skipping malformed user row", zap.String("username", userRows[i].Username), zap.Error(err))
			continue
		}
		snap.Users[u.Username] = u
	}

	return snap, nil
}

// Empty reports whether the snapshot holds no merchants and no users,
// meaning the seed dataset should be installed.
func (s *SnapshotStore) Empty(ctx context.Context) (bool, error) {
	var merchants, users int64
	if err := s.db.WithContext(ctx).Model(&models.Merchant{}).Count(&merchants).Error; err != nil {
		return false, err
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&users).Error; err != nil {
		return false, err
	}
	return merchants == 0 && users == 0, nil
}

func toMerchantModel(m *entities.Merchant) *models.Merchant {
	return &models.Merchant{
		ID:             m.ID,
		Method:         string(m.Method),
		Label:          m.Label,
		Provider:       m.Provider,
		PhoneNumber:    m.PhoneNumber,
		CardNumber:     m.CardNumber,
		Expiry:         m.Expiry,
		CVV:            m.CVV,
		AccountNumber:  m.AccountNumber,
		BankName:       m.BankName,
		BranchCode:     m.BranchCode,
		CommissionRate: m.CommissionRate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMerchantEntity(row *models.Merchant) (*entities.Merchant, error) {
	if row.ID == "" {
		return nil, fmt.Errorf("empty merchant id")
	}
	method := entities.PayoutMethod(row.Method)
	if !method.Valid() {
		return nil, fmt.Errorf("unknown payout method %q", row.Method)
	}
	if row.CommissionRate < 0 {
		return nil, fmt.Errorf("negative commission rate %v", row.CommissionRate)
	}
	return &entities.Merchant{
		ID:             row.ID,
		Method:         method,
		Label:          row.Label,
		Provider:       row.Provider,
		PhoneNumber:    row.PhoneNumber,
		CardNumber:     row.CardNumber,
		Expiry:         row.Expiry,
		CVV:            row.CVV,
		AccountNumber:  row.AccountNumber,
		BankName:       row.BankName,
		BranchCode:     row.BranchCode,
		CommissionRate: row.CommissionRate,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func toOrderModel(o *entities.Order) *models.Order {
	row := &models.Order{
		ID:            o.ID,
		MerchantID:    o.MerchantID,
		CustomerName:  o.CustomerName,
		Product:       o.Product,
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		Commission:    o.Commission,
		CreatedAt:     o.CreatedAt,
	}
	if o.PaymentProcessedAt.Valid {
		processedAt := o.PaymentProcessedAt.Time
		row.PaymentProcessedAt = &processedAt
	}
	return row
}

func toOrderEntity(row *models.Order) (*entities.Order, error) {
	if row.ID == "" || row.MerchantID == "" {
		return nil, fmt.Errorf("missing order identifiers")
	}
	status := entities.OrderStatus(row.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", row.Status)
	}
	method := entities.PayoutMethod(row.PaymentMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("unknown payment method %q", row.PaymentMethod)
	}
	o := &entities.Order{
		ID:            row.ID,
		MerchantID:    row.MerchantID,
		CustomerName:  row.CustomerName,
		Product:       row.Product,
		Total:         row.Total,
		Status:        status,
		PaymentMethod: method,
		Commission:    row.Commission,
		CreatedAt:     row.CreatedAt,
	}
	if row.PaymentProcessedAt != nil {
		o.PaymentProcessedAt.SetValid(*row.PaymentProcessedAt)
	}
	return o, nil
}

func toUserModel(u *entities.User) *models.User {
	return &models.User{
		Username:     u.Username,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		MerchantID:   u.MerchantID,
		PasswordHash: u.PasswordHash,
	}
}

func toUserEntity(row *models.User) (*entities.User, error) {
	if row.Username == "" {
		return nil, fmt.Errorf("empty username")
	}
	return &entities.User{
		Username:     row.Username,
		Name:         row.Name,
		Email:        row.Email,
		Role:         entities.UserRole(row.Role),
		MerchantID:   row.MerchantID,
		PasswordHash: row.PasswordHash,
	}, nil
}

var _ store.Saver = (*SnapshotStore)(nil)
