package entities

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleMerchant UserRole = "merchant"
)

// User represents a dashboard login. Merchant users carry the id of the
// merchant they operate.
type User struct {
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	MerchantID   string   `json:"merchant_id,omitempty"`
	PasswordHash string   `json:"-"`
}

// LoginInput represents the body of a login request
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
