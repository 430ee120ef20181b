package domain

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a team member. Email is unique across users
// (case-insensitive); RoleID must reference an existing Role.
type User struct {
	UserID       string       `json:"userID" db:"user_id"` // Primary Key (UUID)
	Name         string       `json:"name" db:"name"`
	Email        string       `json:"email" db:"email"`
	RoleID       string       `json:"roleID" db:"role_id"` // FK -> roles.role_id
	AvatarColor  string       `json:"avatarColor" db:"avatar_color"`
	PasswordHash string       `json:"-" db:"password_hash"`
	AuthProvider AuthProvider `json:"-" db:"auth_provider"`
	AuditFields
}

// UserWithRole is the user ⋈ role projection returned to clients after
// authentication. The password hash never leaves the service layer.
type UserWithRole struct {
	User
	Role *Role `json:"role"`
}
