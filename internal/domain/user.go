package domain

import "time"

// Permission bits carried by a Role. The club workflows only gate on Admin;
// the other bits exist for the forum features that share the role table.
const (
	PermissionFollow   int32 = 1
	PermissionComment  int32 = 2
	PermissionWrite    int32 = 4
	PermissionModerate int32 = 8
	PermissionAdmin    int32 = 16
)

type Role struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Default     bool   `json:"default"`
	Permissions int32  `json:"permissions"`
}

func (r *Role) HasPermission(perm int32) bool {
	return r.Permissions&perm == perm
}

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	AboutMe      string    `json:"about_me"`
	IsChairman   bool      `json:"is_chairman"`
	RoleID       int32     `json:"role_id"`
	Role         *Role     `json:"role,omitempty"` // populated by UserRepository.GetByID
	CreatedOn    time.Time `json:"created_on"`
}

// Can reports whether the user's role carries the given permission bits.
// A user without a loaded role can do nothing.
func (u *User) Can(perm int32) bool {
	return u != nil && u.Role != nil && u.Role.HasPermission(perm)
}

func (u *User) IsAdministrator() bool {
	return u.Can(PermissionAdmin)
}
