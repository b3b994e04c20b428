package models

import "telecare-service/internal/pkg/constvars"

type User struct {
	ID          string                `bson:"_id,omitempty"`
	Email       string                `bson:"email"`
	Password    string                `bson:"password"`
	FullName    string                `bson:"fullName"`
	Role        constvars.RoleName    `bson:"role"`
	AccountType constvars.AccountType `bson:"accountType"`
	IsActive    bool                  `bson:"isActive"`
	TimeModel   `bson:",inline"`
}

// AccountTypeOrDefault derives the account type from the role when the stored
// document predates the accountType field.
func (u *User) AccountTypeOrDefault() constvars.AccountType {
	if u.AccountType.IsValid() {
		return u.AccountType
	}
	if u.Role == constvars.RoleAdmin || u.Role == constvars.RoleSuperadmin || u.Role == constvars.RoleSupport {
		return constvars.AccountTypeAdmin
	}
	return constvars.AccountTypeUser
}

type UserFilter struct {
	Role     constvars.RoleName
	Page     int
	PageSize int
}
