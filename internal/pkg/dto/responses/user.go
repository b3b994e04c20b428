package responses

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	AccountType string `json:"account_type"`
	IsActive    bool   `json:"is_active"`
}
