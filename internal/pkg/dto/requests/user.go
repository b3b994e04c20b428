package requests

type ListUsers struct {
	Role string `validate:"omitempty,role_name"`
	Pagination
}
