package requests

type SendBroadcast struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Message     string   `json:"message" validate:"required,max=2000"`
	TargetRoles []string `json:"target_roles" validate:"omitempty,dive,role_name"`
}
