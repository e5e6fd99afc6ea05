package rbac

type CheckRequest struct {
	Resource string `json:"resource" binding:"required,oneof=tenant profile guest"`
	Action   string `json:"action" binding:"required,oneof=read create update delete publish"`
}

type CheckResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
