package user

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	LoginID  string `json:"loginid" example:"admin_user" maxLength:"20" doc:"Admin login id"`
	Password string `json:"password" example:"password123" maxLength:"300" doc:"Password"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token string `json:"token" doc:"Bearer token, valid until the next login"`
}
