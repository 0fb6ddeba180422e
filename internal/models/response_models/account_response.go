package response_models

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AccountLoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}
