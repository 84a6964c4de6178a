package admin_login

// LoginRequest HTTP запрос на вход администратора
type LoginRequest struct {
	Password string `json:"password"`
}
