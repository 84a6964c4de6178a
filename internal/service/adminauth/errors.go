package adminauth

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PitchBooking/internal/domain"
)

var (
	// ErrInvalidCredentials возвращается при неверном пароле администратора
	ErrInvalidCredentials = errors.New("adminauth: invalid credentials")

	// ErrInvalidToken возвращается, когда токен не прошел проверку или истек
	ErrInvalidToken = errors.New("adminauth: invalid token")

	// ErrNotConfigured возвращается, когда не задан пароль или секрет подписи
	ErrNotConfigured = fmt.Errorf("%w: adminauth: admin access is not configured", domain.ErrConfiguration)
)
