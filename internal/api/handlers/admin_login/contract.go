package admin_login

import (
	"context"

	"github.com/m04kA/SMC-PitchBooking/internal/service/adminauth"
)

type AuthService interface {
	Login(ctx context.Context, password string) (*adminauth.Token, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
