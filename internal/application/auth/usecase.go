package auth

import (
	"github.com/tu-usuario/chatbot-b2b/internal/application/dto"
	"github.com/tu-usuario/chatbot-b2b/internal/domain"
	"github.com/tu-usuario/chatbot-b2b/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminConfig credencial única de administración del catálogo. El hash bcrypt
// viene de configuración; no hay tabla de usuarios en este servicio.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// AuthUseCase login de administración: protege la sincronización del catálogo
// y la consulta de cotizaciones. El chat es público.
type AuthUseCase struct {
	admin  AdminConfig
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(admin AdminConfig, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// Login verifica usuario/password contra la credencial configurada y genera
// el JWT con rol admin.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.admin.Username == "" || uc.admin.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Username != uc.admin.Username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.admin.Username, "admin", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
