package services

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	usuarios repositories.UsuarioRepository
	secret   []byte
}

func NewAuthService(usuarios repositories.UsuarioRepository) *AuthService {
	return &AuthService{
		usuarios: usuarios,
		secret:   []byte(os.Getenv("JWT_SECRET")),
	}
}

// Login verifica credenciales y emite un JWT HS256 con vigencia de 24h.
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	if req.Login == "" || req.Password == "" {
		return nil, apierrors.NewBadRequest("login y contraseña son requeridos")
	}

	usuario, err := s.usuarios.GetByLogin(req.Login)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, apierrors.NewBadRequest("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierrors.NewBadRequest("credenciales inválidas")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   usuario.ID.String(),
		"login": usuario.Login,
		"rol":   usuario.Rol,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, Usuario: usuario.ToResponse()}, nil
}
