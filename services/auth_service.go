package services

import (
	"errors"
	"time"

	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/repository"
	"github.com/hectorDev2/macao-comanda/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Repo      *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	u, err := s.Repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// CreateStaff registers a staff account; admin-only upstream.
func (s *AuthService) CreateStaff(email, password, name, role string) (*entity.User, error) {
	switch role {
	case entity.RoleWaiter, entity.RoleKitchen, entity.RoleCashier, entity.RoleAdmin:
	default:
		return nil, errors.New("unknown role")
	}

	taken, err := s.Repo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := entity.User{Email: email, Password: string(hash), Name: name, Role: role}
	if err := s.Repo.Create(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.Repo.FindByID(userID)
}
