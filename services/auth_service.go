package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/VaniNagpal/Restaurant-Backend/entity"
	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
	"github.com/VaniNagpal/Restaurant-Backend/repository"
	"github.com/VaniNagpal/Restaurant-Backend/utils"
)

// AuthService handles register/login and profile reads.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(email, password, name, phone, address string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, apperr.PersistenceWrap(err, "database error")
	}
	if count > 0 {
		return nil, apperr.Validationf("Email already registered!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Validationf("Could not hash password!")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		Name:        strings.TrimSpace(name),
		PhoneNumber: strings.TrimSpace(phone),
		Address:     strings.TrimSpace(address),
		Role:        "customer",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.PersistenceWrap(err, "could not create user")
	}
	return user, nil
}

// Login checks credentials and issues a JWT. Wrong email and wrong password
// report the same message.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Validationf("Invalid credentials!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validationf("Invalid credentials!")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.PersistenceWrap(err, "could not generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperr.FromDB(err, "User not found!")
	}
	return user, nil
}
