package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"punchclock-backend/internal/model"
	"punchclock-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("unable to log in with provided credentials")

type AuthUsecase struct {
	repo   repository.EmployeeRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthUsecase(repo repository.EmployeeRepository, secret string, ttl time.Duration) *AuthUsecase {
	return &AuthUsecase{repo: repo, secret: []byte(secret), ttl: ttl}
}

// Login checks the password and issues a signed token carrying the caller's
// employee id and role.
func (u *AuthUsecase) Login(ctx context.Context, employeeID, password string) (string, *model.Employee, error) {
	employee, err := u.repo.FindByEmployeeID(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !employee.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"employee_id": employee.EmployeeID,
		"role":        employee.Role,
		"jti":         uuid.NewString(),
		"exp":         time.Now().Add(u.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(u.secret)
	if err != nil {
		return "", nil, err
	}
	return t, employee, nil
}

// ParseToken validates a token issued by Login and returns its caller.
func (u *AuthUsecase) ParseToken(tokenString string) (Caller, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return Caller{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Caller{}, errors.New("invalid token claims")
	}
	employeeID, _ := claims["employee_id"].(string)
	role, _ := claims["role"].(string)
	if employeeID == "" || !model.ValidRole(role) {
		return Caller{}, errors.New("token is missing identity")
	}
	return Caller{EmployeeID: employeeID, Role: role}, nil
}

// Authenticate parses the token and re-reads the employee. The role comes
// from the stored record, not the claims, so account changes apply on the
// next request.
func (u *AuthUsecase) Authenticate(ctx context.Context, tokenString string) (Caller, error) {
	claimed, err := u.ParseToken(tokenString)
	if err != nil {
		return Caller{}, err
	}

	employee, err := u.repo.FindByEmployeeID(ctx, claimed.EmployeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Caller{}, ErrInvalidCredentials
	}
	if err != nil {
		return Caller{}, err
	}
	if !employee.IsActive {
		return Caller{}, ErrInvalidCredentials
	}
	return Caller{EmployeeID: employee.EmployeeID, Role: employee.Role}, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
