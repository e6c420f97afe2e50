package services

import (
	"errors"
	"fmt"
	"strings"

	"cleaning-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type SignupInput struct {
	FullName string
	Email    string
	Password string
}

type ProfileInput struct {
	FullName string
	Phone    string
	Address  string
}

// UserService handles signup, credential checks and profile updates.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

// Signup creates a user with a bcrypt-hashed password. Email uniqueness
// is checked up front and backed by the unique index.
func (s *UserService) Signup(in SignupInput) (*models.User, error) {
	email := strings.TrimSpace(in.Email)

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		FullName: strings.TrimSpace(in.FullName),
		Email:    email,
		Password: string(hash),
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Authenticate looks the user up by email and verifies the password. A
// missing user and a wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// UpdateProfile overwrites the editable profile fields. profilePic is
// ignored when empty so a form without a new picture keeps the old one.
func (s *UserService) UpdateProfile(id uint, in ProfileInput, profilePic string) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.FullName = strings.TrimSpace(in.FullName)
	user.Phone = strings.TrimSpace(in.Phone)
	user.Address = strings.TrimSpace(in.Address)
	if profilePic != "" {
		user.ProfilePic = profilePic
	}

	if err := s.DB.Save(user).Error; err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}
