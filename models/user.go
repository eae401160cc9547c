package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	Member = "Member"
	Admin  = "Admin"
)

const minPasswordLength = 8

type Credentials struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DeviceFingerprint string `json:"deviceFingerprint,omitempty"`
}

type UserSignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the signup fields before any hashing or storage happens.
func (req UserSignupRequest) Validate() error {
	if len(req.Username) == 0 {
		return errors.New("username is required")
	}
	if strings.ContainsRune(req.Username, ' ') {
		return errors.New("username cannot contain spaces")
	}
	if !strings.Contains(req.Email, "@") {
		return errors.New("a valid email address is required")
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

type UserUpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type User struct {
	UserID         string    `json:"userId" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"password_hash"`
	Kind           string    `json:"kind" db:"kind"`
	Approved       bool      `json:"approved" db:"approved"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type UserDevice struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Fingerprint string    `json:"fingerprint" db:"fingerprint"`
	DeviceData  string    `json:"deviceData" db:"device_data"`
	Expiry      time.Time `json:"expiry" db:"expiry"`
}

func NewUser(userSignup UserSignupRequest) (User, error) {
	hashedPassword, hashErr := GenerateHash(userSignup.Password)
	if hashErr != nil {
		return User{}, hashErr
	}
	now := time.Now()
	return User{
		UserID:         uuid.New().String(),
		Username:       userSignup.Username,
		Email:          strings.ToLower(strings.TrimSpace(userSignup.Email)),
		HashedPassword: hashedPassword,
		Kind:           Member,
		Approved:       true, // Auto-approve for simplicity
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func GenerateHash(password string) (string, error) {
	hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(password), 8)
	if hashErr != nil {
		return "", fmt.Errorf("error hashing password %v", hashErr)
	}

	return string(hashedPassword), nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (user User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password))
}
