package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusconnect-inc/campus-api/schema"
)

var (
	ErrAccountTaken    = fmt.Errorf("the email has already been registered")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

func newAccountNumber() string {
	return uuid.New().String()
}

// CreateAccount registers an account into the campus system. The password
// is stored as a bcrypt digest, never in the clear.
func (s *CampusStore) CreateAccount(name, email, password string, metadata map[string]string) (*schema.Account, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := schema.Account{
		AccountNumber:  newAccountNumber(),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		PasswordDigest: string(digest),
		Profile: schema.AccountProfile{
			Name:   name,
			Avatar: metadata["avatar"],
			Year:   metadata["year"],
			Major:  metadata["major"],
		},
	}
	a.Profile.AccountNumber = a.AccountNumber
	if a.Profile.Avatar == "" {
		a.Profile.Avatar = "/placeholder.svg"
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *CampusStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccountByEmail returns an account instance of a given email
func (s *CampusStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// IncrementResponsesGiven bumps the responses-given counter on an
// account profile. The counter is a best-effort statistic updated off
// the primary write path.
func (s *CampusStore) IncrementResponsesGiven(accountNumber string) error {
	result := s.ormDB.Model(schema.AccountProfile{}).
		Where("account_number = ?", accountNumber).
		UpdateColumn("responses_given", gorm.Expr("responses_given + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
