package store

import (
	"github.com/jinzhu/gorm"

	"github.com/campusconnect-inc/campus-api/schema"
)

// campus main datastore
type CampusCore interface {
	Ping() error

	// Account
	CreateAccount(name, email, password string, metadata map[string]string) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	IncrementResponsesGiven(accountNumber string) error
}

// CampusStore is an implementation of CampusCore
type CampusStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewCampusStore(ormDB *gorm.DB, mongo MongoStore) *CampusStore {
	return &CampusStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *CampusStore) Ping() error {
	return s.ormDB.DB().Ping()
}
