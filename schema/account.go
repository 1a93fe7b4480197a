package schema

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Account struct {
	AccountNumber  string         `json:"account_number" gorm:"primary_key"`
	Email          string         `json:"email" gorm:"unique_index"`
	PasswordDigest string         `json:"-"`
	Profile        AccountProfile `json:"profile" gorm:"foreignkey:ProfileID"`
	ProfileID      uuid.UUID      `json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AccountProfile carries the display fields that get snapshotted into
// request and conversation documents. A snapshot is taken at write time
// and never refreshed when the profile changes afterwards.
type AccountProfile struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountNumber  string    `json:"account_number"`
	Name           string    `json:"name"`
	Avatar         string    `json:"avatar"`
	Year           string    `json:"year"`
	Major          string    `json:"major"`
	ResponsesGiven int       `json:"responses_given"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (a *Account) String() string {
	return fmt.Sprintf("%s <%s>", a.Profile.Name, a.Email)
}
