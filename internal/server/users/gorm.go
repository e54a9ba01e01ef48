package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adiomi90/alx-backend-user-data/internal/common"
)

// userModel is the GORM mapping of a credential record. The unique
// index on email makes the store, not the service layer, the place
// where a concurrent duplicate registration loses.
type userModel struct {
	ID             int64   `gorm:"primaryKey"`
	Email          string  `gorm:"uniqueIndex;not null"`
	HashedPassword []byte  `gorm:"not null"`
	SessionID      *string `gorm:"index"`
	ResetToken     *string `gorm:"index"`
	CreatedAt      time.Time
}

func (userModel) TableName() string { return "users" }

// columns maps Field selectors to table columns.
var columns = map[Field]string{
	FieldID:             "id",
	FieldEmail:          "email",
	FieldHashedPassword: "hashed_password",
	FieldSessionID:      "session_id",
	FieldResetToken:     "reset_token",
}

// GormStore persists credential records through GORM. The backend is
// chosen by DSN: a postgres:// URL opens PostgreSQL, anything else is
// treated as a sqlite file path.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(dsn string) (*GormStore, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.AutoMigrate(&userModel{}); err != nil {
		return nil, fmt.Errorf("error migrating users table: %w", err)
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) Add(ctx context.Context, email string, hashedPassword []byte) (*User, error) {
	m := userModel{Email: email, HashedPassword: hashedPassword}

	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return m.toUser(), nil
}

func (s *GormStore) FindBy(ctx context.Context, field Field, value any) (*User, error) {
	if err := checkLookup(field, value); err != nil {
		return nil, err
	}

	var m userModel
	err := s.db.WithContext(ctx).Where(columns[field]+" = ?", value).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return m.toUser(), nil
}

func (s *GormStore) Update(ctx context.Context, id int64, changes map[Field]any) error {
	if err := checkChanges(changes); err != nil {
		return err
	}

	values := make(map[string]any, len(changes))
	for field, value := range changes {
		if field == FieldHashedPassword {
			values[columns[field]] = value
			continue
		}
		values[columns[field]] = tokenValue(value)
	}

	res := s.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("error updating user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (m *userModel) toUser() *User {
	return &User{
		ID:             m.ID,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		SessionID:      m.SessionID,
		ResetToken:     m.ResetToken,
		CreatedAt:      m.CreatedAt,
	}
}
