package users

import (
	"errors"
	"fmt"
	"time"

	"infobot/models/entities"
	"infobot/utils/databases"
	"infobot/utils/dates"

	"gorm.io/gorm"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) GetOrCreate(telegramID int64, username string) (entities.User, error) {
	existing, err := repo.FindByTelegramID(telegramID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return existing, err
	}

	user := entities.User{TelegramID: telegramID, Username: username}
	if errCreate := repo.db.GetDB().Create(&user).Error; errCreate != nil {
		return user, fmt.Errorf("failed to create user: %w", errCreate)
	}

	return user, nil
}

func (repo *Impl) FindByTelegramID(telegramID int64) (entities.User, error) {
	var user entities.User
	result := repo.db.GetDB().Where("telegram_id = ?", telegramID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("failed to fetch user: %w", result.Error)
	}

	return user, nil
}

func (repo *Impl) SetPremium(telegramID int64, expiresAt time.Time) (entities.User, error) {
	user, err := repo.FindByTelegramID(telegramID)
	if err != nil {
		return user, err
	}

	user.IsPremium = true
	user.PremiumExpires = &expiresAt
	if errSave := repo.Save(user); errSave != nil {
		return user, errSave
	}

	return user, nil
}

// RecordRequest is a plain read-modify-write: two concurrent calls for the
// same user may both read the same counter and lose one increment.
func (repo *Impl) RecordRequest(telegramID int64, now time.Time) (entities.User, error) {
	user, err := repo.FindByTelegramID(telegramID)
	if err != nil {
		return user, err
	}

	ResetIfNewDay(&user, now)
	user.RequestsToday++
	if errSave := repo.Save(user); errSave != nil {
		return user, errSave
	}

	return user, nil
}

func (repo *Impl) Save(user entities.User) error {
	if err := repo.db.GetDB().Save(&user).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.User{}).Count(count)

	return *count
}

func (repo *Impl) CountPremium() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.User{}).Where("is_premium = ?", true).Count(count)

	return *count
}

// ResetIfNewDay zeroes the daily counter when the stored day is not now's day.
// It reports whether a reset happened.
func ResetIfNewDay(user *entities.User, now time.Time) bool {
	today := dates.Day(now)
	if user.LastRequestDate == today {
		return false
	}

	user.LastRequestDate = today
	user.RequestsToday = 0
	return true
}
