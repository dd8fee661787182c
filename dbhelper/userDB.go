package dbhelper

import (
	"errors"
	"time"

	"github.com/habitflow/apiv1/models"
	"github.com/habitflow/apiv1/utils"
	"gorm.io/gorm"
)

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	return user, err
}

func GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	return user, err
}

func GetUser(id string) (models.User, error) {
	var user models.User
	err := DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	return user, err
}

func ListUsers(skip, limit int) ([]models.User, error) {
	var users []models.User
	err := DB.Offset(skip).Limit(limit).Find(&users).Error
	return users, err
}

// RegisterUser persists a new account. The email conflict is checked before
// the username conflict; callers must not rely on which fires when both
// collide. The password arrives already hashed and the phone already
// encrypted.
func RegisterUser(user models.User) (models.User, error) {
	tx := DB.Begin()
	defer tx.Rollback()
	var existing models.User
	result := tx.Raw("SELECT * FROM users WHERE email = ?", user.Email).Scan(&existing)
	if result.Error != nil {
		return user, result.Error
	}
	if result.RowsAffected > 0 {
		return user, ErrEmailTaken
	}
	result = tx.Raw("SELECT * FROM users WHERE username = ?", user.Username).Scan(&existing)
	if result.Error != nil {
		return user, result.Error
	}
	if result.RowsAffected > 0 {
		return user, ErrUsernameTaken
	}
	user.Enabled = true
	if user.ImageURL == "" {
		user.ImageURL = models.DefaultImageURL
	}
	if err := tx.Create(&user).Error; err != nil {
		return user, err
	}
	tx.Commit()
	return user, nil
}

func LoginUserWithPassword(email, password string) (models.User, error) {
	user, err := GetUserByEmail(email)
	if err != nil {
		return user, err
	}
	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return user, ErrInvalidCredentials
	}
	return user, nil
}

func UpdateUser(id string, updates map[string]interface{}) (models.User, error) {
	user, err := GetUser(id)
	if err != nil {
		return user, err
	}
	if len(updates) > 0 {
		if err := DB.Model(&user).Updates(updates).Error; err != nil {
			return user, err
		}
	}
	return GetUser(id)
}

func DeleteUser(id string) error {
	user, err := GetUser(id)
	if err != nil {
		return err
	}
	return DB.Delete(&user).Error
}

// CreateConfirmationCode issues a short-lived account confirmation code for
// the given email. Delivery is the caller's concern.
func CreateConfirmationCode(email string) (models.ConfirmationCode, error) {
	tx := DB.Begin()
	defer tx.Rollback()
	var user models.User
	result := tx.Raw("SELECT * FROM users WHERE email = ?", email).Scan(&user)
	if result.Error != nil {
		return models.ConfirmationCode{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ConfirmationCode{}, ErrUserNotFound
	}
	code := models.ConfirmationCode{
		UserID:        user.ID,
		Code:          utils.GetVerificationCode(),
		CodeExpiresAt: time.Now().Add(time.Minute * utils.CODE_DURATION_MINUTES),
	}
	code.Enabled = true
	if err := tx.Create(&code).Error; err != nil {
		return code, err
	}
	tx.Commit()
	return code, nil
}

func ConfirmUser(email, code string) error {
	tx := DB.Begin()
	defer tx.Rollback()
	var user models.User
	userResult := tx.Raw("SELECT * FROM users WHERE email = ?", email).Scan(&user)
	if userResult.Error != nil {
		return userResult.Error
	}
	if userResult.RowsAffected == 0 {
		return ErrUserNotFound
	}
	var confirmation models.ConfirmationCode
	codeResult := tx.Raw(
		"SELECT * FROM confirmation_codes WHERE user_id = ? AND code = ?",
		user.ID,
		code,
	).Scan(&confirmation)
	if codeResult.Error != nil {
		return codeResult.Error
	}
	if codeResult.RowsAffected == 0 || time.Now().After(confirmation.CodeExpiresAt) {
		return ErrCodeInvalid
	}
	if err := tx.Model(&user).Update("is_confirmed", true).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM confirmation_codes WHERE user_id = ?", user.ID).Error; err != nil {
		return err
	}
	tx.Commit()
	return nil
}

func CreateProfile(profile models.UserProfile) (models.UserProfile, error) {
	tx := DB.Begin()
	defer tx.Rollback()
	var user models.User
	userResult := tx.Raw("SELECT * FROM users WHERE id = ?", profile.UserID).Scan(&user)
	if userResult.Error != nil {
		return profile, userResult.Error
	}
	if userResult.RowsAffected == 0 {
		return profile, ErrUserNotFound
	}
	var existing models.UserProfile
	result := tx.Raw("SELECT * FROM user_profiles WHERE user_id = ?", profile.UserID).Scan(&existing)
	if result.Error != nil {
		return profile, result.Error
	}
	if result.RowsAffected > 0 {
		return profile, ErrProfileExists
	}
	profile.Enabled = true
	if profile.Timezone == "" {
		profile.Timezone = "UTC"
	}
	if err := tx.Create(&profile).Error; err != nil {
		return profile, err
	}
	tx.Commit()
	return profile, nil
}

func GetProfile(id string) (models.UserProfile, error) {
	var profile models.UserProfile
	err := DB.Where("id = ?", id).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profile, ErrProfileNotFound
	}
	return profile, err
}

func GetProfileByUserID(userID string) (models.UserProfile, error) {
	var profile models.UserProfile
	err := DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profile, ErrProfileNotFound
	}
	return profile, err
}

func UpdateProfile(id string, updates map[string]interface{}) (models.UserProfile, error) {
	profile, err := GetProfile(id)
	if err != nil {
		return profile, err
	}
	if len(updates) > 0 {
		if err := DB.Model(&profile).Updates(updates).Error; err != nil {
			return profile, err
		}
	}
	return GetProfile(id)
}

func DeleteProfile(id string) error {
	profile, err := GetProfile(id)
	if err != nil {
		return err
	}
	return DB.Delete(&profile).Error
}
