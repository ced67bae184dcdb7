package services

import (
    "errors"

    "backend/config"
    "backend/models"
    "backend/utils"

    "gorm.io/gorm"
)

// IsDuplicate reports whether err is a unique-constraint violation, possibly
// wrapped. Registration relies on the username unique index rather than a
// racy existence pre-check.
func IsDuplicate(err error) bool {
    return errors.Is(err, gorm.ErrDuplicatedKey)
}

func RegisterUser(username, password string) error {
    hashedPassword, err := utils.HashPassword(password)
    if err != nil {
        return err
    }

    user := models.User{
        Username: username,
        Password: hashedPassword,
    }

    result := config.DB.Create(&user)
    return result.Error
}

func FindUserByUsername(username string) (models.User, error) {
    var user models.User
    result := config.DB.Where("username = ?", username).First(&user)
    return user, result.Error
}

func AuthenticateUser(username, password string) (string, error) {
    user, err := FindUserByUsername(username)
    if err != nil {
        return "", errors.New("invalid username or password")
    }

    if !utils.CheckPasswordHash(password, user.Password) {
        return "", errors.New("invalid username or password")
    }

    token, err := utils.GenerateJWT(user.Username)
    if err != nil {
        return "", err
    }

    return token, nil
}
