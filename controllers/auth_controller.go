package controllers

import (
	"net/http"
	"regexp"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// Username rule: 3–20 chars, letters/numbers/underscore only.
var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

func validUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// Password rule: just a length bound, 6–64.
func validPassword(password string) bool {
	return len(password) >= 6 && len(password) <= 64
}

type CredentialsInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validUsername(input.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username: use 3-20 letters, numbers, or underscore"})
		return
	}
	if !validPassword(input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid password length: use 6-64 characters"})
		return
	}

	// The unique index is the source of truth for taken usernames; an
	// existence pre-check would race with concurrent registrations.
	if err := services.RegisterUser(input.Username, input.Password); err != nil {
		if services.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

func Login(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Cheap format checks before touching the database.
	if !validUsername(input.Username) || !validPassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := services.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
