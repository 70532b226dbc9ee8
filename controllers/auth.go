package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/config"
	"backend/models"
	"backend/storage"
	"backend/utils"
)

type AuthController struct {
	store *storage.Store
	cfg   *config.Config
}

func NewAuthController(store *storage.Store, cfg *config.Config) *AuthController {
	return &AuthController{store: store, cfg: cfg}
}

type loginInput struct {
	Password string `json:"password"`
}

type registerInput struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// PlayerLoginOld authenticates a player by password alone: the password's
// hash selects the account, no userName travels in the request. Two
// players sharing a password are indistinguishable here; kept as-is for
// wire compatibility, hence the -old route.
func (a *AuthController) PlayerLoginOld(c *gin.Context) {
	a.loginByPassword(c, false)
}

// AdminLogin is the same password-only flow restricted to admin accounts.
func (a *AuthController) AdminLogin(c *gin.Context) {
	a.loginByPassword(c, true)
}

func (a *AuthController) loginByPassword(c *gin.Context, isAdmin bool) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_password"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	keyHash := utils.HashPassword(input.Password, a.cfg.Secret)
	user, err := a.store.FindUserByKeyHash(ctx, keyHash, isAdmin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_password"})
			return
		}
		serverError(c, "login lookup", err)
		return
	}

	role := models.RoleForUser(user)
	token, err := utils.GenerateToken(user.UserName, role, a.cfg.Secret, a.cfg.TokenTTL)
	if err != nil {
		serverError(c, "token generation", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"userName": user.UserName,
		"role":     role,
	})
}

// PlayerRegister creates a player account and logs it in at the same
// time, returning a token with the 201.
func (a *AuthController) PlayerRegister(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_fields"})
		return
	}
	input.UserName = strings.TrimSpace(input.UserName)
	if input.UserName == "" || strings.TrimSpace(input.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_fields"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	taken, err := a.store.UserExists(ctx, input.UserName)
	if err != nil {
		serverError(c, "registration lookup", err)
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "username_taken"})
		return
	}

	user := models.User{
		UserName:  input.UserName,
		IsAdmin:   false,
		KeyHash:   utils.HashPassword(input.Password, a.cfg.Secret),
		CreatedAt: time.Now().UTC(),
	}
	if err := a.store.InsertUser(ctx, user); err != nil {
		serverError(c, "registration insert", err)
		return
	}

	token, err := utils.GenerateToken(user.UserName, models.RolePlayer, a.cfg.Secret, a.cfg.TokenTTL)
	if err != nil {
		serverError(c, "token generation", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"userName": user.UserName,
		"role":     models.RolePlayer,
	})
}
