package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/TanzilIslam/dev-home-sub000/internal/config"
	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db  *gorm.DB
	cfg config.JWTConfig
}

func NewAuthHandler(db *gorm.DB, cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

func (h *AuthHandler) signToken(userID string) (string, error) {
	ttl := time.Duration(h.cfg.TTLHours) * time.Hour
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	})
	return token.SignedString([]byte(h.cfg.Secret))
}

// Register creates a new account.
// @Summary User signup
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		log.Error().Err(err).Msg("signup lookup failed")
		response.Fail(c, http.StatusInternalServerError, "Unable to register right now.")
		return
	}
	if existing > 0 {
		response.Fail(c, http.StatusConflict, "An account with this email already exists.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		response.Fail(c, http.StatusInternalServerError, "Unable to register right now.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := h.db.Create(&user).Error; err != nil {
		log.Error().Err(err).Msg("signup insert failed")
		response.Fail(c, http.StatusInternalServerError, "Unable to register right now.")
		return
	}

	tokenString, err := h.signToken(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		response.Fail(c, http.StatusInternalServerError, "Unable to register right now.")
		return
	}

	response.Created(c, gin.H{"token": tokenString, "user": user.ToDTO()})
}

// Login exchanges credentials for a JWT.
// @Summary User login
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	var user models.User
	err := h.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("login lookup failed")
		}
		// Same response for unknown email and wrong password.
		response.Fail(c, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		response.Fail(c, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	tokenString, err := h.signToken(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		response.Fail(c, http.StatusInternalServerError, "Unable to log in right now.")
		return
	}

	response.OK(c, gin.H{"token": tokenString, "user": user.ToDTO()})
}

// Me returns the authenticated user's profile.
// @Summary Current user
// @Router /api/v1/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	var user models.User
	if err := h.db.Where("id = ?", currentUserID(c)).First(&user).Error; err != nil {
		response.Fail(c, http.StatusUnauthorized, "Invalid session")
		return
	}
	response.OK(c, user.ToDTO())
}
