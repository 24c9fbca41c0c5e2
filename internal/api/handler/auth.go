package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"participium/backend/internal/models"
)

const (
	ctxCallerID   = "callerID"
	ctxCallerRole = "callerRole"

	sessionTTL = time.Hour * 72
)

// GenerateToken mints a session token for an account. The admin CLI uses
// it for staff sessions; the login handler for citizens.
func GenerateToken(secret string, id uint, role models.OfficerRole) (string, error) {
	claims := jwt.MapClaims{
		"uid":  id,
		"role": string(role),
		"exp":  time.Now().Add(sessionTTL).Unix(),
		"iss":  "participium-service",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// parseToken validates a session token and returns the caller identity.
func parseToken(secret, raw string) (uint, models.OfficerRole, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", fmt.Errorf("unexpected claims type")
	}
	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return 0, "", fmt.Errorf("token has no uid claim")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return 0, "", fmt.Errorf("token has no role claim")
	}
	return uint(uid), models.OfficerRole(role), nil
}

// bearerToken extracts the token from the Authorization header, falling
// back to the query string for the WebSocket handshake.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// AuthRequired rejects requests without a valid session token.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
			return
		}
		id, role, err := parseToken(h.JWTSecret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
			return
		}
		c.Set(ctxCallerID, id)
		c.Set(ctxCallerRole, role)
		c.Next()
	}
}

// AuthOptional attaches the caller identity when a valid token is
// present and stays silent otherwise. Used where anonymous access is
// legal, e.g. filing an anonymous report.
func (h *Handler) AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearerToken(c); raw != "" {
			if id, role, err := parseToken(h.JWTSecret, raw); err == nil {
				c.Set(ctxCallerID, id)
				c.Set(ctxCallerRole, role)
			}
		}
		c.Next()
	}
}

// caller returns the authenticated identity set by the middleware.
func caller(c *gin.Context) (uint, models.OfficerRole) {
	id, _ := c.Get(ctxCallerID)
	role, _ := c.Get(ctxCallerRole)
	uid, _ := id.(uint)
	r, _ := role.(models.OfficerRole)
	return uid, r
}

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// Register creates a citizen account and returns a session token.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := h.Directory.CreateUser(user); err != nil {
		respondError(c, err)
		return
	}

	token, err := GenerateToken(h.JWTSecret, user.ID, models.RoleCitizen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Login opens a citizen session by email.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Directory.GetUserByEmail(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := GenerateToken(h.JWTSecret, user.ID, models.RoleCitizen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
