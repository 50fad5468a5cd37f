package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Auth signs and verifies the two token kinds. Access and refresh tokens use
// distinct secrets so one cannot stand in for the other.
type Auth struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func SetupAuth(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) Auth {
	return Auth{
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}

func (a Auth) GenerateAccessToken(userID string) (string, error) {
	return a.generate(userID, a.AccessSecret, a.AccessTTL)
}

func (a Auth) GenerateRefreshToken(userID string) (string, error) {
	return a.generate(userID, a.RefreshSecret, a.RefreshTTL)
}

func (a Auth) generate(userID, secret string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

// VerifyAccessToken returns the user id carried by a bearer token. The
// "Bearer " prefix is optional.
func (a Auth) VerifyAccessToken(tokenString string) (string, error) {
	return a.verify(tokenString, a.AccessSecret)
}

func (a Auth) VerifyRefreshToken(tokenString string) (string, error) {
	return a.verify(tokenString, a.RefreshSecret)
}

func (a Auth) verify(tokenString, secret string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", errors.New("missing token")
	}

	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return "", errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	// jwt.Parse already rejects expired tokens; keep an explicit check so a
	// token without exp never passes.
	expAny, ok := claims["exp"]
	if !ok {
		return "", errors.New("missing expiry")
	}
	expFloat, ok := expAny.(float64)
	if !ok || float64(time.Now().Unix()) > expFloat {
		return "", errors.New("token expired")
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", errors.New("invalid token claims")
	}
	return id, nil
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errors.New("invalid email or password")
	}
	return nil
}
