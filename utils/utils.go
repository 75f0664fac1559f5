package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"campus-events/models"

	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// MaxPosterBytes caps uploaded event posters at 5MB.
const MaxPosterBytes = 5 << 20

func RespondWithError(w http.ResponseWriter, status int, error models.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(error); err != nil {
		logrus.WithError(err).Error("Failed to encode error response")
	}
}

func ResponseJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// GenerateToken signs a bearer token carrying the session identity.
func GenerateToken(sess models.Session, expiration time.Duration) (string, error) {
	secret := os.Getenv("SECRET")
	if secret == "" {
		return "", errors.New("SECRET environment variable is not set")
	}

	claims := jwt.MapClaims{
		"iss":        "campus-events",
		"college_id": sess.CollegeID,
		"role":       sess.Role,
		"exp":        time.Now().Add(expiration).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken checks the Authorization header and returns the session the
// token was issued for.
func VerifyToken(r *http.Request) (*models.Session, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("Authorization header missing")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("Invalid Authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("Unexpected signing method")
		}
		return []byte(os.Getenv("SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("Invalid token claims")
	}

	collegeID, ok := claims["college_id"].(string)
	if !ok || collegeID == "" {
		return nil, errors.New("college_id not found in token")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, errors.New("role not found in token")
	}

	return &models.Session{Role: role, CollegeID: collegeID}, nil
}

// EncodePoster turns an uploaded image into the inline base64 payload stored
// with the event. Rejects non-images and files over MaxPosterBytes.
func EncodePoster(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxPosterBytes {
		return "", errors.New("poster must be smaller than 5MB")
	}

	raw, err := io.ReadAll(io.LimitReader(file, MaxPosterBytes+1))
	if err != nil {
		return "", err
	}
	if len(raw) > MaxPosterBytes {
		return "", errors.New("poster must be smaller than 5MB")
	}

	contentType := http.DetectContentType(raw)
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.New("poster must be an image file")
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(raw)), nil
}

func StrToInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
