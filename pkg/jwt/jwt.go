package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PurposeReset marca los tokens de recuperación de contraseña; nunca sirven como token de acceso.
const PurposeReset = "password_reset"

// Subject datos del usuario que viajan en el token de acceso.
type Subject struct {
	UserID   int64
	Role     string
	FullName string
	Email    string
	Company  string
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role, FullName, Email y Company permiten decidir visibilidad sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Company  string `json:"company,omitempty"`
	Purpose  string `json:"purpose,omitempty"`
}

// ErrWrongPurpose se devuelve al usar un token de un propósito en otro flujo.
var ErrWrongPurpose = errors.New("jwt: propósito de token inválido")

// Generate genera un token de acceso firmado (HS256) con los datos del usuario.
func Generate(secret, issuer string, sub Subject, expMinutes int) (string, error) {
	return sign(secret, issuer, Claims{
		UserID:   sub.UserID,
		Role:     sub.Role,
		FullName: sub.FullName,
		Email:    sub.Email,
		Company:  sub.Company,
	}, expMinutes)
}

// GenerateReset genera un token de recuperación de contraseña para userID.
func GenerateReset(secret, issuer string, userID int64, expMinutes int) (string, error) {
	return sign(secret, issuer, Claims{UserID: userID, Purpose: PurposeReset}, expMinutes)
}

func sign(secret, issuer string, claims Claims, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   strconv.FormatInt(claims.UserID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida un token de acceso y devuelve sus claims.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta o es un token de reset.
func Parse(secret, tokenString string) (*Claims, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != "" {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}

// ParseReset valida un token de recuperación de contraseña y devuelve el userID.
func ParseReset(secret, tokenString string) (int64, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return 0, err
	}
	if claims.Purpose != PurposeReset {
		return 0, ErrWrongPurpose
	}
	return claims.UserID, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
