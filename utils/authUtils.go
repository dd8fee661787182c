package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/xlzd/gotp"
	"golang.org/x/crypto/bcrypt"
)

var secretLength int = 16
var totp *gotp.TOTP = gotp.NewDefaultTOTP(gotp.RandomSecret(secretLength))

type Token struct {
	TokenString string
	ExpiresAt   time.Time
}

func HashPassword(password string) (string, error) {
	const HASH_ROUNDS = 10
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HASH_ROUNDS)
	return string(bytes), err
}

func ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func CreateToken(username, email string, signingKey []byte, ttl time.Duration) (Token, error) {
	if len(signingKey) == 0 {
		return Token{}, errors.New("signing key is not configured")
	}
	expiresAt := time.Now().Add(ttl)
	claims := jwt.MapClaims{}
	claims[CLAIM_USERNAME] = username
	claims[CLAIM_EMAIL] = email
	claims["iat"] = time.Now().Unix()
	claims["exp"] = expiresAt.Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(signingKey)
	if err != nil {
		return Token{}, err
	}
	return Token{TokenString: tokenString, ExpiresAt: expiresAt}, nil
}

// VerifyToken checks the signature and expiry and returns the embedded claims.
// The username claim must be present; whether it still resolves to an account
// is the caller's concern.
func VerifyToken(tokenString string, signingKey []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(JWT_TOKEN_PARSING_ERROR)
		}
		return signingKey, nil
	})
	if err != nil {
		return jwt.MapClaims{}, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return jwt.MapClaims{}, errors.New(JWT_TOKEN_PARSING_ERROR)
	}
	if _, ok := claims[CLAIM_USERNAME].(string); !ok {
		return jwt.MapClaims{}, errors.New(JWT_TOKEN_PARSING_ERROR)
	}
	return claims, nil
}

// IsTokenExpired reports whether a verification failure was caused by expiry,
// for diagnostics; callers still treat every client cause as unauthorized.
func IsTokenExpired(err error) bool {
	var vErr *jwt.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Errors&jwt.ValidationErrorExpired != 0
	}
	return false
}

func GetVerificationCode() string {
	return totp.Now()
}
