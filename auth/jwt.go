package auth

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "auth"

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenMalformed = errors.New("token malformed")
)

var (
	jwtSecret []byte
	tokenTTL  = 12 * time.Hour
)

// Setup installs the signing secret and token lifetime. Must be called
// before any token is issued or parsed; the secret never lives in source.
func Setup(secret string, ttl time.Duration) {
	jwtSecret = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"user_role"`
	jwt.RegisteredClaims
}

// CreateToken signs the user's claims with HS256 and the configured expiry.
func CreateToken(userID uint, username, role string) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates the token and returns its claims. Failures are
// distinguishable: ErrTokenExpired, ErrTokenMalformed, or ErrTokenInvalid
// (bad signature, wrong algorithm, and everything else).
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return jwtSecret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// CurrentUser reads the session cookie and returns the claims, or nil if
// the cookie is absent or fails to parse for any reason. Read paths treat
// every failure as "not logged in".
func CurrentUser(c *gin.Context) *Claims {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == "" {
		return nil
	}
	claims, err := ParseToken(cookie)
	if err != nil {
		return nil
	}
	return claims
}
