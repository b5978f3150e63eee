package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/domain"
)

// Issuer is the iss claim of every token this service accepts
const Issuer = "flipside"

// Identity is the user a bearer token speaks for
type Identity struct {
	UserID    string
	ExpiresAt time.Time
}

// JWTService issues and verifies viewer tokens. The user id travels in the
// registered sub claim.
type JWTService interface {
	IssueToken(userID uuid.UUID) (string, error)
	Verify(token string) (Identity, error)
}

type jwtService struct {
	secret []byte
	expiry time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTService creates an HS256 token service from cfg
func NewJWTService(cfg *config.JWTConfig) JWTService {
	return &jwtService{
		secret: []byte(cfg.Secret),
		expiry: cfg.Expiry,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}
}

// IssueToken signs a token whose subject is userID
func (j *jwtService) IssueToken(userID uuid.UUID) (string, error) {
	now := j.now()
	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// Verify checks the signature, issuer and lifetime of token and returns the
// user it was issued to. Failures are 401 AppErrors.
func (j *jwtService) Verify(token string) (Identity, error) {
	var claims jwt.RegisteredClaims
	_, err := j.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return Identity{}, domain.NewAppError(domain.ErrCodeTokenExpired, "Token has expired", http.StatusUnauthorized, err)
	}
	if err != nil {
		return Identity{}, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, domain.NewAppError(domain.ErrCodeTokenInvalid, "Token subject is not a user id", http.StatusUnauthorized, err)
	}

	identity := Identity{UserID: userID.String()}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
