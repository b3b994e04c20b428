package jwtmanager

import (
	"errors"
	"fmt"
	"strings"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const algHS256 = "HS256"

var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrEmptySecret           = errors.New("jwt secret is empty")
)

// JWTManager signs and verifies HS256 session tokens. The secret and TTL are
// fixed at construction.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

type sessionClaims struct {
	Role        string `json:"role"`
	AccountType string `json:"account_type"`
	jwt.RegisteredClaims
}

func NewJWTManager(secret string, ttl time.Duration, log *zap.Logger) (*JWTManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		// Expiry is checked by Verify against the injected clock.
		parser: jwt.NewParser(jwt.WithValidMethods([]string{algHS256}), jwt.WithoutClaimsValidation()),
	}, nil
}

func (j *JWTManager) Issue(subjectID string, role constvars.RoleName, accountType constvars.AccountType) (*models.SessionToken, error) {
	if strings.TrimSpace(subjectID) == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if !accountType.IsValid() {
		return nil, fmt.Errorf("unknown account type %q", accountType)
	}

	issuedAt := j.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(j.ttl)
	claims := sessionClaims{
		Role:        string(role),
		AccountType: string(accountType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, err
	}

	return &models.SessionToken{
		Token:       signed,
		SubjectID:   subjectID,
		Role:        role,
		AccountType: accountType,
		IssuedAt:    issuedAt,
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify checks signature and expiry and returns the principal the token
// carries. Failures are one of ErrTokenMalformed, ErrTokenSignatureInvalid or
// ErrTokenExpired.
func (j *JWTManager) Verify(tokenString string) (*models.Principal, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrTokenMalformed
	}

	claims := &sessionClaims{}
	_, err := j.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		return nil, classifyParseError(err)
	}

	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing exp", ErrTokenMalformed)
	}
	if j.now().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	role := constvars.RoleName(claims.Role)
	accountType := constvars.AccountType(claims.AccountType)
	if claims.Subject == "" || !role.IsValid() || !accountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid claims", ErrTokenMalformed)
	}

	return &models.Principal{
		SubjectID:   claims.Subject,
		Role:        role,
		AccountType: accountType,
	}, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrTokenSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
