package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/haojie/dochub-api/internal/constants"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrCodeExpiredOrMissing is returned when no code is stored for
	// the email, either because none was sent or the TTL elapsed.
	ErrCodeExpiredOrMissing = errors.New("verification code expired or missing")
	// ErrCodeMismatch is returned when the submitted code differs from
	// the stored one. The stored code stays valid for retry.
	ErrCodeMismatch = errors.New("verification code mismatch")
)

// VerificationService manages one-time email verification codes backed
// by a TTL cache. Each email holds at most one live code; saving a new
// one replaces the old and resets the expiry.
type VerificationService struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(rdb *redis.Client, ttl time.Duration) *VerificationService {
	return &VerificationService{rdb: rdb, ttl: ttl}
}

// GenerateCode returns a 6-digit numeric code drawn uniformly from
// 000000-999999, leading zeros preserved. No side effects.
func (s *VerificationService) GenerateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < constants.VerificationCodeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", constants.VerificationCodeLength, n), nil
}

// SaveCode stores the code for the email with the configured TTL,
// overwriting any previous code.
func (s *VerificationService) SaveCode(ctx context.Context, email, code string) error {
	if err := s.rdb.Set(ctx, codeKey(email), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("save verification code: %w", err)
	}
	return nil
}

// VerifyCode checks the submitted code against the stored one. On a
// match the stored code is deleted immediately so it cannot be reused;
// on a mismatch it is left intact so the user can retry within the
// TTL. Cache failures propagate to the caller.
func (s *VerificationService) VerifyCode(ctx context.Context, email, submitted string) error {
	key := codeKey(email)

	stored, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCodeExpiredOrMissing
	}
	if err != nil {
		return fmt.Errorf("read verification code: %w", err)
	}

	if stored != submitted {
		return ErrCodeMismatch
	}

	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("consume verification code: %w", err)
	}
	return nil
}

func codeKey(email string) string {
	return constants.VerificationCodePrefix + ":" + strings.ToLower(email)
}
