package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupVerification(t *testing.T, ttl time.Duration) (*VerificationService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewVerificationService(rdb, ttl), mr
}

func TestGenerateCode(t *testing.T) {
	svc, _ := setupVerification(t, time.Minute)

	for i := 0; i < 50; i++ {
		code, err := svc.GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "code must be numeric, got %q", code)
		}
	}
}

func TestVerifyCode_ConsumeOnce(t *testing.T) {
	svc, _ := setupVerification(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.SaveCode(ctx, "a@x.com", "111111"))

	require.NoError(t, svc.VerifyCode(ctx, "a@x.com", "111111"))

	// the code was deleted on success and cannot be replayed
	err := svc.VerifyCode(ctx, "a@x.com", "111111")
	require.ErrorIs(t, err, ErrCodeExpiredOrMissing)
}

func TestVerifyCode_MismatchRetainsCode(t *testing.T) {
	svc, _ := setupVerification(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.SaveCode(ctx, "a@x.com", "123456"))

	err := svc.VerifyCode(ctx, "a@x.com", "654321")
	require.ErrorIs(t, err, ErrCodeMismatch)

	// the stored code survived the wrong guess
	require.NoError(t, svc.VerifyCode(ctx, "a@x.com", "123456"))
}

func TestVerifyCode_Expiry(t *testing.T) {
	svc, mr := setupVerification(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.SaveCode(ctx, "a@x.com", "123456"))

	mr.FastForward(5*time.Minute + time.Second)

	err := svc.VerifyCode(ctx, "a@x.com", "123456")
	require.ErrorIs(t, err, ErrCodeExpiredOrMissing)
}

func TestSaveCode_OverwriteResetsTTL(t *testing.T) {
	svc, mr := setupVerification(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.SaveCode(ctx, "a@x.com", "111111"))
	mr.FastForward(4 * time.Minute)

	// second save replaces the code and restarts the clock
	require.NoError(t, svc.SaveCode(ctx, "a@x.com", "222222"))
	mr.FastForward(4 * time.Minute)

	err := svc.VerifyCode(ctx, "a@x.com", "111111")
	require.ErrorIs(t, err, ErrCodeMismatch)

	require.NoError(t, svc.VerifyCode(ctx, "a@x.com", "222222"))
}

func TestVerifyCode_EmailCaseInsensitive(t *testing.T) {
	svc, _ := setupVerification(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, svc.SaveCode(ctx, "A@X.com", "123456"))
	require.NoError(t, svc.VerifyCode(ctx, "a@x.COM", "123456"))
}
