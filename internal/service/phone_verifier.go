package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	DefaultFixedCode = "123456"

	otpDigits       = 6
	otpKeyPrefix    = "registration:otp:"
	otpRedisTimeout = 3 * time.Second
)

// FixedCodeVerifier accepts one configured code for every number. Codes are
// only logged, never sent.
type FixedCodeVerifier struct {
	code string
	log  *logrus.Logger
}

func NewFixedCodeVerifier(code string, log *logrus.Logger) *FixedCodeVerifier {
	if code == "" {
		code = DefaultFixedCode
	}
	return &FixedCodeVerifier{code: code, log: log}
}

func (v *FixedCodeVerifier) SendCode(ctx context.Context, phone string) error {
	v.log.WithContext(ctx).WithField("phone", phone).Info("Verification code requested (fixed code in use)")
	return nil
}

func (v *FixedCodeVerifier) Verify(ctx context.Context, phone, code string) (bool, error) {
	return code == v.code, nil
}

// codeStore is the part of the redis client the verifier needs.
type codeStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisVerifier stores a random code per number with a TTL. Delivery is
// logged in the dev mailer style; a code can be used once.
type RedisVerifier struct {
	store codeStore
	ttl   time.Duration
	log   *logrus.Logger
}

func NewRedisVerifier(client *redis.Client, ttl time.Duration, log *logrus.Logger) *RedisVerifier {
	return newRedisVerifier(client, ttl, log)
}

func newRedisVerifier(store codeStore, ttl time.Duration, log *logrus.Logger) *RedisVerifier {
	return &RedisVerifier{store: store, ttl: ttl, log: log}
}

func otpKey(phone string) string {
	return otpKeyPrefix + phone
}

func (v *RedisVerifier) SendCode(ctx context.Context, phone string) error {
	code, err := randomCode(otpDigits)
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, otpRedisTimeout)
	defer cancel()

	if err := v.store.Set(ctx, otpKey(phone), code, v.ttl).Err(); err != nil {
		v.log.Warnf("Failed to store verification code: %+v", err)
		return err
	}

	v.log.WithFields(logrus.Fields{
		"phone":      phone,
		"code":       code,
		"expires_in": v.ttl.String(),
	}).Info("Verification code issued")
	return nil
}

func (v *RedisVerifier) Verify(ctx context.Context, phone, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, otpRedisTimeout)
	defer cancel()

	stored, err := v.store.Get(ctx, otpKey(phone)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		v.log.Warnf("Failed to read verification code: %+v", err)
		return false, err
	}
	if stored != code {
		return false, nil
	}

	if err := v.store.Del(ctx, otpKey(phone)).Err(); err != nil {
		v.log.Warnf("Failed to delete verification code: %+v", err)
	}
	return true, nil
}

func randomCode(digits int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}
