package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/you/vaultsvc/domain"
)

// OTPRepositoryImpl implements domain.OTPRepository using Redis. Records
// carry their expiry explicitly and are stored without a TTL: expiry is a
// strict check made by the caller, and expired records are deleted when
// discovered rather than swept in the background.
type OTPRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(client *redis.Client) domain.OTPRepository {
	return &OTPRepositoryImpl{
		client: client,
		prefix: "otp:",
	}
}

// Upsert implements domain.OTPRepository. SET replaces any live record for
// the same email, which keeps at most one code per address.
func (r *OTPRepositoryImpl) Upsert(ctx context.Context, record *domain.OTPRecord) error {
	key := r.prefix + record.Email
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal otp record: %w", err)
	}
	return r.client.Set(ctx, key, data, 0).Err()
}

// FindByEmail implements domain.OTPRepository
func (r *OTPRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.OTPRecord, error) {
	key := r.prefix + email
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}

	var record domain.OTPRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp record: %w", err)
	}
	return &record, nil
}

// DeleteByEmail implements domain.OTPRepository
func (r *OTPRepositoryImpl) DeleteByEmail(ctx context.Context, email string) error {
	return r.client.Del(ctx, r.prefix+email).Err()
}
