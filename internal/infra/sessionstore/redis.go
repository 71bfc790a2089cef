package sessionstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/config"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const bookingKeyPrefix = "bookings:"

// RedisStore keeps each session's booking list as one JSON value under
// bookings:<sessionID>. The single-key layout makes Write a full replace,
// which matches the store contract: the caller always hands back the whole
// updated list.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, cfg config.Config, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    cfg.Redis.BookingTTL,
		logger: logger,
	}
}

func (s *RedisStore) Read(ctx context.Context, sessionID uuid.UUID) ([]*booking.Booking, error) {
	data, err := s.client.Get(ctx, bookingKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []*booking.Booking{}, nil
	}
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to read bookings", err)
	}

	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindEncodingFailure, "failed to decode bookings", err)
	}

	bookings, err := fromRecords(records)
	if err != nil {
		return nil, infra.WrapStoreErr(s.logger, infra.KindEncodingFailure, "corrupt booking record", err)
	}
	return bookings, nil
}

func (s *RedisStore) Write(ctx context.Context, sessionID uuid.UUID, bookings []*booking.Booking) error {
	data, err := json.Marshal(toRecords(bookings))
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindEncodingFailure, "failed to encode bookings", err)
	}

	if err := s.client.Set(ctx, bookingKey(sessionID), data, s.ttl).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to write bookings", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.client.Del(ctx, bookingKey(sessionID)).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindStoreFailure, "failed to clear bookings", err)
	}
	return nil
}

func bookingKey(sessionID uuid.UUID) string {
	return bookingKeyPrefix + sessionID.String()
}
