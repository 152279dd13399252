package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campusworks/journals/internal/adapter/journalapi"
	"github.com/campusworks/journals/internal/cache"
	domainErrors "github.com/campusworks/journals/internal/domain/errors"
	"github.com/campusworks/journals/internal/domain/model"
	"github.com/campusworks/journals/internal/pkg/usagekey"
)

// AccessUseCase decides whether a user may read a journal page. Access
// records are cached per user, journal and block to keep page renders from
// hammering the journals service.
type AccessUseCase struct {
	journals journalapi.Client
	store    cache.Store
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccessUseCase constructs AccessUseCase.
func NewAccessUseCase(journals journalapi.Client, store cache.Store, ttl time.Duration, logger *slog.Logger) *AccessUseCase {
	return &AccessUseCase{journals: journals, store: store, ttl: ttl, logger: logger, now: time.Now}
}

// Check verifies that the user holds an unexpired access record for the
// journal named by journalUUID covering the block in usageKey. It returns
// ErrInvalidUsageKey for a malformed key and ErrNoJournalAccess when no
// current record matches.
func (u *AccessUseCase) Check(ctx context.Context, site string, user *model.User, journalUUID uuid.UUID, rawUsageKey string) error {
	key, err := usagekey.Parse(rawUsageKey)
	if err != nil {
		return err
	}

	records, err := u.accessRecords(ctx, site, user.Username, journalUUID, key.BlockID)
	if err != nil {
		return err
	}

	today := dateOnly(u.now().UTC())
	for _, record := range records {
		if record.Journal.UUID != journalUUID {
			continue
		}
		expires, err := time.Parse(model.AccessDateFormat, record.ExpirationDate)
		if err != nil {
			u.logger.Warn("skipping access record with bad expiration",
				slog.String("journal_uuid", record.Journal.UUID.String()),
				slog.String("expiration_date", record.ExpirationDate))
			continue
		}
		if !expires.Before(today) {
			return nil
		}
	}
	return domainErrors.ErrNoJournalAccess
}

// accessRecords returns cached records when present, otherwise fetches them
// from the journals service and caches the result. Cache failures are logged
// and treated as misses so a broken cache degrades to live lookups.
func (u *AccessUseCase) accessRecords(ctx context.Context, site, username string, journalUUID uuid.UUID, blockID string) ([]model.JournalAccess, error) {
	cacheKey := fmt.Sprintf("journal_access_for_%s_%s_%s", username, journalUUID, blockID)

	if raw, ok, err := u.store.Get(ctx, cacheKey); err != nil {
		u.logger.Warn("access cache read failed", slog.String("key", cacheKey), slog.String("error", err.Error()))
	} else if ok {
		var records []model.JournalAccess
		if err := json.Unmarshal(raw, &records); err != nil {
			u.logger.Warn("access cache entry corrupt", slog.String("key", cacheKey), slog.String("error", err.Error()))
		} else {
			return records, nil
		}
	}

	records, err := u.journals.Access(ctx, site, username, blockID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(records); err != nil {
		u.logger.Warn("access records not serializable", slog.String("key", cacheKey), slog.String("error", err.Error()))
	} else if err := u.store.Set(ctx, cacheKey, raw, u.ttl); err != nil {
		u.logger.Warn("access cache write failed", slog.String("key", cacheKey), slog.String("error", err.Error()))
	}
	return records, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
