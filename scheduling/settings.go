package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nailstudio/booking-api/models"
)

const (
	DefaultSlotMinutes   = 15
	DefaultBufferMinutes = 10
	DefaultTimezone      = "America/Sao_Paulo"

	settingsCacheKey = "studio:settings"
	settingsCacheTTL = time.Minute
)

// Settings is the studio-wide configuration snapshot used by one
// availability computation. It is immutable within a request.
type Settings struct {
	SlotMinutes   int    `json:"slot_minutes"`
	BufferMinutes int    `json:"buffer_minutes"`
	Timezone      string `json:"timezone"`
}

// Settings returns the current studio settings, from the redis snapshot
// cache when available, falling back to the settings row and finally to
// hard defaults. Cache failures degrade to a DB read.
func (s *Scheduler) Settings(ctx context.Context) Settings {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, settingsCacheKey).Bytes()
		if err == nil {
			var cached Settings
			if json.Unmarshal(raw, &cached) == nil {
				return cached
			}
		}
	}

	settings := s.loadSettings(ctx)

	if s.rdb != nil {
		if raw, err := json.Marshal(settings); err == nil {
			if err := s.rdb.Set(ctx, settingsCacheKey, raw, settingsCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache studio settings")
			}
		}
	}
	return settings
}

// InvalidateSettings drops the cached snapshot, forcing the next
// computation to re-read the settings row.
func (s *Scheduler) InvalidateSettings(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, settingsCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate settings cache")
	}
}

func (s *Scheduler) loadSettings(ctx context.Context) Settings {
	settings := Settings{
		SlotMinutes:   DefaultSlotMinutes,
		BufferMinutes: DefaultBufferMinutes,
		Timezone:      DefaultTimezone,
	}
	var row models.StudioSettings
	err := s.db.WithContext(ctx).Order("created_at asc").First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Msg("failed to load studio settings, using defaults")
		}
		return settings
	}
	if row.SlotMinutes > 0 {
		settings.SlotMinutes = row.SlotMinutes
	}
	if row.BufferMinutes > 0 {
		settings.BufferMinutes = row.BufferMinutes
	}
	if row.Timezone != "" {
		settings.Timezone = row.Timezone
	}
	return settings
}
