package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"carebook/models"
	"carebook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ComputeSlots resolves the effective working window for (provider, date) and
// slices it into fixed-width slots flagged against the occupying
// appointments.
func (se *DefaultBookingEngine) ComputeSlots(ctx context.Context, providerID, date string) (*models.DaySlotsResponse, error) {
	logger := utils.GetLogger()

	if providerID == "" {
		return nil, NewInvalidInputError("providerId is required")
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, NewInvalidInputError(err.Error())
	}

	if cached := se.slotCacheGet(ctx, providerID, date); cached != nil {
		return cached, nil
	}

	provider, err := se.ProviderRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if provider == nil {
		return nil, NewProviderUnavailableError(fmt.Sprintf("provider %s not found", providerID))
	}
	if provider.SlotDuration <= 0 {
		return nil, NewInvalidInputError("provider has no valid slot duration configured")
	}

	resp := &models.DaySlotsResponse{
		ProviderID:   providerID,
		Date:         date,
		SlotDuration: provider.SlotDuration,
		Slots:        []models.SlotView{},
	}

	// A provider who has toggled themselves off offers no slots anywhere;
	// this is the same outcome as an off-day, not an error.
	if !provider.IsAvailable {
		return resp, nil
	}

	window, err := se.resolveWindow(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	if window == nil {
		se.slotCacheSet(ctx, providerID, date, resp)
		return resp, nil
	}

	occupying, err := se.AppointmentRepo.ListOccupying(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}

	for _, s := range BuildSlots(window, provider.SlotDuration, occupying) {
		resp.Slots = append(resp.Slots, models.SlotView{
			StartTime:   utils.FormatClock(s.Start),
			EndTime:     utils.FormatClock(s.End),
			IsAvailable: s.IsAvailable,
		})
	}

	logger.Debug("computed slots",
		zap.String("providerID", providerID),
		zap.String("date", date),
		zap.Int("count", len(resp.Slots)))

	se.slotCacheSet(ctx, providerID, date, resp)
	return resp, nil
}

// resolveWindow loads the override and weekly records for a date and applies
// the precedence rule.
func (se *DefaultBookingEngine) resolveWindow(ctx context.Context, providerID, date string) (*Window, error) {
	override, err := se.OverrideRepo.GetByProviderDate(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch date override: %w", err)
	}

	// The weekly record is only needed when no override supplies an explicit
	// window, but fetching it unconditionally keeps the logic flat.
	dayOfWeek, err := utils.DayOfWeek(date)
	if err != nil {
		return nil, NewInvalidInputError(err.Error())
	}
	weekly, err := se.ScheduleRepo.GetByProviderDay(ctx, providerID, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly schedule: %w", err)
	}

	return ResolveWindow(override, weekly), nil
}

func (se *DefaultBookingEngine) slotCacheGet(ctx context.Context, providerID, date string) *models.DaySlotsResponse {
	if se.Cache == nil {
		return nil
	}
	data, err := se.Cache.Get(ctx, utils.SlotCacheKey(providerID, date)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Sugar().Warnf("slot cache read failed: %v", err)
		}
		return nil
	}
	var resp models.DaySlotsResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil
	}
	return &resp
}

func (se *DefaultBookingEngine) slotCacheSet(ctx context.Context, providerID, date string, resp *models.DaySlotsResponse) {
	if se.Cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := se.Cache.Set(ctx, utils.SlotCacheKey(providerID, date), data, utils.SlotCacheTTL).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("slot cache write failed: %v", err)
	}
}
