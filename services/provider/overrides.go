package provider

import (
	"context"
	"fmt"
	"time"

	"carebook/models"
	"carebook/utils"

	"github.com/google/uuid"
)

// SetOverride sets or replaces the exception for one date. An available
// override without explicit times keeps the weekly window but pins the date
// as a working day; a blocked override shuts the date down entirely.
func (s *DefaultProviderService) SetOverride(ctx context.Context, providerID string, req models.SetOverrideRequest) (*models.DateOverride, error) {
	if err := notBeforeToday(req.Date); err != nil {
		return nil, err
	}

	override := &models.DateOverride{
		ID:          uuid.New().String(),
		ProviderID:  providerID,
		Date:        req.Date,
		IsAvailable: req.IsAvailable,
		Reason:      req.Reason,
		CreatedAt:   time.Now(),
	}

	if req.IsAvailable && (req.StartTime != "" || req.EndTime != "") {
		start, end, err := parseOverrideWindow(req.StartTime, req.EndTime)
		if err != nil {
			return nil, err
		}
		override.Start = &start
		override.End = &end
	}

	if err := s.OverrideRepo.Upsert(ctx, override); err != nil {
		return nil, err
	}
	utils.InvalidateSlotCache(ctx, providerID, req.Date)
	return override, nil
}

// BulkSetOverrides applies one override shape across a date range, touching
// only the selected weekdays. Returns the number of dates written.
func (s *DefaultProviderService) BulkSetOverrides(ctx context.Context, providerID string, req models.BulkOverrideRequest) (int, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return 0, newValidationError("%v", err)
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return 0, newValidationError("%v", err)
	}
	if endDate.Before(startDate) {
		return 0, newValidationError("endDate must not be before startDate")
	}
	if err := notBeforeToday(req.StartDate); err != nil {
		return 0, err
	}

	wanted := map[int]bool{}
	for _, d := range req.DaysOfWeek {
		if d < 0 || d > 6 {
			return 0, newValidationError("daysOfWeek entries must be between 0 and 6")
		}
		wanted[d] = true
	}

	var window *[2]int
	if req.IsAvailable && (req.StartTime != "" || req.EndTime != "") {
		start, end, err := parseOverrideWindow(req.StartTime, req.EndTime)
		if err != nil {
			return 0, err
		}
		window = &[2]int{start, end}
	}

	now := time.Now()
	var overrides []models.DateOverride
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		if !wanted[int(d.Weekday())] {
			continue
		}
		ov := models.DateOverride{
			ID:          uuid.New().String(),
			ProviderID:  providerID,
			Date:        d.Format(utils.DateLayout),
			IsAvailable: req.IsAvailable,
			Reason:      req.Reason,
			CreatedAt:   now,
		}
		if window != nil {
			start, end := window[0], window[1]
			ov.Start = &start
			ov.End = &end
		}
		overrides = append(overrides, ov)
	}

	if len(overrides) == 0 {
		return 0, nil
	}
	if err := s.OverrideRepo.UpsertMany(ctx, overrides); err != nil {
		return 0, err
	}
	for i := range overrides {
		utils.InvalidateSlotCache(ctx, providerID, overrides[i].Date)
	}
	return len(overrides), nil
}

// ClearOverride removes the exception for a date so the weekly default
// governs it again.
func (s *DefaultProviderService) ClearOverride(ctx context.Context, providerID, date string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return newValidationError("%v", err)
	}
	if err := s.OverrideRepo.Delete(ctx, providerID, date); err != nil {
		return err
	}
	utils.InvalidateSlotCache(ctx, providerID, date)
	return nil
}

// ListOverrides returns the provider's exceptions in a date range.
func (s *DefaultProviderService) ListOverrides(ctx context.Context, providerID, fromDate, toDate string) ([]models.DateOverride, error) {
	if _, err := utils.ParseDate(fromDate); err != nil {
		return nil, newValidationError("%v", err)
	}
	if _, err := utils.ParseDate(toDate); err != nil {
		return nil, newValidationError("%v", err)
	}
	overrides, err := s.OverrideRepo.ListRange(ctx, providerID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	return overrides, nil
}

// parseOverrideWindow requires both clock times when either is given.
func parseOverrideWindow(startTime, endTime string) (int, int, error) {
	if startTime == "" || endTime == "" {
		return 0, 0, newValidationError("startTime and endTime must both be set or both be empty")
	}
	start, err := utils.ParseClock(startTime)
	if err != nil {
		return 0, 0, newValidationError("%v", err)
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return 0, 0, newValidationError("%v", err)
	}
	if !utils.ValidClockRange(start, end) {
		return 0, 0, newValidationError("startTime must be before endTime")
	}
	return start, end, nil
}
