package streak

import (
	"context"
	"time"

	"github.com/srujandivakar/DCode/common/db/models"
	"github.com/srujandivakar/DCode/common/metrics"
	"github.com/srujandivakar/DCode/lib/logger"
)

// The streak counts civil days with at least one accepted submission,
// bucketed in a single fixed platform timezone.

type SubmissionStore interface {
	HasAcceptedBetween(ctx context.Context, userID uint, start, end time.Time) (bool, error)
}

type UserStore interface {
	IncrementStreak(ctx context.Context, userID uint, start, end, now time.Time) (bool, error)
	MaintainedUsers(ctx context.Context) ([]models.User, error)
	ResetStreak(ctx context.Context, userID uint) error
}

type Updater struct {
	submissions SubmissionStore
	users       UserStore
	loc         *time.Location
	collector   *metrics.Collector
}

func NewUpdater(
	submissions SubmissionStore,
	users UserStore,
	timezone string,
	collector *metrics.Collector,
) (*Updater, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, logger.Error("unknown streak timezone %q: %v", timezone, err)
	}
	return &Updater{
		submissions: submissions,
		users:       users,
		loc:         loc,
		collector:   collector,
	}, nil
}

// DayWindow returns the civil day bounds containing now.
func (u *Updater) DayWindow(now time.Time) (time.Time, time.Time) {
	local := now.In(u.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, u.loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// Update increments the user's streak for today if the user has an accepted
// submission inside today's window and the streak was not already counted
// today. Safe to call for every accepted submission; only the first one of a
// day takes effect.
func (u *Updater) Update(ctx context.Context, userID uint, now time.Time) error {
	start, end := u.DayWindow(now)
	// UTC keeps timestamp comparisons consistent across drivers.
	start, end, now = start.UTC(), end.UTC(), now.UTC()

	accepted, err := u.submissions.HasAcceptedBetween(ctx, userID, start, end)
	if err != nil {
		return err
	}
	if !accepted {
		return nil
	}

	updated, err := u.users.IncrementStreak(ctx, userID, start, end, now)
	if err != nil {
		return err
	}
	if updated {
		u.collector.StreakIncrements.Inc()
		logger.Debug("streak incremented for user %d", userID)
	}
	return nil
}

// ResetStale clears the streak of every maintained user whose last counted
// submission is not from today's civil day. Run periodically; the per-request
// updater never resets.
func (u *Updater) ResetStale(ctx context.Context, now time.Time) error {
	users, err := u.users.MaintainedUsers(ctx)
	if err != nil {
		return err
	}

	today := now.In(u.loc).Format(time.DateOnly)
	for _, user := range users {
		if user.LastSubmissionDate == nil {
			continue
		}
		lastDay := user.LastSubmissionDate.In(u.loc).Format(time.DateOnly)
		if lastDay == today {
			continue
		}
		if err := u.users.ResetStreak(ctx, user.ID); err != nil {
			return err
		}
		u.collector.StreakResets.Inc()
		logger.Info("streak reset for user %d, last submission day %s", user.ID, lastDay)
	}
	return nil
}
