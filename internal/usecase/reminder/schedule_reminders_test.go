package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-exchange/internal/db/dbtest"
	"github.com/BruksfildServices01/slot-exchange/internal/infra/repository"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
	"github.com/BruksfildServices01/slot-exchange/internal/timezone"
)

type recordingQueue struct {
	enqueued []models.Reminder
	err      error
}

func (q *recordingQueue) Enqueue(_ context.Context, r models.Reminder) error {
	q.enqueued = append(q.enqueued, r)
	return q.err
}

var start = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

func setup(t *testing.T, q Enqueuer) (*ScheduleReminders, models.Booking) {
	t.Helper()
	db := dbtest.New(t)

	b := models.Booking{
		ConsumerID: "y",
		ProviderID: "p-1",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     "exchanged",
	}
	require.NoError(t, db.Create(&b).Error)

	clock := timezone.NewFixedClock(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))
	return NewScheduleReminders(repository.NewReminderGormRepository(db), q, clock, nil), b
}

func TestScheduleRemindersCreatesBothTypesOnce(t *testing.T) {
	q := &recordingQueue{}
	uc, b := setup(t, q)
	policy := &models.ProviderPolicy{ReminderEnabled: true, ReminderDayBefore: true, ReminderHoursBefore: 2}

	created, err := uc.Execute(context.Background(), policy, b)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Len(t, q.enqueued, 2)

	created, err = uc.Execute(context.Background(), policy, b)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Len(t, q.enqueued, 2)
}

func TestScheduleRemindersStoresEvenWhenDisabled(t *testing.T) {
	q := &recordingQueue{}
	uc, b := setup(t, q)

	created, err := uc.Execute(context.Background(), &models.ProviderPolicy{}, b)

	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Empty(t, q.enqueued)
}

func TestScheduleRemindersSkipsDayBeforeDelivery(t *testing.T) {
	q := &recordingQueue{}
	uc, b := setup(t, q)

	_, err := uc.Execute(context.Background(), &models.ProviderPolicy{ReminderEnabled: true}, b)

	require.NoError(t, err)
	require.Len(t, q.enqueued, 1)
	assert.Equal(t, "hours_before", q.enqueued[0].Type)
}

func TestScheduleRemindersIgnoresQueueFailure(t *testing.T) {
	q := &recordingQueue{err: errors.New("redis down")}
	uc, b := setup(t, q)
	policy := &models.ProviderPolicy{ReminderEnabled: true, ReminderDayBefore: true}

	created, err := uc.Execute(context.Background(), policy, b)

	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestScheduleRemindersWithoutQueue(t *testing.T) {
	uc, b := setup(t, nil)

	created, err := uc.Execute(context.Background(), &models.ProviderPolicy{ReminderEnabled: true}, b)

	require.NoError(t, err)
	assert.Len(t, created, 2)
}
