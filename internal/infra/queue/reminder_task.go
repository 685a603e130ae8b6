package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"

	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

const TypeSendReminder = "reminder:send"

// ReminderPayload is what the delivery worker receives.
type ReminderPayload struct {
	ReminderID   string    `json:"reminderId"`
	BookingID    string    `json:"bookingId"`
	ConsumerID   string    `json:"consumerId"`
	Type         string    `json:"type"`
	ScheduledFor time.Time `json:"scheduledFor"`
}

func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(payload.ReminderID),
	}

	return task, opts, nil
}

// ReminderQueue hands due reminders to the external delivery worker.
type ReminderQueue struct {
	client *asynq.Client
}

func NewReminderQueue(redisAddr, redisPassword string, db int) *ReminderQueue {
	return &ReminderQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       db,
		}),
	}
}

func (q *ReminderQueue) Enqueue(ctx context.Context, r models.Reminder) error {
	task, opts, err := NewReminderTask(ReminderPayload{
		ReminderID:   r.ID,
		BookingID:    r.BookingID,
		ConsumerID:   r.ConsumerID,
		Type:         r.Type,
		ScheduledFor: r.ScheduledFor,
	}, r.ScheduledFor)
	if err != nil {
		return err
	}

	_, err = q.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func (q *ReminderQueue) Close() error {
	return q.client.Close()
}
