package reminders

import "errors"

var (
	// ErrEncodePayload возвращается, если не удалось сериализовать задачу
	ErrEncodePayload = errors.New("reminders.queue: failed to encode task payload")

	// ErrEnqueue возвращается, если задачу не удалось поставить в очередь
	ErrEnqueue = errors.New("reminders.queue: failed to enqueue task")
)
