package e

import (
	"context"
	"errors"
	"fmt"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDeadline     = errors.New("deadline exceeded")
	ErrCanceled     = errors.New("context canceled")
	ErrStore        = errors.New("store failure")
	ErrWebHookEmpty = errors.New("webhook queue is empty")
)

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	if errors.Is(err, ErrStore) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
