package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"atlas/shared/retry"
)

func TestDoWithBudget(t *testing.T) {
	tests := []struct {
		name         string
		failUntil    int
		maxAttempts  int
		wantErr      bool
		wantAttempts int
	}{
		{
			name:         "succeeds first try",
			failUntil:    0,
			maxAttempts:  3,
			wantErr:      false,
			wantAttempts: 1,
		},
		{
			name:         "succeeds after one failure",
			failUntil:    1,
			maxAttempts:  3,
			wantErr:      false,
			wantAttempts: 2,
		},
		{
			name:         "exhausts budget",
			failUntil:    5,
			maxAttempts:  3,
			wantErr:      true,
			wantAttempts: 3,
		},
		{
			name:         "budget below one is clamped",
			failUntil:    0,
			maxAttempts:  0,
			wantErr:      false,
			wantAttempts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0

			err := retry.DoWithBudget(context.Background(), tt.maxAttempts, time.Millisecond, func() error {
				attempts++
				if attempts <= tt.failUntil {
					return errors.New("transient failure")
				}

				return nil
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantAttempts, attempts)
		})
	}
}

func TestDoWithBudgetCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0

	err := retry.DoWithBudget(ctx, 3, time.Millisecond, func() error {
		attempts++

		return errors.New("transient failure")
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}
