package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithProgress_ClampAndTransitions(t *testing.T) {
	a := Assignment{UnitsTotal: 5, UnitsCompleted: 0, Status: AssignmentStatusPending}

	a = a.WithProgress(3)
	assert.Equal(t, 3, a.UnitsCompleted)
	assert.Equal(t, AssignmentStatusPending, a.Status)

	// Overshoot clamps to the total and flips to DONE.
	a = a.WithProgress(10)
	assert.Equal(t, 5, a.UnitsCompleted)
	assert.Equal(t, AssignmentStatusDone, a.Status)

	// Decrementing below full un-does the DONE state.
	a = a.WithProgress(-1)
	assert.Equal(t, 4, a.UnitsCompleted)
	assert.Equal(t, AssignmentStatusPending, a.Status)

	// Undershoot clamps to zero.
	a = a.WithProgress(-100)
	assert.Equal(t, 0, a.UnitsCompleted)
	assert.Equal(t, AssignmentStatusPending, a.Status)
}

func TestWithProgress_ExactCompletion(t *testing.T) {
	a := Assignment{UnitsTotal: 2, UnitsCompleted: 1, Status: AssignmentStatusPending}

	a = a.WithProgress(1)
	assert.Equal(t, 2, a.UnitsCompleted)
	assert.Equal(t, AssignmentStatusDone, a.Status)
}
