package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToaster_ShowAndAutoDismiss(t *testing.T) {
	toaster := NewToaster(30 * time.Millisecond)

	toaster.Show("Added Midnight Recovery Serum to your bag")

	current := toaster.Current()
	assert.True(t, current.Visible)
	assert.Equal(t, "Added Midnight Recovery Serum to your bag", current.Message)

	require.Eventually(t, func() bool {
		return !toaster.Current().Visible
	}, time.Second, 5*time.Millisecond)
}

func TestToaster_NewToastSupersedesPendingDismissal(t *testing.T) {
	toaster := NewToaster(50 * time.Millisecond)

	toaster.Show("first")
	time.Sleep(30 * time.Millisecond)
	toaster.Show("second")

	// The first toast's timer fires here; it must not hide the second.
	time.Sleep(30 * time.Millisecond)
	current := toaster.Current()
	assert.True(t, current.Visible)
	assert.Equal(t, "second", current.Message)

	require.Eventually(t, func() bool {
		return !toaster.Current().Visible
	}, time.Second, 5*time.Millisecond)
}

func TestToaster_ZeroDurationFallsBackToDefault(t *testing.T) {
	toaster := NewToaster(0)
	assert.Equal(t, DefaultToastDuration, toaster.duration)
}

func TestToaster_InitialStateHidden(t *testing.T) {
	toaster := NewToaster(DefaultToastDuration)

	current := toaster.Current()
	assert.False(t, current.Visible)
	assert.Empty(t, current.Message)
}
