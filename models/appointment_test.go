package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "confirmed to no-show", from: StatusConfirmed, to: StatusNoShow, want: true},
		{name: "confirmed to confirmed", from: StatusConfirmed, to: StatusConfirmed, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusNoShow, want: false},
		{name: "no-show is terminal", from: StatusNoShow, to: StatusCancelled, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransition(tt.to))
		})
	}
}

func TestOptionsSnapshotValueScan(t *testing.T) {
	snapshot := OptionsSnapshot{
		{ID: uuid.New(), Name: "Nail art"},
		{ID: uuid.New(), Name: "French tip"},
	}

	value, err := snapshot.Value()
	require.NoError(t, err)

	var restored OptionsSnapshot
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, snapshot, restored)
}

func TestOptionsSnapshotEmpty(t *testing.T) {
	value, err := OptionsSnapshot{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value, "empty snapshot stores as NULL")

	var restored OptionsSnapshot
	require.NoError(t, restored.Scan(nil))
	assert.Nil(t, restored)
}

func TestOptionsSnapshotScanRejectsUnsupportedType(t *testing.T) {
	var restored OptionsSnapshot
	assert.Error(t, restored.Scan(42))
}
