package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "with seconds", input: "09:00:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		add     int
		want    TimeString
		wantErr bool
	}{
		{name: "within hour", start: "09:00", add: 30, want: "09:30"},
		{name: "across hour", start: "09:45", add: 30, want: "10:15"},
		{name: "zero", start: "09:00", add: 0, want: "09:00"},
		{name: "to last minute", start: "23:29", add: 30, want: "23:59"},
		{name: "exactly midnight", start: "23:30", add: 30, wantErr: true},
		{name: "past midnight", start: "23:45", add: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.add)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTimeOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))
	assert.False(t, TimeString("09:00").IsAfter("18:00"))
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2026, 3, 14, 17, 45, 12, 0, time.Local)

	got, err := TimeString("09:30").At(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local), got)
}

func TestTimeString_Validate_StrictFormat(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())

	// time.Parse принял бы "9:00", но контракт типа - строго "HH:MM"
	assert.ErrorIs(t, TimeString("9:00").Validate(), ErrInvalidTimeString)

	_, err := TimeString("9:00").At(time.Now())
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("9:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("18:00:00")))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 12, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_JSON(t *testing.T) {
	data, err := TimeString("09:00").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"09:00"`, string(data))

	var ts TimeString
	require.NoError(t, ts.UnmarshalJSON([]byte(`"10:30"`)))
	assert.Equal(t, TimeString("10:30"), ts)

	assert.Error(t, ts.UnmarshalJSON([]byte(`"25:00"`)))
}
