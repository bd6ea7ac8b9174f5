package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected TimeString
		wantErr  bool
	}{
		{name: "Valid morning time", input: "09:30", expected: "09:30"},
		{name: "Valid midnight", input: "00:00", expected: "00:00"},
		{name: "Valid end of day", input: "23:59", expected: "23:59"},
		{name: "Invalid hour", input: "24:00", wantErr: true},
		{name: "Invalid minute", input: "12:60", wantErr: true},
		{name: "Garbage", input: "abc", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("14:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, minutes)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	earlier := TimeString("10:00")
	later := TimeString("11:30")

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))
	assert.False(t, earlier.IsAfter(later))

	// Равные значения не раньше и не позже друг друга
	assert.False(t, earlier.IsBefore(earlier))
	assert.False(t, earlier.IsAfter(earlier))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("14:00")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("15:30"), shifted)

	back, err := ts.AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:30"), back)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
	_, err = TimeString("00:10").AddMinutes(-20)
	assert.Error(t, err)
}

func TestTimeString_MinutesUntil(t *testing.T) {
	start := TimeString("14:00")
	end := TimeString("15:30")

	duration, err := start.MinutesUntil(end)
	require.NoError(t, err)
	assert.Equal(t, 90, duration)

	// Отрицательная длительность для перевернутого интервала
	duration, err = end.MinutesUntil(start)
	require.NoError(t, err)
	assert.Equal(t, -90, duration)
}

func TestTimeString_Scan(t *testing.T) {
	testCases := []struct {
		name     string
		src      interface{}
		expected TimeString
		wantErr  bool
	}{
		{name: "From time.Time", src: time.Date(2025, 1, 1, 14, 30, 45, 0, time.UTC), expected: "14:30"},
		{name: "From string with seconds", src: "14:30:00", expected: "14:30"},
		{name: "From short string", src: "14:30", expected: "14:30"},
		{name: "From bytes", src: []byte("09:15:30"), expected: "09:15"},
		{name: "From nil", src: nil, expected: ""},
		{name: "From int", src: 42, wantErr: true},
		{name: "From garbage string", src: "not-a-time", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ts TimeString
			err := ts.Scan(tc.src)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ts)
		})
	}
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("14:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "14:30", v)

	// Пустое значение пишется как NULL
	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:99").Value()
	assert.Error(t, err)
}
