package school

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Schedule
		wantErr error
	}{
		{
			name: "single day",
			text: "Lun 08:00 - 10:00",
			want: Schedule{Days: []time.Weekday{time.Monday}, Start: "08:00", End: "10:00"},
		},
		{
			name: "all week",
			text: "Lun-Vie 10:00 - 10:30",
			want: Schedule{Days: Weekdays, Start: "10:00", End: "10:30"},
		},
		{
			name: "day list",
			text: "Vie,Mar 14:00 - 15:00",
			want: Schedule{Days: []time.Weekday{time.Tuesday, time.Friday}, Start: "14:00", End: "15:00"},
		},
		{
			name: "no time",
			text: "Mie",
			want: Schedule{Days: []time.Weekday{time.Wednesday}},
		},
		{
			name: "only start",
			text: "Jue 09:15",
			want: Schedule{Days: []time.Weekday{time.Thursday}, Start: "09:15"},
		},
		{
			name: "surrounding spaces",
			text: "  Mar 08:00 - 10:00 ",
			want: Schedule{Days: []time.Weekday{time.Tuesday}, Start: "08:00", End: "10:00"},
		},
		{
			name: "weekend day",
			text: "Sab 08:00 - 10:00",
			want: Schedule{Days: []time.Weekday{time.Saturday}, Start: "08:00", End: "10:00"},
		},
		{
			name: "no day",
			text: "09:00 - 10:00",
			want: Schedule{Start: "09:00", End: "10:00"},
		},
		{
			name: "empty",
			text: "",
		},
		{
			name:    "unknown day keeps times",
			text:    "Xyz 08:00 - 10:00",
			want:    Schedule{Start: "08:00", End: "10:00"},
			wantErr: ErrUnknownDay,
		},
		{
			name:    "unknown day in list",
			text:    "Lun,Xyz 08:00 - 10:00",
			want:    Schedule{Start: "08:00", End: "10:00"},
			wantErr: ErrUnknownDay,
		},
		{
			name:    "day missing before time",
			text:    "por definir 08:00",
			want:    Schedule{Start: "08:00"},
			wantErr: ErrUnknownDay,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSchedule(tt.text)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, errors.Cause(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want.Start, got.Start)
			assert.Equal(t, tt.want.End, got.End)
			assert.ElementsMatch(t, tt.want.Days, got.Days)
		})
	}
}

func TestSchedule_String(t *testing.T) {
	tests := []struct {
		sch  Schedule
		want string
	}{
		{sch: NewSchedule("08:00", "10:00", time.Monday), want: "Lun 08:00 - 10:00"},
		{sch: NewSchedule("10:00", "10:30", time.Friday, time.Monday, time.Wednesday, time.Tuesday, time.Thursday), want: "Lun-Vie 10:00 - 10:30"},
		{sch: NewSchedule("14:00", "15:00", time.Friday, time.Tuesday, time.Friday), want: "Mar,Vie 14:00 - 15:00"},
		{sch: NewSchedule("", "", time.Thursday), want: "Jue"},
		{sch: NewSchedule("08:00", "10:00", time.Saturday), want: "Sab 08:00 - 10:00"},
		{sch: NewSchedule("08:00", "10:00", time.Sunday, time.Monday), want: "Dom,Lun 08:00 - 10:00"},
		{sch: Schedule{Start: "09:00", End: "10:00"}, want: "09:00 - 10:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sch.String())

			parsed, err := ParseSchedule(tt.sch.String())
			require.NoError(t, err)
			assert.Equal(t, tt.sch, parsed)
		})
	}
}

func TestSchedule_JSON(t *testing.T) {
	crs := Course{ID: "c1", Name: "Matemáticas", Schedule: MustParseSchedule("Lun 08:00 - 10:00"), TeacherID: "teach_1", Section: "1ro Primaria"}
	data, err := json.Marshal(crs)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"schedule":"Lun 08:00 - 10:00"`)

	var got Course
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, crs, got)

	err = json.Unmarshal([]byte(`{"schedule":"Xyz 08:00 - 10:00"}`), &got)
	assert.True(t, errors.Is(err, ErrUnknownDay))

	_, err = json.Marshal(Course{Schedule: Schedule{Days: []time.Weekday{time.Weekday(9)}}})
	assert.True(t, errors.Is(err, ErrUnknownDay))
}

func TestSchedule_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		sch      Schedule
		wantText string
	}{
		{name: "weekday", sch: MustParseSchedule("Mie 10:30 - 12:30"), wantText: "Mie 10:30 - 12:30"},
		{name: "all week", sch: MustParseSchedule("Lun-Vie 10:00 - 10:30"), wantText: "Lun-Vie 10:00 - 10:30"},
		{name: "no day", sch: Schedule{Start: "09:00", End: "10:00"}, wantText: "09:00 - 10:00"},
		{name: "saturday", sch: NewSchedule("08:00", "10:00", time.Saturday), wantText: "Sab 08:00 - 10:00"},
		{name: "weekend", sch: NewSchedule("08:00", "10:00", time.Saturday, time.Sunday), wantText: "Dom,Sab 08:00 - 10:00"},
		{name: "empty", sch: Schedule{}, wantText: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crs := Course{ID: "c1", Schedule: tt.sch}
			data, err := json.Marshal(crs)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"schedule":"`+tt.wantText+`"`)

			var got Course
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.sch.Start, got.Schedule.Start)
			assert.Equal(t, tt.sch.End, got.Schedule.End)
			assert.ElementsMatch(t, tt.sch.Days, got.Schedule.Days)
		})
	}
}

func TestSchedule_SortKey(t *testing.T) {
	assert.Equal(t, "00:00", Schedule{}.SortKey())
	assert.Equal(t, "08:00", MustParseSchedule("Lun 08:00 - 10:00").SortKey())
	assert.True(t, MustParseSchedule("Lun-Vie 10:00 - 10:30").AllWeek())
	assert.False(t, MustParseSchedule("Lun 10:00 - 10:30").AllWeek())
}
