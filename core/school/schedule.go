package school

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const allWeekToken = "Lun-Vie"

var (
	// ErrUnknownDay is returned when a schedule does not start with a known day token.
	ErrUnknownDay = errors.New("unknown schedule day")

	timeRegex = regexp.MustCompile(`\d{2}:\d{2}`)

	dayTokens = []struct {
		token string
		day   time.Weekday
	}{
		{"Lun", time.Monday},
		{"Mar", time.Tuesday},
		{"Mie", time.Wednesday},
		{"Jue", time.Thursday},
		{"Vie", time.Friday},
		{"Sab", time.Saturday},
		{"Dom", time.Sunday},
	}

	Weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
)

// Schedule is when a course takes place: a set of weekdays and a time range.
// Start and End are zero-padded 24h "HH:MM" strings, empty when unknown.
type Schedule struct {
	Days  []time.Weekday
	Start string
	End   string
}

// NewSchedule returns a Schedule on the given days, sorted and deduplicated.
func NewSchedule(start, end string, days ...time.Weekday) Schedule {
	seen := make(map[time.Weekday]bool, len(days))
	uniq := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			uniq = append(uniq, d)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	return Schedule{Days: uniq, Start: start, End: end}
}

// AllWeek reports whether the schedule covers Monday through Friday.
func (s Schedule) AllWeek() bool {
	if len(s.Days) != len(Weekdays) {
		return false
	}
	for i, d := range Weekdays {
		if s.Days[i] != d {
			return false
		}
	}
	return true
}

func (s Schedule) HasDay(day time.Weekday) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

// SortKey is the start time used to order courses within a day; "00:00" when unknown.
func (s Schedule) SortKey() string {
	if s.Start == "" {
		return "00:00"
	}
	return s.Start
}

// TimeRange returns "HH:MM - HH:MM", or whatever part of it is known.
func (s Schedule) TimeRange() string {
	switch {
	case s.Start != "" && s.End != "":
		return s.Start + " - " + s.End
	default:
		return s.Start + s.End
	}
}

// String returns the compact form, eg. "Lun 08:00 - 10:00" or "Lun-Vie 10:00 - 10:30".
// A schedule without days is just its time range.
func (s Schedule) String() string {
	var prefix string
	if s.AllWeek() {
		prefix = allWeekToken
	} else {
		tokens := make([]string, 0, len(s.Days))
		for _, d := range s.Days {
			if tok, ok := DayToken(d); ok {
				tokens = append(tokens, tok)
			}
		}
		prefix = strings.Join(tokens, ",")
	}
	return strings.TrimSpace(prefix + " " + s.TimeRange())
}

func (s Schedule) MarshalText() ([]byte, error) {
	for _, d := range s.Days {
		if _, ok := DayToken(d); !ok {
			return nil, errors.Wrapf(ErrUnknownDay, "encoding weekday %d", int(d))
		}
	}
	return []byte(s.String()), nil
}

func (s *Schedule) UnmarshalText(text []byte) error {
	parsed, err := ParseSchedule(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// DayToken returns the 3-letter Spanish abbreviation of a weekday.
func DayToken(day time.Weekday) (string, bool) {
	for _, dt := range dayTokens {
		if dt.day == day {
			return dt.token, true
		}
	}
	return "", false
}

// ParseSchedule parses the compact schedule form.
// "Lun-Vie" means every weekday; otherwise the text starts with a day token
// (or a comma separated list of them). Text starting with a time, or empty
// text, is a schedule without days. Unknown prefixes yield ErrUnknownDay along
// with the times that could be read. A missing time is not an error.
func ParseSchedule(text string) (Schedule, error) {
	text = strings.TrimSpace(text)
	var sch Schedule

	times := timeRegex.FindAllStringIndex(text, 2)
	if len(times) > 0 {
		sch.Start = text[times[0][0]:times[0][1]]
	}
	if len(times) > 1 {
		sch.End = text[times[1][0]:times[1][1]]
	}
	if text == "" || (len(times) > 0 && times[0][0] == 0) {
		return sch, nil
	}

	if strings.HasPrefix(text, allWeekToken) {
		sch.Days = append([]time.Weekday(nil), Weekdays...)
		return sch, nil
	}

	head := text
	if i := strings.IndexByte(text, ' '); i >= 0 {
		head = text[:i]
	}
	if strings.Contains(head, ",") {
		var days []time.Weekday
		for _, tok := range strings.Split(head, ",") {
			day, ok := dayFromPrefix(tok)
			if !ok {
				return sch, errors.Wrapf(ErrUnknownDay, "parsing %q", text)
			}
			days = append(days, day)
		}
		return NewSchedule(sch.Start, sch.End, days...), nil
	}

	day, ok := dayFromPrefix(text)
	if !ok {
		return sch, errors.Wrapf(ErrUnknownDay, "parsing %q", text)
	}
	sch.Days = []time.Weekday{day}
	return sch, nil
}

// MustParseSchedule is like ParseSchedule but panics on error. For static catalogs.
func MustParseSchedule(text string) Schedule {
	sch, err := ParseSchedule(text)
	if err != nil {
		panic(err)
	}
	return sch
}

func dayFromPrefix(s string) (time.Weekday, bool) {
	for _, dt := range dayTokens {
		if strings.HasPrefix(s, dt.token) {
			return dt.day, true
		}
	}
	return 0, false
}
