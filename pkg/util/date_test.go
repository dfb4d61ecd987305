package util

import (
    "strconv"
    "testing"
    "time"
)

func TestParseTimeRFC3339(t *testing.T) {
    s := "2024-10-10T10:10:10Z"
    got, ok := ParseTime(s)
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.UTC().Format(time.RFC3339) != s {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseTimeUnix(t *testing.T) {
    ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
    got, ok := ParseTime(strconv.FormatInt(ts, 10))
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.Unix() != ts {
        t.Fatalf("unexpected unix %v", got.Unix())
    }
}

func TestParseTimeDefault(t *testing.T) {
    def := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
    got := ParseTimeDefault("", def)
    if !got.Equal(def) {
        t.Fatalf("expected default")
    }
}

func TestDayStamp(t *testing.T) {
    d := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)
    if got := DayStamp(d); got != "2025-03-07" {
        t.Fatalf("unexpected stamp %s", got)
    }
}

func TestSameDay(t *testing.T) {
    a := time.Date(2025, 3, 7, 0, 1, 0, 0, time.UTC)
    b := time.Date(2025, 3, 7, 23, 58, 0, 0, time.UTC)
    if !SameDay(a, b) {
        t.Fatalf("expected same day")
    }
    if SameDay(a, b.Add(3*time.Minute)) {
        t.Fatalf("expected different day")
    }
}

func TestEndOfDay(t *testing.T) {
    d := time.Date(2025, 3, 7, 11, 0, 0, 0, time.UTC)
    end := EndOfDay(d)
    if !SameDay(d, end) {
        t.Fatalf("end of day left the day")
    }
    if end.Add(time.Nanosecond).Day() == d.Day() {
        t.Fatalf("expected next instant to roll over")
    }
}
