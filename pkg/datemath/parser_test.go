package datemath_test

import (
	"errors"
	"testing"
	"time"

	"smart-task-scheduler/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr error
	}{
		{name: "Valid", value: "2024-06-01", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Surrounding spaces", value: "  2024-01-02 ", want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{name: "Leap day", value: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "Empty", value: "   ", wantErr: datemath.ErrEmptyInput},
		{name: "Single digit month", value: "2024-6-01", wantErr: datemath.ErrUnrecognized},
		{name: "Two digit year", value: "24-06-01", wantErr: datemath.ErrUnrecognized},
		{name: "Slashes", value: "2024/06/01", wantErr: datemath.ErrUnrecognized},
		{name: "Month out of range", value: "2024-13-01", wantErr: datemath.ErrUnrecognized},
		{name: "Day out of range", value: "2023-02-29", wantErr: datemath.ErrUnrecognized},
		{name: "Trailing text", value: "2024-06-01T10:00", wantErr: datemath.ErrUnrecognized},
		{name: "Relative word", value: "tomorrow", wantErr: datemath.ErrUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDate(tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDate(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown", relative: "some random day", wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", wantErr: true},
		{name: "Empty", relative: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAny(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	got, err := parser.ParseAny("2024-06-10", base)
	if err != nil || !got.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("absolute: got %v, %v", got, err)
	}

	got, err = parser.ParseAny("tomorrow", base)
	if err != nil || !got.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("relative: got %v, %v", got, err)
	}

	if _, err := parser.ParseAny("", base); !errors.Is(err, datemath.ErrEmptyInput) {
		t.Errorf("empty: expected ErrEmptyInput, got %v", err)
	}

	if _, err := parser.ParseAny("someday", base); !errors.Is(err, datemath.ErrUnrecognized) {
		t.Errorf("garbage: expected ErrUnrecognized, got %v", err)
	}
}

func TestParseUsesParserTimezone(t *testing.T) {
	parser, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	ny := parser.Location()

	// 2024-03-09 23:30 in New York, the night before clocks spring forward.
	baseTime := time.Date(2024, 3, 10, 4, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
	}{
		{name: "Today", relative: "today", want: time.Date(2024, 3, 9, 0, 0, 0, 0, ny)},
		{name: "Tomorrow", relative: "tomorrow", want: time.Date(2024, 3, 10, 0, 0, 0, 0, ny)},
		{name: "In 1 day", relative: "in 1 day", want: time.Date(2024, 3, 10, 0, 0, 0, 0, ny)},
		{name: "In 1 week", relative: "in 1 week", want: time.Date(2024, 3, 16, 0, 0, 0, 0, ny)},
		{name: "Yesterday", relative: "yesterday", want: time.Date(2024, 3, 8, 0, 0, 0, 0, ny)},
		{name: "Next Sunday (from Sat)", relative: "next sunday", want: time.Date(2024, 3, 10, 0, 0, 0, 0, ny)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}
