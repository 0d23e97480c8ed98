package concert

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		ref       time.Time
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantErr   bool
	}{
		{
			name:      "Current year in November",
			token:     "15.11.",
			ref:       time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantYear:  2023,
			wantMonth: time.November,
			wantDay:   15,
		},
		{
			name:      "December run sees January as next year",
			token:     "5.1.",
			ref:       time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC),
			wantYear:  2024,
			wantMonth: time.January,
			wantDay:   5,
		},
		{
			name:      "December run keeps December in the same year",
			token:     "20.12.",
			ref:       time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantYear:  2023,
			wantMonth: time.December,
			wantDay:   20,
		},
		{
			name:      "November run does not roll January forward",
			token:     "5.1.",
			ref:       time.Date(2023, time.November, 30, 0, 0, 0, 0, time.UTC),
			wantYear:  2023,
			wantMonth: time.January,
			wantDay:   5,
		},
		{
			name:      "January run rolls December back",
			token:     "20.12.",
			ref:       time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC),
			wantYear:  2023,
			wantMonth: time.December,
			wantDay:   20,
		},
		{
			name:      "February run rolls November back",
			token:     "15.11.",
			ref:       time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			wantYear:  2023,
			wantMonth: time.November,
			wantDay:   15,
		},
		{
			name:      "March run rolls October back",
			token:     "1.10.",
			ref:       time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			wantYear:  2023,
			wantMonth: time.October,
			wantDay:   1,
		},
		{
			name:      "April run keeps December in the same year",
			token:     "20.12.",
			ref:       time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantYear:  2024,
			wantMonth: time.December,
			wantDay:   20,
		},
		{
			name:      "January run keeps September in the same year",
			token:     "30.9.",
			ref:       time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			wantYear:  2024,
			wantMonth: time.September,
			wantDay:   30,
		},
		{
			name:      "Leading zeros",
			token:     "05.03.",
			ref:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			wantYear:  2024,
			wantMonth: time.March,
			wantDay:   5,
		},
		{
			name:      "Leap day in a leap year",
			token:     "29.2.",
			ref:       time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
		{
			name:    "Leap day in a common year",
			token:   "29.2.",
			ref:     time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "February 31st",
			token:   "31.2.",
			ref:     time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "April 31st",
			token:   "31.4.",
			ref:     time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Day zero",
			token:   "0.5.",
			ref:     time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Month thirteen",
			token:   "12.13.",
			ref:     time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Missing trailing dot",
			token:   "12.12",
			ref:     time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
		{
			name:    "Empty token",
			token:   "",
			ref:     time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDate(tt.token, tt.ref)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveDate(%q) = %v, want error", tt.token, got)
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ResolveDate(%q) error = %v, want ErrInvalidDate", tt.token, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.token, err)
			}
			if got.Year() != tt.wantYear {
				t.Errorf("ResolveDate(%q).Year() = %d, want %d", tt.token, got.Year(), tt.wantYear)
			}
			if got.Month() != tt.wantMonth {
				t.Errorf("ResolveDate(%q).Month() = %v, want %v", tt.token, got.Month(), tt.wantMonth)
			}
			if got.Day() != tt.wantDay {
				t.Errorf("ResolveDate(%q).Day() = %d, want %d", tt.token, got.Day(), tt.wantDay)
			}
		})
	}
}

func TestResolveDate_SameYearOutsideBoundaryMonths(t *testing.T) {
	// Runs from April to November never shift the year
	for refMonth := time.April; refMonth <= time.November; refMonth++ {
		ref := time.Date(2025, refMonth, 10, 12, 0, 0, 0, time.UTC)
		for month := 1; month <= 12; month++ {
			token := "1." + strconv.Itoa(month) + "."
			got, err := ResolveDate(token, ref)
			if err != nil {
				t.Fatalf("ResolveDate(%q, %v) unexpected error: %v", token, refMonth, err)
			}
			if got.Year() != ref.Year() {
				t.Errorf("ResolveDate(%q, %v).Year() = %d, want %d", token, refMonth, got.Year(), ref.Year())
			}
		}
	}
}

func TestResolveDate_StripsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	ref := time.Date(2024, time.June, 3, 21, 45, 12, 500, loc)

	got, err := ResolveDate("7.6.", ref)
	if err != nil {
		t.Fatalf("ResolveDate() unexpected error: %v", err)
	}

	want := time.Date(2024, time.June, 7, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ResolveDate() = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("ResolveDate() location = %v, want %v", got.Location(), loc)
	}
}

func TestTokenPattern(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"10.12. Artist One", "10.12."},
		{"5.1.Artist", "5.1."},
		{"15.11.", "15.11."},
		{"Artist 10.12.", ""},
		{"Missä? Hämeenkatu 1", ""},
		{"123.1. Too many digits", ""},
		{"1.1 missing dot", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := TokenPattern.FindString(tt.line); got != tt.want {
				t.Errorf("TokenPattern.FindString(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, time.March, 9, 23, 59, 59, 999, time.UTC)
	want := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay(%v) = %v, want %v", in, got, want)
	}
}

func TestFormatHeader(t *testing.T) {
	d := time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatHeader(d); got != "Friday, 15 Dec" {
		t.Errorf("FormatHeader(%v) = %q, want %q", d, got, "Friday, 15 Dec")
	}
}
