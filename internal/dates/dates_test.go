package dates

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in          string
		want        time.Time
		approximate bool
		wantErr     bool
	}{
		{in: "1870-03-15", want: time.Date(1870, 3, 15, 0, 0, 0, 0, time.UTC)},
		{in: "1870-03", want: time.Date(1870, 3, 1, 0, 0, 0, 0, time.UTC), approximate: true},
		{in: "1870", want: time.Date(1870, 1, 1, 0, 0, 0, 0, time.UTC), approximate: true},
		{in: "  1870-03-15  ", want: time.Date(1870, 3, 15, 0, 0, 0, 0, time.UTC)},
		{in: "", wantErr: true},
		{in: "March 15, 1870", wantErr: true},
		{in: "1870-13-40", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, approximate, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if approximate != tt.approximate {
				t.Errorf("Parse(%q) approximate = %v, want %v", tt.in, approximate, tt.approximate)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	in := "1923-11-02"
	parsed, _, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(parsed); got != in {
		t.Errorf("Format(Parse(%q)) = %q", in, got)
	}
}
