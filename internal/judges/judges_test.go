package judges

import (
	"reflect"
	"testing"
)

func TestLastNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"initial and surname", "J. Smith", []string{"smith"}},
		{"full name", "John Smith", []string{"smith"}},
		{"surname with honorific", "Smith, J.", []string{"smith"}},
		{"panel listing", "Smith, Jones and Brown, JJ.", []string{"brown", "jones", "smith"}},
		{"chief justice", "Marshall, Chief Justice", []string{"marshall"}},
		{"per curiam", "PER CURIAM", nil},
		{"empty", "", nil},
		{"ampersand", "Smith & Jones", []string{"jones", "smith"}},
		{"delivered by", "Opinion delivered by Justice Cardozo", []string{"cardozo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LastNames(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LastNames(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"J. Smith", "John Smith", true},
		{"J. Smith", "John Doe", false},
		{"Smith, Jones", "Jones and Smith", true},
		{"", "", true},
		{"Smith", "", false},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
