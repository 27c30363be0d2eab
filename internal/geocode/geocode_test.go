package geocode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  []string
	}{
		{"empty", nil, []string{}},
		{"keeps two chars in order", []string{"US", "USA", "ca", "F", "FR"}, []string{"US", "ca", "FR"}},
		{"keeps duplicates", []string{"GB", "GB", "alpha-2"}, []string{"GB", "GB"}},
		{"counts runes not bytes", []string{"Åland", "ÅX"}, []string{"ÅX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(tt.texts))
		})
	}
}

func TestCountMismatch(t *testing.T) {
	assert.False(t, CountMismatch(make([]string, 249), ExpectedCount))
	assert.True(t, CountMismatch(make([]string, 100), ExpectedCount))
	assert.True(t, CountMismatch(make([]string, 300), ExpectedCount))
}

func TestSelect(t *testing.T) {
	codes := []string{"US", "ca", "FR"}

	tests := []struct {
		name    string
		codes   []string
		input   string
		want    string
		outcome Outcome
	}{
		{"exact", codes, "FR", "FR", Matched},
		{"keeps input casing", codes, "Us", "Us", Matched},
		{"lower matches upper member", codes, "fr", "fr", Matched},
		{"upper matches lower member", codes, "CA", "CA", Matched},
		{"empty input", codes, "", Default, Empty},
		{"unknown code", codes, "zz", Default, Invalid},
		{"prefix is not a match", codes, "U", Default, Invalid},
		{"empty set", nil, "US", Default, Invalid},
		{"empty set empty input", nil, "", Default, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.codes, tt.input, Default)
			assert.Equal(t, tt.want, got.Code)
			assert.Equal(t, tt.outcome, got.Outcome)
		})
	}
}
