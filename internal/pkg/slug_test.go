package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "science-fiction", Slugify("Science Fiction"))
	assert.Equal(t, "cafe-society", Slugify("Café", "Society"))
	assert.Regexp(t, slugRegex, Slugify("Лев", "Толстой"))
	assert.Equal(t, "", Slugify("!!!"))

	long := Slugify(strings.Repeat("word ", 20))
	assert.LessOrEqual(t, len(long), MaxSlugLength)
	assert.False(t, strings.HasSuffix(long, "-"))
}

func TestResolveSlug(t *testing.T) {
	tests := []struct {
		name    string
		given   string
		parts   []string
		want    string
		wantErr bool
	}{
		{"given wins", "sci_fi", []string{"Science Fiction"}, "sci_fi", false},
		{"derived", "", []string{"Science Fiction"}, "science-fiction", false},
		{"nothing to derive", "", []string{"???"}, "", true},
		{"bad characters", "sci fi", nil, "", true},
		{"too long", strings.Repeat("a", 51), nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSlug(tt.given, tt.parts...)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Contains(t, err.Fields, "slug")
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
