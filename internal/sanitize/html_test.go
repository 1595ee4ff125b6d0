package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: "Fine jewelry since 1952",
			want:  "Fine jewelry since 1952",
		},
		{
			name:  "tags stripped",
			input: `<div class="collection-description"><h1>Tacori</h1><p>Rings.</p></div>`,
			want:  "TacoriRings.",
		},
		{
			name:  "script removed entirely",
			input: "<script>alert('x')</script>safe",
			want:  "safe",
		},
		{
			name:  "entities stay escaped",
			input: "<p>Rings &amp; Bands</p>",
			want:  "Rings &amp; Bands",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input))
		})
	}
}
