package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		values   map[string]any
		want     string
		wantErr  error
	}{
		{
			name:     "simple",
			template: "Hello {name}",
			values:   map[string]any{"name": "world"},
			want:     "Hello world",
		},
		{
			name:     "multiple placeholders",
			template: "{greeting}, {name}!",
			values:   map[string]any{"greeting": "Hi", "name": "Ada"},
			want:     "Hi, Ada!",
		},
		{
			name:     "repeated placeholder",
			template: "{x} and {x}",
			values:   map[string]any{"x": 1},
			want:     "1 and 1",
		},
		{
			name:     "non-string value",
			template: "count={n}",
			values:   map[string]any{"n": 42},
			want:     "count=42",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			values:   nil,
			want:     "plain text",
		},
		{
			name:     "escaped braces",
			template: "{{literal}} {name}",
			values:   map[string]any{"name": "x"},
			want:     "{literal} x",
		},
		{
			name:     "missing key",
			template: "Hello {name}",
			values:   map[string]any{},
			wantErr:  ErrMissingKey,
		},
		{
			name:     "unclosed placeholder",
			template: "Hello {name",
			values:   map[string]any{"name": "x"},
			wantErr:  ErrUnclosedPlaceholder,
		},
		{
			name:     "empty placeholder",
			template: "Hello {}",
			values:   map[string]any{},
			wantErr:  ErrEmptyPlaceholder,
		},
		{
			name:     "empty template",
			template: "",
			values:   map[string]any{"name": "x"},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Substitute(tt.template, tt.values)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubstitute_Lenient(t *testing.T) {
	t.Parallel()

	got, err := Substitute("Hello {name}, {missing}", map[string]any{"name": "Ada"}, Lenient())
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada, {missing}", got)
}

func TestSubstitute_LenientStillRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Substitute("Hello {name", nil, Lenient())
	require.ErrorIs(t, err, ErrUnclosedPlaceholder)
}

func TestMustSubstitute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello world", MustSubstitute("Hello {name}", map[string]any{"name": "world"}))

	assert.Panics(t, func() {
		MustSubstitute("Hello {name}", nil)
	})
}
