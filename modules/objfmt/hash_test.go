package objfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
		{name: "too short", input: "abc", wantErr: true},
		{name: "not hex", input: "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHash(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, h.String())
		})
	}
}

func TestSumIsDeterministicAndTyped(t *testing.T) {
	a := Sum(KindBlob, []byte("hello\n"))
	b := Sum(KindBlob, []byte("hello\n"))
	assert.Equal(t, a, b)

	c := Sum(KindTree, []byte("hello\n"))
	assert.NotEqual(t, a, c, "same payload under a different type must hash differently")
}

func TestZeroHash(t *testing.T) {
	var h Hash
	assert.True(t, h.IsZero())
	h = Sum(KindBlob, []byte("x"))
	assert.False(t, h.IsZero())
}
