package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Verbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantV1    bool
	}{
		{"default", 0, false},
		{"negative", -3, false},
		{"verbose", 1, true},
		{"very verbose", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.verbosity)

			log.Info("always", "id", "TIT2")
			log.V(1).Info("frame not extracted", "id", "XXXX")

			out := buf.String()
			assert.Contains(t, out, "always")
			assert.Contains(t, out, "TIT2")
			assert.Equal(t, tt.wantV1, bytes.Contains(buf.Bytes(), []byte("frame not extracted")))
		})
	}
}

func TestNew_NoTimestamps(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, 0).Info("hello")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("INFO")), buf.String())
}
