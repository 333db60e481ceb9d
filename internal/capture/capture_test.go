package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDeviceSource(t *testing.T) {
	cases := []struct {
		source string
		want   bool
	}{
		{"0", true},
		{"12", true},
		{"", false},
		{"eye.mp4", false},
		{"1a", false},
		{"/dev/video0", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsDeviceSource(tc.source), "source %q", tc.source)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("testdata/does-not-exist.mp4")
	assert.Error(t, err)
}
