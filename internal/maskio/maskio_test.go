package maskio

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func writeMask(t *testing.T, name string, c color.NRGBA) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, imaging.Save(imaging.New(8, 6, c), path))
	return path
}

func TestLoadWhiteMask(t *testing.T) {
	path := writeMask(t, "mask.png", color.NRGBA{200, 200, 200, 255})

	mask, err := Load(path)
	require.NoError(t, err)
	defer mask.Close()

	assert.Equal(t, 1, mask.Channels())
	assert.Equal(t, 6, mask.Rows())
	assert.Equal(t, 8, mask.Cols())
	assert.Equal(t, 8*6, gocv.CountNonZero(mask), "nonzero source pixels become 255")
	assert.EqualValues(t, 255, mask.GetUCharAt(0, 0))
}

func TestLoadBlackMask(t *testing.T) {
	path := writeMask(t, "mask.png", color.NRGBA{0, 0, 0, 255})

	mask, err := Load(path)
	require.NoError(t, err)
	defer mask.Close()

	assert.Equal(t, 0, gocv.CountNonZero(mask))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
