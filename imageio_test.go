package svdpress_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	svdpress "github.com/yyyoichi/svdpress"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	src := testImage(12, 9)
	for _, format := range []string{"png", "bmp", "tiff"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, svdpress.Encode(&buf, src, format))

			got, name, err := svdpress.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, format, name)
			assert.Equal(t, src.Bounds().Dx(), got.Bounds().Dx())
			assert.Equal(t, src.Bounds().Dy(), got.Bounds().Dy())
		})
	}
}

func TestEncode_JPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, svdpress.Encode(&buf, testImage(12, 9), "jpeg"))

	_, name, err := svdpress.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", name)
}

func TestEncode_JPEGQuality(t *testing.T) {
	// A lower quality setting must produce a smaller payload.
	src := testImage(64, 48)
	var low, high bytes.Buffer
	require.NoError(t, svdpress.Encode(&low, src, "jpeg", svdpress.WithJPEGQuality(5)))
	require.NoError(t, svdpress.Encode(&high, src, "jpeg", svdpress.WithJPEGQuality(95)))
	assert.Less(t, low.Len(), high.Len())
}

func TestEncode_GIF(t *testing.T) {
	// Palettization is lossy, so only the container and dimensions are
	// asserted.
	var buf bytes.Buffer
	require.NoError(t, svdpress.Encode(&buf, testImage(12, 9), "gif"))

	got, name, err := svdpress.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "gif", name)
	assert.Equal(t, 12, got.Bounds().Dx())
	assert.Equal(t, 9, got.Bounds().Dy())
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := svdpress.Encode(&buf, testImage(2, 2), "webp")
	assert.ErrorIs(t, err, svdpress.ErrUnsupportedFormat)
}
