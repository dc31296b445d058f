package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayusman/handtrack/internal/detector"
)

func TestSelectHand(t *testing.T) {
	hands := []detector.HandLandmarks{detector.OpenPalmLandmarks(), detector.PointingLandmarks()}

	t.Run("valid index", func(t *testing.T) {
		h, err := SelectHand(hands, 1)
		require.NoError(t, err)
		assert.Equal(t, hands[1], h)
	})

	t.Run("no detection", func(t *testing.T) {
		_, err := SelectHand(nil, 0)
		assert.ErrorIs(t, err, ErrNoDetection)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := SelectHand(hands, 2)
		assert.ErrorIs(t, err, ErrHandOutOfRange)

		_, err = SelectHand(hands, -1)
		assert.ErrorIs(t, err, ErrHandOutOfRange)
	})
}

func TestExtract(t *testing.T) {
	f, err := Extract(detector.OpenPalmLandmarks(), 0, 640, 480)
	require.NoError(t, err)

	assert.Equal(t, 0, f.Hand)
	assert.Equal(t, "Right", f.Handedness)
	assert.Len(t, f.Landmarks, detector.NumLandmarks)
	assert.Equal(t, FingerStates{1, 1, 1, 1, 1}, f.Fingers)

	// open palm spans x 0.34..0.73 and y 0.28..0.80
	assert.Equal(t, BoundingBox{XMin: 217, YMin: 134, XMax: 467, YMax: 384}, f.Box)
}

func TestExtractAll(t *testing.T) {
	t.Run("no hands", func(t *testing.T) {
		out, err := ExtractAll(nil, 640, 480)
		assert.ErrorIs(t, err, ErrNoDetection)
		assert.Nil(t, out)
	})

	t.Run("keeps order", func(t *testing.T) {
		hands := []detector.HandLandmarks{detector.PointingLandmarks(), detector.OpenPalmLandmarks()}

		out, err := ExtractAll(hands, 640, 480)
		require.NoError(t, err)
		require.Len(t, out, 2)

		assert.Equal(t, 0, out[0].Hand)
		assert.Equal(t, 1, out[0].Fingers.Count())
		assert.Equal(t, 1, out[1].Hand)
		assert.Equal(t, 5, out[1].Fingers.Count())
	})
}
