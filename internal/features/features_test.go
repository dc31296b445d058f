package features

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayusman/handtrack/internal/detector"
)

// flatHand returns 21 landmarks all at (x, y).
func flatHand(x, y int) detector.LandmarkList {
	lms := make(detector.LandmarkList, detector.NumLandmarks)
	for i := range lms {
		lms[i] = detector.Landmark{ID: i, X: x, Y: y}
	}
	return lms
}

func randomHand(r *rand.Rand) detector.LandmarkList {
	lms := make(detector.LandmarkList, detector.NumLandmarks)
	for i := range lms {
		lms[i] = detector.Landmark{ID: i, X: r.Intn(1280) - 100, Y: r.Intn(720) - 100}
	}
	return lms
}

func TestComputeBoundingBox(t *testing.T) {
	t.Run("three points", func(t *testing.T) {
		lms := detector.LandmarkList{{ID: 0, X: 10, Y: 10}, {ID: 1, X: 20, Y: 20}, {ID: 2, X: 30, Y: 5}}

		box, err := ComputeBoundingBox(lms)
		require.NoError(t, err)
		assert.Equal(t, BoundingBox{XMin: 10, YMin: 5, XMax: 30, YMax: 20}, box)
	})

	t.Run("single landmark is degenerate", func(t *testing.T) {
		box, err := ComputeBoundingBox(detector.LandmarkList{{ID: 0, X: 42, Y: 7}})
		require.NoError(t, err)
		assert.Equal(t, box.XMin, box.XMax)
		assert.Equal(t, box.YMin, box.YMax)
		assert.Equal(t, 42, box.XMin)
		assert.Equal(t, 7, box.YMin)
	})

	t.Run("empty list fails", func(t *testing.T) {
		box, err := ComputeBoundingBox(nil)
		require.ErrorIs(t, err, ErrEmptyLandmarks)
		assert.Equal(t, BoundingBox{}, box)

		_, err = ComputeBoundingBox(detector.LandmarkList{})
		assert.ErrorIs(t, err, ErrEmptyLandmarks)
	})

	t.Run("contains every landmark", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))
		for n := 0; n < 200; n++ {
			lms := randomHand(r)
			box, err := ComputeBoundingBox(lms)
			require.NoError(t, err)

			for _, lm := range lms {
				assert.LessOrEqual(t, box.XMin, lm.X)
				assert.GreaterOrEqual(t, box.XMax, lm.X)
				assert.LessOrEqual(t, box.YMin, lm.Y)
				assert.GreaterOrEqual(t, box.YMax, lm.Y)
			}
		}
	})
}

func TestBoundingBox_Expand(t *testing.T) {
	box := BoundingBox{XMin: 10, YMin: 5, XMax: 30, YMax: 20}

	assert.Equal(t, BoundingBox{XMin: -10, YMin: -15, XMax: 50, YMax: 40}, box.Expand(20))
	assert.Equal(t, image.Rect(10, 5, 30, 20), box.Rect())
}

func TestClassifyFingers(t *testing.T) {
	t.Run("index extended", func(t *testing.T) {
		lms := flatHand(100, 100)
		lms[detector.IndexTip] = detector.Landmark{ID: detector.IndexTip, X: 100, Y: 50}
		lms[detector.IndexPIP] = detector.Landmark{ID: detector.IndexPIP, X: 100, Y: 80}

		states, err := ClassifyFingers(lms)
		require.NoError(t, err)
		assert.Equal(t, 1, states[detector.Index])
	})

	t.Run("index folded", func(t *testing.T) {
		lms := flatHand(100, 100)
		lms[detector.IndexTip] = detector.Landmark{ID: detector.IndexTip, X: 100, Y: 90}
		lms[detector.IndexPIP] = detector.Landmark{ID: detector.IndexPIP, X: 100, Y: 80}

		states, err := ClassifyFingers(lms)
		require.NoError(t, err)
		assert.Equal(t, 0, states[detector.Index])
	})

	t.Run("thumb extended", func(t *testing.T) {
		lms := flatHand(100, 100)
		lms[detector.ThumbTip].X = 200
		lms[detector.ThumbIP].X = 150

		states, err := ClassifyFingers(lms)
		require.NoError(t, err)
		assert.Equal(t, 1, states[detector.Thumb])
	})

	t.Run("thumb uses only x", func(t *testing.T) {
		lms := flatHand(100, 100)
		lms[detector.ThumbTip] = detector.Landmark{ID: detector.ThumbTip, X: 150, Y: 0}
		lms[detector.ThumbIP] = detector.Landmark{ID: detector.ThumbIP, X: 150, Y: 300}

		states, err := ClassifyFingers(lms)
		require.NoError(t, err)
		assert.Equal(t, 0, states[detector.Thumb])
	})

	t.Run("equal y is folded", func(t *testing.T) {
		states, err := ClassifyFingers(flatHand(10, 10))
		require.NoError(t, err)
		assert.Equal(t, FingerStates{}, states)
		assert.Equal(t, 0, states.Count())
	})

	t.Run("preset poses", func(t *testing.T) {
		tests := []struct {
			name string
			hand detector.HandLandmarks
			want FingerStates
		}{
			{"open palm", detector.OpenPalmLandmarks(), FingerStates{1, 1, 1, 1, 1}},
			{"pointing", detector.PointingLandmarks(), FingerStates{0, 1, 0, 0, 0}},
			// the thumb tip is vertically above the IP joint, which the x-only rule reports as folded
			{"thumbs up", detector.ThumbsUpLandmarks(), FingerStates{0, 0, 0, 0, 0}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				states, err := ClassifyFingers(tt.hand.ToPixels(640, 480))
				require.NoError(t, err)
				assert.Equal(t, tt.want, states)
			})
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for n := 0; n < 50; n++ {
			lms := randomHand(r)
			first, err := ClassifyFingers(lms)
			require.NoError(t, err)
			second, err := ClassifyFingers(lms)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		}
	})

	t.Run("empty list fails", func(t *testing.T) {
		_, err := ClassifyFingers(nil)
		assert.ErrorIs(t, err, ErrEmptyLandmarks)
	})

	t.Run("short list fails", func(t *testing.T) {
		_, err := ClassifyFingers(flatHand(0, 0)[:detector.PinkyTip])
		assert.ErrorIs(t, err, ErrLandmarkOutOfRange)
	})
}

func TestFingerStates_Count(t *testing.T) {
	assert.Equal(t, 5, FingerStates{1, 1, 1, 1, 1}.Count())
	assert.Equal(t, 2, FingerStates{0, 1, 1, 0, 0}.Count())
}

func TestDistance(t *testing.T) {
	lms := flatHand(0, 0)
	lms[detector.ThumbTip] = detector.Landmark{ID: detector.ThumbTip, X: 10, Y: 20}
	lms[detector.IndexTip] = detector.Landmark{ID: detector.IndexTip, X: 13, Y: 24}

	t.Run("pythagorean", func(t *testing.T) {
		length, seg, err := Distance(detector.ThumbTip, detector.IndexTip, lms)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, length, 1e-9)
		assert.Equal(t, Segment{X1: 10, Y1: 20, X2: 13, Y2: 24}, seg)
		assert.Equal(t, image.Pt(11, 22), seg.Midpoint())
	})

	t.Run("symmetric", func(t *testing.T) {
		r := rand.New(rand.NewSource(3))
		hand := randomHand(r)
		for a := 0; a < detector.NumLandmarks; a++ {
			for b := 0; b < detector.NumLandmarks; b++ {
				ab, _, err := Distance(a, b, hand)
				require.NoError(t, err)
				ba, _, err := Distance(b, a, hand)
				require.NoError(t, err)
				assert.Equal(t, ab, ba)
			}
		}
	})

	t.Run("zero on self", func(t *testing.T) {
		for id := 0; id < detector.NumLandmarks; id++ {
			length, seg, err := Distance(id, id, lms)
			require.NoError(t, err)
			assert.Zero(t, length)
			assert.Equal(t, seg.Start(), seg.End())
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, ids := range [][2]int{{-1, 0}, {0, 21}, {25, 3}} {
			_, _, err := Distance(ids[0], ids[1], lms)
			assert.ErrorIs(t, err, ErrLandmarkOutOfRange, "ids %v", ids)
		}

		_, _, err := Distance(0, 0, nil)
		assert.ErrorIs(t, err, ErrLandmarkOutOfRange)
	})
}
