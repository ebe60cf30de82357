package batch_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/hyperpath/batch"
	"github.com/katalvlaran/hyperpath/hyperspace"
	"github.com/katalvlaran/hyperpath/transform"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fiveDimConfig(t *testing.T) hyperspace.Config {
	cfg, err := hyperspace.New(hyperspace.WithLimitDimensions(5))
	require.NoError(t, err)

	return cfg
}

// TestTransformAll_OneNonNumeric: N points with one NaN yield N−1 paths and
// one failure, and the successes keep their relative order.
func TestTransformAll_OneNonNumeric(t *testing.T) {
	points := []transform.RawPoint{
		transform.NewPoint("a", 1, 0, 0, 1),
		transform.NewPoint("b", 2, 0, 0, 1),
		transform.NewPoint("bad", 3, math.NaN(), 0, 1),
		transform.NewPoint("c", 4, 0, 0, 1),
		transform.NewPoint("d", 5, 0, 0, 1),
	}

	res, err := batch.TransformAll(points, fiveDimConfig(t), batch.WithWorkers(3))
	require.NoError(t, err)

	require.Len(t, res.Paths, 4)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, 2, res.Failures[0].Index)
	assert.Equal(t, "bad", res.Failures[0].Label)
	assert.ErrorIs(t, res.Failures[0], hyperspace.ErrInvalidPoint)

	var labels []string
	for _, p := range res.Paths {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, labels)
	assert.ErrorIs(t, res.Err(), hyperspace.ErrInvalidPoint)
}

// TestTransformAll_AllValid has no failures and a nil joined error.
func TestTransformAll_AllValid(t *testing.T) {
	res, err := batch.TransformAll([]transform.RawPoint{
		transform.NewPoint("a", 1, 2, 3),
		transform.NewPoint("b", 1, 2, 3, 4, 5),
	}, fiveDimConfig(t))
	require.NoError(t, err)

	assert.Empty(t, res.Failures)
	assert.NoError(t, res.Err())
	assert.Equal(t, 2, res.MaxExtraDims)

	shells, err := res.Shells(fiveDimConfig(t))
	require.NoError(t, err)
	require.Len(t, shells, 2)
	assert.Equal(t, 5, shells[1].Dim)
}

// TestTransformAll_Empty handles a nil batch.
func TestTransformAll_Empty(t *testing.T) {
	res, err := batch.TransformAll(nil, fiveDimConfig(t))
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
	assert.Empty(t, res.Failures)
	assert.Zero(t, res.MaxExtraDims)
}

// TestTransformAll_InvalidConfig aborts before touching any point.
func TestTransformAll_InvalidConfig(t *testing.T) {
	_, err := batch.TransformAll([]transform.RawPoint{transform.NewPoint("a", 1, 2, 3)}, hyperspace.Config{})
	assert.ErrorIs(t, err, hyperspace.ErrConfiguration)
}

// TestTransformAll_DefaultLabels names unlabeled points BatchPoint_<i+1>.
func TestTransformAll_DefaultLabels(t *testing.T) {
	res, err := batch.TransformAll([]transform.RawPoint{
		{Coords: []float64{1, 2, 3}},
		{Coords: []float64{1}},
		{Label: "named", Coords: []float64{1, 2, 3}},
	}, fiveDimConfig(t), batch.WithWorkers(1))
	require.NoError(t, err)

	require.Len(t, res.Paths, 2)
	assert.Equal(t, "BatchPoint_1", res.Paths[0].Label)
	assert.Equal(t, "named", res.Paths[1].Label)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "BatchPoint_2", res.Failures[0].Label)
	assert.Contains(t, res.Failures[0].Error(), "point 1 (BatchPoint_2)")
}

// TestTransformAll_ParallelMatchesSequential compares worker counts on a large batch.
func TestTransformAll_ParallelMatchesSequential(t *testing.T) {
	cfg, err := hyperspace.New(hyperspace.WithLimitDimensions(12))
	require.NoError(t, err)

	points := make([]transform.RawPoint, 1000)
	for i := range points {
		n := 2 + i%14 // 2..15 coordinates: some invalid, some truncated
		coords := make([]float64, n)
		for j := range coords {
			coords[j] = math.Sin(float64(i*31 + j*7))
		}
		points[i] = transform.NewPoint(fmt.Sprintf("p%d", i), coords...)
	}

	seq, err := batch.TransformAll(points, cfg, batch.WithWorkers(1))
	require.NoError(t, err)
	for _, workers := range []int{2, 7, 64, 5000} {
		par, err := batch.TransformAll(points, cfg, batch.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers=%d", workers)
	}
	assert.NotEmpty(t, seq.Failures)
	assert.Equal(t, 9, seq.MaxExtraDims)
}

// TestTransformAll_Logging reports truncations and failures as warnings.
func TestTransformAll_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	_, err := batch.TransformAll([]transform.RawPoint{
		transform.NewPoint("overloaded", 8, 0, 0, 2, 2, 99, 99),
		transform.NewPoint("short", 1, 2),
	}, fiveDimConfig(t), batch.WithLogger(logger))
	require.NoError(t, err)

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 2)
	assert.Contains(t, warns[0].Message, "truncated")
	assert.Equal(t, "overloaded", warns[0].ContextMap()["label"])
	assert.EqualValues(t, 2, warns[0].ContextMap()["dropped"])
	assert.Equal(t, "skipping invalid point", warns[1].Message)
	assert.EqualValues(t, 1, warns[1].ContextMap()["index"])

	assert.Equal(t, 1, logs.FilterMessage("batch transformed").Len())
}

// TestOptions_Panics verifies fail-fast option constructors.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { batch.WithWorkers(0) })
	assert.Panics(t, func() { batch.WithLogger(nil) })
	assert.Panics(t, func() { batch.WithMetrics(nil) })
}
