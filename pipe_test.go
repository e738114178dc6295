package adtfn_test

import (
	"fmt"
	"testing"

	"github.com/KasperOmsK/adtfn"
	"github.com/KasperOmsK/adtfn/internal/iterx"

	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	pipe := adtfn.From(iterx.Of(1, 2, 3))

	require.Equal(t, []int{1, 2, 3}, iterx.Collect(pipe.Values()))
}

func TestTap(t *testing.T) {
	// taps run in the order they are declared
	pipe := adtfn.From(iterx.Of(1))

	counter := 0

	pipe.Tap(func(i int) {
		counter++
	})
	pipe.Tap(func(i int) {
		require.NotEqual(t, 0, counter)
	})

	collect(pipe)
	require.Equal(t, 1, counter)
}

func TestTap_FiresOnUpstreamStage(t *testing.T) {
	src := adtfn.From(iterx.Of(1, 2, 3))

	var seen []int
	src.Tap(func(i int) { seen = append(seen, i) })

	vals, _ := collect(adtfn.Map(src, func(i int) int { return i * i }))

	require.Equal(t, []int{1, 4, 9}, vals)
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestTap_NoFunc(t *testing.T) {
	pipe := adtfn.From(iterx.Of(1))

	require.Panics(t, func() {
		pipe.Tap(nil)
	})
}

func TestPipelineError_Unwrap(t *testing.T) {
	reason := fmt.Errorf("boom")
	err := adtfn.PipelineError{Item: 7, Reason: reason}

	require.ErrorIs(t, err, reason)
	require.EqualError(t, err, "pipeline: item 7: boom")
}

func TestTryMapErrorChannelRace(t *testing.T) {
	const iterations = 1000

	for range iterations {
		inputData := make([]int, 1000)
		for i := range 999 {
			inputData[i] = i
		}
		inputData[999] = 42 // sentinel for failure

		input := adtfn.From(iterx.FromSlice(inputData))

		grouped := adtfn.GroupBy(input, func(i int) int {
			return i / 10
		})

		// fail only on the last group
		mapped := adtfn.TryMap(grouped, func(in []int) (int, error) {
			sum := 0
			for _, v := range in {
				sum += v
			}
			if in[len(in)-1] == 42 {
				return 0, fmt.Errorf("late failure")
			}
			return sum, nil
		})

		it, errs := mapped.Results()

		go func() {
			for range it {
				break
			}
		}()

		for range errs {
		}
	}
}
