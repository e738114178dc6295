package adtfn_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/KasperOmsK/adtfn"
	"github.com/KasperOmsK/adtfn/internal/iterx"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMap_TransformsValues(t *testing.T) {
	src := adtfn.From(iterx.Of(1, 2, 3))

	p := adtfn.Map(src, func(v int) int {
		return v * 2
	})

	vals, errs := collect(p)

	require.Equal(t, []int{2, 4, 6}, vals)
	require.Empty(t, errs)
}

func TestTryMap_ForwardsErrors(t *testing.T) {
	src := adtfn.From(iterx.Of(1, 2, 3, 4))

	p := adtfn.TryMap(src, func(v int) (int, error) {
		if v%2 == 0 {
			return 0, fmt.Errorf("even number: %d", v)
		}
		return v * 10, nil
	})

	vals, errs := collect(p)

	require.Equal(t, []int{10, 30}, vals)
	require.Len(t, errs, 2)
	require.Equal(t, 2, errs[0].Item)
}

func TestFilter_ForwardsErrors(t *testing.T) {
	input := adtfn.From(iterx.Of(1, 2, 3, 4, 5))

	inputWithErr := adtfn.TryMap(input, func(v int) (int, error) {
		if v%2 == 0 {
			return 0, fmt.Errorf("even number: %d", v)
		}
		return v, nil
	})

	filtered := adtfn.Filter(inputWithErr, func(v int) bool {
		return v > 2
	})

	vals, errs := collect(filtered)

	require.Equal(t, []int{3, 5}, vals)

	require.Len(t, errs, 2)
	errorMsgs := []string{errs[0].Reason.Error(), errs[1].Reason.Error()}
	require.Contains(t, errorMsgs, "even number: 2")
	require.Contains(t, errorMsgs, "even number: 4")
}

func TestChunk_PanicInvalidChunkSize(t *testing.T) {
	src := adtfn.From(iterx.Of(1, 2, 3))

	require.Panics(t, func() {
		adtfn.Chunk(src, -1)
	})

	require.Panics(t, func() {
		adtfn.Chunk(src, 0)
	})
}

func TestChunk_GroupsCorrectly(t *testing.T) {
	src := adtfn.From(iterx.Of(1, 2, 3, 4, 5))

	vals, errs := collect(adtfn.Chunk(src, 2))

	require.Equal(t, [][]int{
		{1, 2},
		{3, 4},
		{5},
	}, vals)
	require.Empty(t, errs)
}

func TestChunk_RetainedChunksDoNotAlias(t *testing.T) {
	src := adtfn.From(iterx.Of(1, 2, 3, 4))

	var kept [][]int
	for chunk := range adtfn.Chunk(src, 2).Values() {
		kept = append(kept, chunk)
	}

	require.Equal(t, [][]int{{1, 2}, {3, 4}}, kept)
}

func TestFlatMap_FlattensInOrder(t *testing.T) {
	src := adtfn.From(iterx.Of(1, 2, 3))

	p := adtfn.FlatMap(src, func(v int) []int {
		return []int{v, v * 10}
	})

	vals, errs := collect(p)

	require.Equal(t, []int{1, 10, 2, 20, 3, 30}, vals)
	require.Empty(t, errs)
}

func TestFlatTryMap(t *testing.T) {
	// FlatTryMap behaves identically to Flatten(TryMap)
	split := func(in string) ([]string, error) {
		return strings.Split(in, ","), nil
	}

	values1, errs1 := collect(adtfn.FlatTryMap(adtfn.From(iterx.Of("A,B,C", "D,E,F")), split))
	values2, errs2 := collect(adtfn.Flatten(adtfn.TryMap(adtfn.From(iterx.Of("A,B,C", "D,E,F")), split)))

	require.Equal(t, values1, values2)
	require.Equal(t, errs1, errs2)
}

func TestGroupBy(t *testing.T) {
	input := adtfn.From(iterx.Of("A", "A", "B", "B", "A", "C", "C", "C"))

	vals, errs := collect(adtfn.GroupBy(input, func(s string) string { return s }))

	require.Empty(t, errs)
	require.Equal(t, [][]string{
		{"A", "A"},
		{"B", "B"},
		{"A"},
		{"C", "C", "C"},
	}, vals)
}

func TestGroupBy_ForwardsErrors(t *testing.T) {
	input := adtfn.From(iterx.Of(1, 1, 2, 2, 3))
	inputWithErr := adtfn.TryMap(input, func(v int) (int, error) {
		if v == 2 {
			return 0, fmt.Errorf("bad value %d", v)
		}
		return v, nil
	})

	vals, errs := collect(adtfn.GroupBy(inputWithErr, func(v int) int { return v }))

	require.Equal(t, [][]int{{1, 1}, {3}}, vals)
	require.Len(t, errs, 2)
	for _, err := range errs {
		require.Contains(t, err.Error(), "bad value 2")
	}
}

type record struct {
	Key   string
	Value int
}

func sumByKey(p adtfn.Pipe[record]) adtfn.Pipe[int] {
	return adtfn.GroupByAggregate(p,
		func(r record) string { return r.Key },
		func(first record) int { return 0 },
		func(acc *int, r record) { *acc += r.Value })
}

func TestGroupByAggregate_SumPerGroup(t *testing.T) {
	input := adtfn.From(iterx.Of(
		record{"A", 1},
		record{"A", 2},
		record{"B", 10},
		record{"B", 5},
		record{"A", 3},
	))

	vals, errs := collect(sumByKey(input))

	require.Empty(t, errs)
	require.Equal(t, []int{3, 15, 3}, vals)
}

func TestGroupByAggregate_EmptyInput(t *testing.T) {
	vals, errs := collect(sumByKey(adtfn.From(iterx.Of[record]())))

	require.Empty(t, vals)
	require.Empty(t, errs)
}

func TestGroupByAggregate_PreservesErrors(t *testing.T) {
	input := adtfn.From(iterx.Of(
		record{"A", 1},
		record{"A", 2},
		record{"B", 10},
	))
	inputWithErr := adtfn.TryMap(input, func(r record) (record, error) {
		if r.Value == 2 {
			return record{}, fmt.Errorf("bad value %d", r.Value)
		}
		return r, nil
	})

	vals, errs := collect(sumByKey(inputWithErr))

	require.Equal(t, []int{1, 10}, vals)
	require.Len(t, errs, 1)
	require.EqualError(t, errs[0].Reason, "bad value 2")
}

func TestResultMap_RoutesErrToErrorChannel(t *testing.T) {
	src := adtfn.From(iterx.Of("1", "two", "3"))

	p := adtfn.ResultMap(src, func(s string) adtfn.Result[int] {
		return adtfn.Try(strconv.Atoi(s))
	})

	vals, errs := collect(p)

	require.Equal(t, []int{1, 3}, vals)
	require.Len(t, errs, 1)
	require.Equal(t, "two", errs[0].Item)

	var numErr *strconv.NumError
	require.True(t, errors.As(errs[0], &numErr))
}

func TestMatchMap_DispatchesAndReportsUnmatched(t *testing.T) {
	partial, err := adtfn.NewPartialMatcher(tokenSum,
		adtfn.On("Number", func(tk token) string { return "n:" + strconv.Itoa(tk.(number).N) }),
	)
	require.NoError(t, err)

	src := adtfn.From(iterx.Of[token](number{1}, word{"x"}, number{2}))

	vals, errs := collect(adtfn.MatchMap(src, partial))

	require.Equal(t, []string{"n:1", "n:2"}, vals)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], adtfn.ErrUnmatched)
	require.Equal(t, word{"x"}, errs[0].Item)
}

func TestMerge(t *testing.T) {
	defer goleak.VerifyNone(t)

	merged := adtfn.Merge(adtfn.From(iterx.Of(1, 2)), adtfn.From(iterx.Of(3, 4)))

	vals, errs := collect(merged)

	require.ElementsMatch(t, []int{1, 2, 3, 4}, vals)
	require.Empty(t, errs)
}

func TestMerge_NoPipes(t *testing.T) {
	vals, errs := collect(adtfn.Merge[int]())

	require.Empty(t, vals)
	require.Empty(t, errs)
}

func TestMerge_ForwardsErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	pipe1 := adtfn.TryMap(adtfn.From(iterx.Of(1, 2)), func(v int) (int, error) {
		if v == 2 {
			return 0, fmt.Errorf("pipe1 error")
		}
		return v, nil
	})

	pipe2 := adtfn.TryMap(adtfn.From(iterx.Of(3, 4)), func(v int) (int, error) {
		if v == 4 {
			return 0, fmt.Errorf("pipe2 error")
		}
		return v, nil
	})

	vals, errs := collect(adtfn.Merge(pipe1, pipe2))

	require.ElementsMatch(t, []int{1, 3}, vals)
	require.Len(t, errs, 2)
	errorMsgs := []string{errs[0].Reason.Error(), errs[1].Reason.Error()}
	require.Contains(t, errorMsgs, "pipe1 error")
	require.Contains(t, errorMsgs, "pipe2 error")
}

func TestMerge_SharedSource(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := adtfn.TryMap(adtfn.From(iterx.Of(1, 2, 3, 4)), func(v int) (int, error) {
		if v == 3 {
			return 0, fmt.Errorf("three")
		}
		return v, nil
	})
	odd := adtfn.Filter(src, func(v int) bool { return v%2 == 1 })
	even := adtfn.Filter(src, func(v int) bool { return v%2 == 0 })

	vals, errs := collect(adtfn.Merge(odd, even))

	require.ElementsMatch(t, []int{1, 2, 4}, vals)
	// each branch iterates the source on its own, so 3 fails twice
	require.Len(t, errs, 2)
}

func TestMerge_StopEarly(t *testing.T) {
	defer goleak.VerifyNone(t)

	merged := adtfn.Merge(adtfn.From(iterx.Of(1, 2, 3)), adtfn.From(iterx.Of(4, 5, 6)))
	vals, errs := merged.Results()

	done := make(chan struct{})
	go func() {
		for range errs {
		}
		close(done)
	}()

	for range vals {
		break
	}
	<-done
}

func collect[T any](p adtfn.Pipe[T]) ([]T, []adtfn.PipelineError) {
	valsSeq, errsCh := p.Results()

	var vals []T
	var errs []adtfn.PipelineError

	done := make(chan struct{})

	go func() {
		for err := range errsCh {
			errs = append(errs, err)
		}
		close(done)
	}()

	for v := range valsSeq {
		vals = append(vals, v)
	}

	<-done
	return vals, errs
}
