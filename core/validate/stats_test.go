package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumbersMatch(t *testing.T) {
	// |a-b| <= max(1e-6, 1e-9 * max(|a|,|b|))
	assert.True(t, NumbersMatch(1.0, 1.0))
	assert.True(t, NumbersMatch(1000.00, 999.999999))
	assert.True(t, NumbersMatch(0, 1e-7))
	assert.True(t, NumbersMatch(1e12, 1e12+100))

	// A difference of exactly 1e-3 near 1.0 must fail.
	assert.False(t, NumbersMatch(1.0, 1.0+1e-3))
	assert.False(t, NumbersMatch(1000.00, 990.00))
	assert.False(t, NumbersMatch(-1, 1))
}

func TestCompareStats_NumericSums(t *testing.T) {
	src, tgt := loadPair(t,
		"amount\n500\n500.00\n",
		"amount\n400\n599.999999\n")

	result, err := CompareStats(context.Background(), src, tgt, []string{"amount"})
	require.NoError(t, err)
	assert.Equal(t, CheckStats, result.Name)
	assert.Equal(t, StatusPass, result.Status)

	stats := result.Details.(StatsDetails).Stats
	require.Len(t, stats, 1)
	assert.Equal(t, "amount", stats[0].Column)
	require.NotNil(t, stats[0].SourceSum)
	assert.InDelta(t, 1000.0, *stats[0].SourceSum, 1e-9)
	assert.True(t, stats[0].Match)
}

func TestCompareStats_NumericMismatchIsFail(t *testing.T) {
	src, tgt := loadPair(t, "amount\n1000\n", "amount\n990\n")

	result, err := CompareStats(context.Background(), src, tgt, []string{"amount"})
	require.NoError(t, err)
	assert.Equal(t, StatusFail, result.Status)
	assert.Equal(t, "1 column(s) with statistical differences", result.Summary)
}

func TestCompareStats_NullsExcludedFromSum(t *testing.T) {
	src, tgt := loadPair(t,
		"amount,id\n10,1\nNULL,2\n20,3\n",
		"amount,id\n10,1\n20,2\nN/A,3\n")

	result, err := CompareStats(context.Background(), src, tgt, []string{"amount"})
	require.NoError(t, err)

	stats := result.Details.(StatsDetails).Stats
	require.NotNil(t, stats[0].SourceSum)
	assert.InDelta(t, 30.0, *stats[0].SourceSum, 1e-9)
	assert.True(t, stats[0].Match)
}

func TestCompareStats_UniqueCounts(t *testing.T) {
	src, tgt := loadPair(t,
		"region\nEU\nUS\nEU\nNULL\n",
		"region\nEU\nUS\nAPAC\nEU\n")

	result, err := CompareStats(context.Background(), src, tgt, []string{"region"})
	require.NoError(t, err)
	assert.Equal(t, StatusFail, result.Status)

	stats := result.Details.(StatsDetails).Stats
	require.NotNil(t, stats[0].SourceUnique)
	require.NotNil(t, stats[0].TargetUnique)
	assert.Equal(t, 2, *stats[0].SourceUnique) // NULL excluded
	assert.Equal(t, 3, *stats[0].TargetUnique)
	assert.False(t, stats[0].Match)
}

func TestCompareStats_CaseSensitiveUnique(t *testing.T) {
	src, tgt := loadPair(t, "name\napple\nApple\n", "name\napple\napple\n")

	result, err := CompareStats(context.Background(), src, tgt, []string{"name"})
	require.NoError(t, err)

	stats := result.Details.(StatsDetails).Stats
	assert.Equal(t, 2, *stats[0].SourceUnique)
	assert.Equal(t, 1, *stats[0].TargetUnique)
	assert.False(t, stats[0].Match)
}

func TestCompareStats_TypeDisagreementUsesUniqueCounts(t *testing.T) {
	// Numeric on one side only: compared as text on both sides.
	src, tgt := loadPair(t, "v\n1\n2\n", "v\n1\ntwo\n")

	result, err := CompareStats(context.Background(), src, tgt, []string{"v"})
	require.NoError(t, err)

	stats := result.Details.(StatsDetails).Stats
	assert.Nil(t, stats[0].SourceSum)
	require.NotNil(t, stats[0].SourceUnique)
	assert.Equal(t, 2, *stats[0].SourceUnique)
	assert.True(t, stats[0].Match)
}

func TestCompareStats_FollowsCommonOrder(t *testing.T) {
	src, tgt := loadPair(t, "b,a\n1,2\n", "a,b\n2,1\n")

	result, err := CompareStats(context.Background(), src, tgt, []string{"b", "a"})
	require.NoError(t, err)

	stats := result.Details.(StatsDetails).Stats
	require.Len(t, stats, 2)
	assert.Equal(t, "b", stats[0].Column)
	assert.Equal(t, "a", stats[1].Column)
}

func TestCompareStats_Cancellation(t *testing.T) {
	src, tgt := loadPair(t, "amount\n1\n", "amount\n1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CompareStats(ctx, src, tgt, []string{"amount"})
	assert.ErrorIs(t, err, context.Canceled)
}
