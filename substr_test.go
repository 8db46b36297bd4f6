package substr_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/substr"
	"github.com/coregx/substr/kmp"
)

const scenarioText = "the dog is very dead then"

var scenarioCases = []struct {
	pattern string
	want    int
}{
	{"the", 0},
	{"the dog is", 0},
	{"he ", 1},
	{"dog", 4},
	{"dead", 16},
	{"then", 21},
	{"frank", -1},
}

// TestAlgorithmsAgree runs the scenario table through every search path of
// a byte handle plus the one-shot Index, and requires identical answers.
func TestAlgorithmsAgree(t *testing.T) {
	text := []byte(scenarioText)

	for _, tc := range scenarioCases {
		t.Run(tc.pattern, func(t *testing.T) {
			p := substr.NewString(tc.pattern)

			assert.Equal(t, tc.want, p.Linear(text), "Linear")
			assert.Equal(t, tc.want, p.KMP(text), "KMP")
			assert.Equal(t, tc.want, p.BMH(text), "BMH")
			assert.Equal(t, tc.want, p.BMHString(scenarioText), "BMHString")
			assert.Equal(t, tc.want, substr.Index(text, []byte(tc.pattern)), "Index")
			assert.Equal(t, tc.want, substr.IndexString(scenarioText, tc.pattern), "IndexString")
		})
	}
}

// TestEmptyPatternPolicy pins the asymmetric empty-pattern handling:
// linear and KMP match at 0, BMH reports not found.
func TestEmptyPatternPolicy(t *testing.T) {
	p := substr.NewString("")

	assert.Equal(t, 0, p.Linear([]byte("hello")))
	assert.Equal(t, 0, p.KMP([]byte("hello")))
	assert.Equal(t, -1, p.BMH([]byte("hello")))

	// Empty text too: still 0 for the forward matchers.
	assert.Equal(t, 0, p.Linear(nil))
	assert.Equal(t, 0, p.KMP(nil))
	assert.Equal(t, -1, p.BMH(nil))

	// Index follows bytes.Index and reports 0.
	assert.Equal(t, 0, substr.Index([]byte("hello"), nil))
}

// TestPatternLongerThanText checks the not-found path that must not read
// past the text's end.
func TestPatternLongerThanText(t *testing.T) {
	p := substr.NewString("considerably longer than the text")
	text := []byte("short")

	assert.Equal(t, -1, p.Linear(text))
	assert.Equal(t, -1, p.KMP(text))
	assert.Equal(t, -1, p.BMH(text))
	assert.Equal(t, -1, substr.Index(text, []byte("considerably longer than the text")))
}

// TestTrailingSuffix places the pattern flush against the text's end for a
// range of lengths; a window that overruns by one element would panic here.
func TestTrailingSuffix(t *testing.T) {
	text := []byte(scenarioText)
	for l := 1; l <= len(text); l++ {
		pattern := text[len(text)-l:]
		want := len(text) - l

		p := substr.NewBytes(pattern)
		require.Equal(t, want, p.Linear(text), "Linear, suffix length %d", l)
		require.Equal(t, want, p.KMP(text), "KMP, suffix length %d", l)
		require.Equal(t, want, p.BMH(text), "BMH, suffix length %d", l)
	}
}

// TestRuneHandleOffsets checks that rune handles report rune offsets while
// byte handles report byte offsets for the same logical text.
func TestRuneHandleOffsets(t *testing.T) {
	const text = "héllo wörld"

	rp := substr.NewRunes("wörld")
	assert.Equal(t, 6, rp.KMP([]rune(text)), "rune offset")

	bp := substr.NewString("wörld")
	assert.Equal(t, 7, bp.BMHString(text), "byte offset ('é' is 2 bytes)")
}

// TestTablesBuiltOnce verifies the memoization contract: repeated searches
// reuse one table, and Borders/Shifts hand back the same instance.
func TestTablesBuiltOnce(t *testing.T) {
	p := substr.NewString("aabaa")

	require.Equal(t, kmp.Borders{0, 0, 1, 0, 1, 2}, p.Borders())

	// Search a few texts, then confirm the slice identity is stable.
	before := p.Borders()
	p.KMP([]byte("xxaabaaxx"))
	p.KMP([]byte("aabaa"))
	after := p.Borders()
	assert.Same(t, &before[0], &after[0], "border table rebuilt between searches")

	shiftsBefore := p.Shifts()
	p.BMH([]byte("xxaabaaxx"))
	shiftsAfter := p.Shifts()
	assert.Same(t, shiftsBefore, shiftsAfter, "shift table rebuilt between searches")
}

// TestConcurrentFirstUse hammers a fresh handle from many goroutines so the
// race detector can see the compute-once synchronization of both tables.
func TestConcurrentFirstUse(t *testing.T) {
	p := substr.NewString("dead")
	text := []byte(scenarioText)

	var wg sync.WaitGroup
	results := make([]int, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = p.KMP(text)
			} else {
				results[i] = p.BMH(text)
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, 16, got, "goroutine %d", i)
	}
}

// TestByteHandleEmbedding checks that the generic searches remain reachable
// through a BytePattern and agree with BMH.
func TestByteHandleEmbedding(t *testing.T) {
	p := substr.NewBytes([]byte("dog"))
	text := []byte(scenarioText)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, p.BMH(text), p.Linear(text))
	assert.Equal(t, p.BMH(text), p.KMP(text))
}
