package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamed0406/domainwatch/internal/domain"
)

func TestPercent_TruncatesNotRounds(t *testing.T) {
	assert.Equal(t, 83, Counts{Up: 5, Total: 6}.Percent(), "83.33 truncates to 83")
	assert.Equal(t, 66, Counts{Up: 2, Total: 3}.Percent(), "66.67 truncates to 66, never 67")
	assert.Equal(t, 100, Counts{Up: 4, Total: 4}.Percent())
	assert.Equal(t, 0, Counts{Up: 0, Total: 5}.Percent())
	assert.Equal(t, 0, Counts{}.Percent())
}

func TestAggregator_RecordKeepsInvariant(t *testing.T) {
	a := New()
	outcomes := []domain.Outcome{
		{Domain: "example.com", Success: true},
		{Domain: "example.com", Success: false},
		{Domain: "example.com", Success: true},
		{Domain: "other.net", Success: false},
	}
	for _, o := range outcomes {
		a.Record(o)
		for d, c := range a.Snapshot() {
			require.LessOrEqual(t, c.Up, c.Total, "up must never exceed total for %s", d)
		}
	}

	s := a.Snapshot()
	assert.Equal(t, Counts{Up: 2, Total: 3}, s["example.com"])
	assert.Equal(t, Counts{Up: 0, Total: 1}, s["other.net"])
}

func TestAggregator_SharedKeyMergesEndpoints(t *testing.T) {
	a := New()
	// http://svc.example.com:8080/a and https://svc.example.com/b both key
	// to svc.example.com and share one counter.
	for _, raw := range []string{"http://svc.example.com:8080/a", "https://svc.example.com/b"} {
		key, err := domain.Key(raw)
		require.NoError(t, err)
		a.Record(domain.Outcome{Domain: key, Success: true})
	}
	s := a.Snapshot()
	require.Len(t, s, 1)
	assert.Equal(t, Counts{Up: 2, Total: 2}, s["svc.example.com"])
}

func TestAggregator_EmptyDomainDropped(t *testing.T) {
	a := New()
	a.Record(domain.Outcome{Domain: "", Success: true})
	assert.Empty(t, a.Snapshot())
}

func TestAggregator_ConcurrentRecordsLoseNothing(t *testing.T) {
	a := New()
	const workers = 20
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				a.Record(domain.Outcome{Domain: "example.com", Success: i%2 == 0})
			}
		}(w)
	}
	wg.Wait()

	c := a.Snapshot()["example.com"]
	assert.Equal(t, int64(workers*perWorker), c.Total)
	assert.Equal(t, int64(workers*perWorker/2), c.Up)
}

func TestSnapshot_IsACopy(t *testing.T) {
	a := New()
	a.Record(domain.Outcome{Domain: "example.com", Success: true})

	s := a.Snapshot()
	s["example.com"] = Counts{Up: 99, Total: 99}
	s["injected.example"] = Counts{Total: 1}

	fresh := a.Snapshot()
	assert.Equal(t, Counts{Up: 1, Total: 1}, fresh["example.com"])
	assert.NotContains(t, fresh, "injected.example")
}
