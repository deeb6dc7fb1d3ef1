package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisa/content-optimizer/internal/pipeline/steps"
	"github.com/marisa/content-optimizer/internal/types"
)

const competitorArticle = `<html><body>
<nav>Home About Contact</nav>
<article>
<h1>Best Running Shoes of the Year</h1>
<p>Finding the right running shoes takes research. Good running shoes balance
cushioning and stability for long marathon training blocks.</p>
<h2>Why Running Shoes Matter</h2>
<p>A quality pair of running shoes protects your joints. Cushioning absorbs
impact on every stride during marathon preparation.</p>
</article>
<footer>Copyright</footer>
</body></html>`

// newArticleServers spins up one test server per competitor slot, each
// serving the same article fixture.
func newArticleServers(t *testing.T) []string {
	t.Helper()

	urls := make([]string, 0, types.SampleSize)
	for i := 0; i < types.SampleSize; i++ {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(competitorArticle))
		}))
		t.Cleanup(srv.Close)
		urls = append(urls, srv.URL)
	}
	return urls
}

func TestRunAnalysis_ProvidedURLs(t *testing.T) {
	opts := RunOptions{
		Keyword:        "running shoes",
		CompetitorURLs: newArticleServers(t),
	}

	result, err := RunAnalysis(context.Background(), opts)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "running shoes", result.Keyword)
	assert.Len(t, result.Competitors, types.SampleSize)
	require.NotNil(t, result.Benchmarks)
	require.NotNil(t, result.Targets)

	// Identical pages collapse the spread to zero
	assert.Equal(t, 0.0, result.Benchmarks.StandardDeviations.WordCount)
	assert.Greater(t, result.Targets.TargetWordCount, 0)
	assert.Greater(t, result.Targets.TargetKeywordDensity, 0.0)
}

func TestRunAnalysis_WrongURLCount(t *testing.T) {
	opts := RunOptions{
		Keyword:        "running shoes",
		CompetitorURLs: []string{"https://example.com/only-one"},
	}

	result, err := RunAnalysis(context.Background(), opts)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "competitor URLs")
}

func TestRunAnalysis_UnreachableCompetitor(t *testing.T) {
	urls := newArticleServers(t)
	urls[2] = "http://127.0.0.1:1/unreachable"

	opts := RunOptions{
		Keyword:        "running shoes",
		CompetitorURLs: urls,
	}

	result, err := RunAnalysis(context.Background(), opts)
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "analyzing competitor")
}

func TestRunAnalysis_EmitsProgressInOrder(t *testing.T) {
	var events []ProgressEvent
	opts := RunOptions{
		Keyword:        "running shoes",
		CompetitorURLs: newArticleServers(t),
		OnProgress: func(event ProgressEvent) {
			events = append(events, event)
		},
	}

	_, err := RunAnalysis(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, events, 4)
	assert.Equal(t, steps.StepDiscoverCompetitors, events[0].Step)
	assert.Equal(t, steps.StepAnalyzePages, events[1].Step)
	assert.Equal(t, steps.StepAggregateBenchmarks, events[2].Step)
	assert.Equal(t, steps.StepDeriveTargets, events[3].Step)

	assert.Equal(t, steps.CategoryDiscovery, events[0].Category)
	assert.Equal(t, steps.CategoryAggregation, events[3].Category)
	assert.NotNil(t, events[3].Content)
}

func TestEmitProgress_NilCallback(t *testing.T) {
	opts := RunOptions{Keyword: "running shoes"}

	// Must not panic without a callback configured
	emitProgress(&opts, steps.StepDeriveTargets, steps.CategoryAggregation, "done", nil)
}
