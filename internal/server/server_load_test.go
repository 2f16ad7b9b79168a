package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/agbru/digitcalc/pkg/models"
)

// TestConcurrentEvaluations fires many mixed requests at a live listener
// and checks each answer against its own operands.
func TestConcurrentEvaluations(t *testing.T) {
	if testing.Short() {
		t.Skip("load test skipped in short mode")
	}
	s := createTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	const workers = 16
	const perWorker = 25

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			client := ts.Client()
			for i := 0; i < perWorker; i++ {
				a, b := w*1000+i, i+1
				body := fmt.Sprintf(`{"op":"nat.add","args":["%d","%d"]}`, a, b)
				resp, err := client.Post(ts.URL+"/evaluate", "application/json", strings.NewReader(body))
				if err != nil {
					errs <- err
					continue
				}
				var ev models.Evaluation
				decodeErr := json.NewDecoder(resp.Body).Decode(&ev)
				resp.Body.Close()
				if decodeErr != nil {
					errs <- decodeErr
					continue
				}
				if resp.StatusCode != http.StatusOK || ev.Result != fmt.Sprint(a+b) {
					errs <- fmt.Errorf("%d + %d: status %d result %q", a, b, resp.StatusCode, ev.Result)
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestRateLimitedUnderLoad(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerWindow: 5})
	t.Cleanup(rl.Stop)
	s := createTestServer(t, WithRateLimiter(rl))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	var (
		mu      sync.Mutex
		limited int
		wg      sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := ts.Client().Get(ts.URL + "/health")
			if err != nil {
				t.Error(err)
				return
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests {
				mu.Lock()
				limited++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if limited != 15 {
		t.Errorf("limited = %d, want 15", limited)
	}
}
