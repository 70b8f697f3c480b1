package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18080"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numUsers     = 100
	numPosts     = 200
)

var feedModes = []string{"all", "following"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

var postIDs struct {
	sync.Mutex
	ids []string
}

func main() {
	fmt.Println("=== SocialNino Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Users: %d | Seed posts: %d\n\n", numUsers, numPosts)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Seed posts
	fmt.Println("\n--- Phase 1: Seeding posts (POST /posts) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doCreatePost(rng)
	})

	// Phase 2: Mixed read/write load
	fmt.Println("\n--- Phase 2: Mixed load (40% write, 60% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.15:
			return doCreatePost(rng)
		case r < 0.30:
			return doToggleLike(rng)
		case r < 0.40:
			return doSubmitScore(rng)
		case r < 0.70:
			return doGetFeed(rng)
		case r < 0.85:
			return doGetRanking()
		default:
			return doGetPoints(rng)
		}
	})

	// Phase 3: Read-heavy load
	fmt.Println("\n--- Phase 3: Read-heavy load (10% write, 90% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.05:
			return doCreatePost(rng)
		case r < 0.10:
			return doToggleLike(rng)
		case r < 0.55:
			return doGetFeed(rng)
		case r < 0.80:
			return doGetRanking()
		default:
			return doGetPoints(rng)
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func username(rng *rand.Rand) string {
	return fmt.Sprintf("user_%d", rng.Intn(numUsers))
}

func rememberPost(id string) {
	postIDs.Lock()
	if len(postIDs.ids) < numPosts {
		postIDs.ids = append(postIDs.ids, id)
	}
	postIDs.Unlock()
}

func randomPost(rng *rand.Rand) string {
	postIDs.Lock()
	defer postIDs.Unlock()
	if len(postIDs.ids) == 0 {
		return ""
	}
	return postIDs.ids[rng.Intn(len(postIDs.ids))]
}

func doCreatePost(rng *rand.Rand) result {
	user := username(rng)
	body := map[string]interface{}{
		"author":  map[string]interface{}{"id": user, "username": user},
		"caption": fmt.Sprintf("post %d", rng.Intn(100000)),
		"media": map[string]interface{}{
			"kind":   "image",
			"source": fmt.Sprintf("https://picsum.photos/seed/%d/600", rng.Intn(1000)),
		},
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/posts?user="+user, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /posts", 0, lat, true}
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()
	if created.ID != "" {
		rememberPost(created.ID)
	}
	return result{"POST /posts", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doToggleLike(rng *rand.Rand) result {
	id := randomPost(rng)
	if id == "" {
		return doCreatePost(rng)
	}
	data, _ := json.Marshal(map[string]string{"postId": id})
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/posts/like?user="+username(rng), "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /posts/like", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /posts/like", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doSubmitScore(rng *rand.Rand) result {
	data, _ := json.Marshal(map[string]interface{}{
		"score": rng.Intn(1000),
		"game":  "challenge",
	})
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/ranking/submit?user="+username(rng), "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /ranking/submit", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /ranking/submit", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetFeed(rng *rand.Rand) result {
	mode := feedModes[rng.Intn(len(feedModes))]
	url := fmt.Sprintf("%s/feed?mode=%s&user=%s", baseURL, mode, username(rng))
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /feed", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /feed", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetRanking() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/ranking")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /ranking", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /ranking", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetPoints(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/points?user=%s", baseURL, username(rng))
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /points", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /points", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
