package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"runtime"
	"sort"
	"sync"
	"time"
)

// 用户中心注册/登录压测工具
// 每个worker循环执行：注册新账号 -> 登录 -> 携带token访问profile
// 结束后输出延迟分布与吞吐统计

type result struct {
	op      string
	latency time.Duration
	ok      bool
}

type apiResponse struct {
	Code int    `json:"code"`
	Data struct {
		AccessToken string `json:"access_token"`
	} `json:"data"`
}

var (
	baseURL     = flag.String("url", "http://localhost:8080", "服务地址")
	workers     = flag.Int("c", 8, "并发worker数")
	iterations  = flag.Int("n", 50, "每个worker的迭代次数")
	showSysStat = flag.Bool("sys", false, "压测期间打印运行时统计")
)

func main() {
	flag.Parse()

	fmt.Printf("压测目标: %s  并发: %d  每worker迭代: %d\n", *baseURL, *workers, *iterations)

	client := &http.Client{Timeout: 10 * time.Second}
	results := make(chan result, (*workers)*(*iterations)*3)

	stop := make(chan struct{})
	if *showSysStat {
		go printRuntimeStats(stop)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(client, workerID, results)
		}(w)
	}
	wg.Wait()
	close(stop)
	close(results)
	elapsed := time.Since(start)

	report(results, elapsed)
}

func runWorker(client *http.Client, workerID int, results chan<- result) {
	for i := 0; i < *iterations; i++ {
		email := fmt.Sprintf("bench-%d-%d-%d@example.com", workerID, i, time.Now().UnixNano())

		// 注册
		regBody, _ := json.Marshal(map[string]string{
			"email":    email,
			"password": "bench-password",
			"nickname": fmt.Sprintf("bench-%d", workerID),
		})
		if !doPost(client, "/api/v1/users/register", regBody, "register", results) {
			continue
		}

		// 登录
		loginBody, _ := json.Marshal(map[string]string{
			"email":    email,
			"password": "bench-password",
		})
		t0 := time.Now()
		resp, err := client.Post(*baseURL+"/api/v1/users/login", "application/json", bytes.NewReader(loginBody))
		if err != nil {
			results <- result{op: "login", latency: time.Since(t0)}
			continue
		}
		var parsed apiResponse
		_ = json.NewDecoder(resp.Body).Decode(&parsed)
		resp.Body.Close()
		ok := resp.StatusCode == http.StatusOK && parsed.Code == 0 && parsed.Data.AccessToken != ""
		results <- result{op: "login", latency: time.Since(t0), ok: ok}
		if !ok {
			continue
		}

		// 访问profile
		t1 := time.Now()
		req, _ := http.NewRequest(http.MethodGet, *baseURL+"/api/v1/users/profile", nil)
		req.Header.Set("Authorization", "Bearer "+parsed.Data.AccessToken)
		profResp, err := client.Do(req)
		if err != nil {
			results <- result{op: "profile", latency: time.Since(t1)}
			continue
		}
		profResp.Body.Close()
		results <- result{op: "profile", latency: time.Since(t1), ok: profResp.StatusCode == http.StatusOK}
	}
}

func doPost(client *http.Client, path string, body []byte, op string, results chan<- result) bool {
	t0 := time.Now()
	resp, err := client.Post(*baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		results <- result{op: op, latency: time.Since(t0)}
		return false
	}
	var parsed apiResponse
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	resp.Body.Close()
	ok := resp.StatusCode == http.StatusOK && parsed.Code == 0
	results <- result{op: op, latency: time.Since(t0), ok: ok}
	return ok
}

func printRuntimeStats(stop <-chan struct{}) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			fmt.Printf("[%s] 内存: %.1fMB | Goroutines: %d\n",
				time.Now().Format("15:04:05"),
				float64(m.Alloc)/1024/1024,
				runtime.NumGoroutine(),
			)
		case <-stop:
			return
		}
	}
}

func report(results <-chan result, elapsed time.Duration) {
	byOp := make(map[string][]time.Duration)
	okCount := make(map[string]int)
	total := 0
	for r := range results {
		total++
		byOp[r.op] = append(byOp[r.op], r.latency)
		if r.ok {
			okCount[r.op]++
		}
	}

	fmt.Printf("\n===== 压测报告 =====\n")
	fmt.Printf("总请求数: %d  总耗时: %s  吞吐: %.1f req/s\n",
		total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())

	ops := make([]string, 0, len(byOp))
	for op := range byOp {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	for _, op := range ops {
		lats := byOp[op]
		sort.Slice(lats, func(i, j int) bool { return lats[i] < lats[j] })
		var sum time.Duration
		for _, l := range lats {
			sum += l
		}
		fmt.Printf("%-10s 次数: %-6d 成功: %-6d 平均: %-10s P50: %-10s P95: %-10s 最大: %s\n",
			op, len(lats), okCount[op],
			(sum / time.Duration(len(lats))).Round(time.Microsecond),
			percentile(lats, 0.50).Round(time.Microsecond),
			percentile(lats, 0.95).Round(time.Microsecond),
			lats[len(lats)-1].Round(time.Microsecond),
		)
	}
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)-1) * p)
	return sorted[idx]
}
