package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/loan-cob-lock/internal/domain/batch"
	"github.com/amirhossein-jamali/loan-cob-lock/internal/infrastructure/adapter/api/dto"
)

// StepResult contains metrics for a single step execution
type StepResult struct {
	ExecutionID  string
	Assigned     int
	WriteCount   int
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// RunStats contains aggregated run statistics
type RunStats struct {
	Executions    int
	Successful    int
	Failed        int
	LoansAssigned int
	LocksWritten  int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	firstLoanID := flag.Int64("from", 1, "First loan ID of the range to lock")
	loanCount := flag.Int("loans", 10000, "Number of loans in the range")
	chunkSize := flag.Int("chunk", 500, "Loans assigned to one step execution")
	concurrency := flag.Int("c", 4, "Number of concurrent step executions")
	businessDate := flag.String("date", "", "COB date to close, YYYY-MM-DD (server default when empty)")
	delayMs := flag.Int("delay", 0, "Delay between step executions of one worker in milliseconds")
	flag.Parse()

	loanIDs := make([]int64, *loanCount)
	for i := range loanIDs {
		loanIDs[i] = *firstLoanID + int64(i)
	}

	chunks, err := batch.Partition(loanIDs, *chunkSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid chunk size: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Locking %d loans in %d step executions of up to %d loans\n", len(loanIDs), len(chunks), *chunkSize)
	fmt.Printf("Concurrency: %d workers\n", *concurrency)

	jobs := make(chan []int64, len(chunks))
	results := make(chan StepResult, len(chunks))

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *businessDate, *delayMs, jobs, results)
		}()
	}

	for _, chunk := range chunks {
		jobs <- chunk
	}
	close(jobs)

	startTime := time.Now()
	go func() {
		wg.Wait()
		close(results)
	}()

	stats := &RunStats{ErrorCounts: make(map[string]int)}
	for result := range results {
		stats.Executions++
		stats.LoansAssigned += result.Assigned
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		if result.Error != nil {
			stats.Failed++
			stats.ErrorCounts[result.Error.Error()]++
			continue
		}
		stats.Successful++
		stats.LocksWritten += result.WriteCount
	}
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

func worker(baseURL, businessDate string, delayMs int, jobs <-chan []int64, results chan<- StepResult) {
	client := &http.Client{
		Timeout: 60 * time.Second,
	}
	apiURL := baseURL + "/v1/cob/steps/apply-loan-lock"

	for chunk := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		result := StepResult{ExecutionID: uuid.NewString(), Assigned: len(chunk)}
		payload, err := json.Marshal(dto.ApplyLoanLockRequest{
			ExecutionID:  result.ExecutionID,
			LoanIDs:      chunk,
			BusinessDate: businessDate,
		})
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		startTime := time.Now()
		resp, err := client.Post(apiURL, "application/json", bytes.NewReader(payload))
		result.ResponseTime = time.Since(startTime)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		if resp.StatusCode == http.StatusOK {
			var body dto.ApplyLoanLockResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				result.Error = fmt.Errorf("decode response: %w", err)
			} else {
				result.WriteCount = body.WriteCount
			}
		} else {
			var body dto.ErrorResponse
			_ = json.NewDecoder(resp.Body).Decode(&body)
			result.Error = fmt.Errorf("HTTP %d (code %d)", resp.StatusCode, body.Code)
		}
		_ = resp.Body.Close()

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[min(len(sorted)*p/100, len(sorted)-1)]
}

func printResults(stats *RunStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= RUN RESULTS =================")
	fmt.Printf("Step executions:     %d\n", stats.Executions)
	fmt.Printf("Successful:          %d\n", stats.Successful)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Loans assigned:      %d\n", stats.LoansAssigned)
	fmt.Printf("Locks written:       %d\n", stats.LocksWritten)
	fmt.Printf("Total time:          %.2f seconds\n", stats.TotalTime.Seconds())
	if stats.TotalTime > 0 {
		fmt.Printf("Loans per second:    %.1f\n", float64(stats.LoansAssigned)/stats.TotalTime.Seconds())
	}

	fmt.Println("\n----------------- STEP LATENCY -----------------")
	fmt.Printf("Average:             %v\n", avg)
	fmt.Printf("P50:                 %v\n", percentile(sorted, 50))
	fmt.Printf("P90:                 %v\n", percentile(sorted, 90))
	fmt.Printf("P99:                 %v\n", percentile(sorted, 99))
	if len(sorted) > 0 {
		fmt.Printf("Maximum:             %v\n", sorted[len(sorted)-1])
	}

	if stats.Failed > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
