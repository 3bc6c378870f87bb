package ds

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ion-oset/electorate-vanadium-core/api/common"
	"github.com/ion-oset/electorate-vanadium-core/cmd/util"
)

var (
	perfCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for vanadium servers",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix        = "__test"
	perfLargeValueSizeKB = 100
	perfNumThreads       = 10
	perfKeySpread        = 100
	perfSkip             = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	perfCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. upsert,lookup)"))
	key = "threads"
	perfCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "large-value-size"
	perfCmd.Flags().Int(key, 1000, util.WrapString("How large the value for the upsert-large test should be (in KB)"))
	key = "keys"
	perfCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
	key = "csv"
	perfCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfLargeValueSizeKB = viper.GetInt("large-value-size")
	perfKeySpread = viper.GetInt("keys")
	perfNumThreads = viper.GetInt("threads")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for vanadium servers")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(util.GetClientConfig().String())
	fmt.Printf("Dataset: %s\n", dataset())
	fmt.Printf("Threads: %d\n", perfNumThreads)
	fmt.Println()

	fmt.Println("starting tests...")

	// Create results map
	results := make(map[string]testing.BenchmarkResult)

	upsertResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("upsert") {
			return
		}

		// prepare keys
		getKey, iter := getKeys("upsert")

		// cleanup
		b.Cleanup(func() {
			iter(removeKey("upsert"))
		})

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				if _, err := dataClient.Upsert(dataset(), getKey(counter), []byte("test")); err != nil {
					log.Printf("(upsert) - error storing key: %v\n", err)
				}
				counter++
			}
		})
	})

	results["upsert"] = upsertResult
	printResult("upsert", upsertResult)

	upsertLargeResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("upsert-large") {
			return
		}

		// prepare large value
		largeValue := make([]byte, perfLargeValueSizeKB*1024)

		// prepare keys
		getKey, iter := getKeys("upsert-large")

		// cleanup
		b.Cleanup(func() {
			iter(removeKey("upsert-large"))
		})

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				if _, err := dataClient.Upsert(dataset(), getKey(counter), largeValue); err != nil {
					log.Printf("(upsert-large) - error storing key: %v\n", err)
				}
				counter++
			}
		})
	})

	results["upsert-large"] = upsertLargeResult
	printResult("upsert-large", upsertLargeResult)

	lookupResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("lookup") {
			return
		}

		// prepare keys
		getKey, iter := getKeys("lookup")

		// seed keys
		seedKeys("lookup", iter)

		// cleanup
		b.Cleanup(func() {
			iter(removeKey("lookup"))
		})

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				_, _, err := dataClient.Lookup(dataset(), getKey(counter))
				if err != nil {
					log.Printf("(lookup) - error reading key: %v\n", err)
				}
				counter++
			}
		})
	})

	results["lookup"] = lookupResult
	printResult("lookup", lookupResult)

	lookupMissResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("lookup-miss") {
			return
		}

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				key := fmt.Sprintf("%s/lookup-miss-%d", perfKeyPrefix, counter%100)
				_, _, err := dataClient.Lookup(dataset(), key) // found=false expected
				if err != nil {
					log.Printf("(lookup-miss) - error reading key: %v\n", err)
				}
				counter++
			}
		})
	})

	results["lookup-miss"] = lookupMissResult
	printResult("lookup-miss", lookupMissResult)

	removeResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("remove") {
			return
		}

		// prepare keys
		getKey, iter := getKeys("remove")

		// seed keys
		seedKeys("remove", iter)

		// cleanup
		b.Cleanup(func() {
			iter(removeKey("remove"))
		})

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				_, _, err := dataClient.Remove(dataset(), getKey(counter))
				if err != nil {
					log.Printf("(remove) - error removing key: %v\n", err)
				}
				counter++
			}
		})
	})

	results["remove"] = removeResult
	printResult("remove", removeResult)

	mixedUsageResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("mixed") {
			return
		}

		// prepare keys
		getKey, iter := getKeys("mixed")

		// seed keys
		seedKeys("mixed", iter)

		// cleanup
		b.Cleanup(func() {
			iter(removeKey("mixed"))
		})

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				key := getKey(counter)
				var err error
				switch counter % 4 {
				case 0: // upsert
					_, err = dataClient.Upsert(dataset(), key, []byte("test"))
				case 1: // lookup
					_, _, err = dataClient.Lookup(dataset(), key)
				case 2: // remove
					_, _, err = dataClient.Remove(dataset(), key)
				case 3: // insert
					_, _, err = dataClient.Insert(dataset(), key, []byte("test"))
				}

				if err != nil {
					log.Printf("(mixed) - error performing operation (%d): %v\n", counter%4, err)
				}
				counter++
			}
		})
	})

	results["mixed"] = mixedUsageResult
	printResult("mixed", mixedUsageResult)

	// Write results to csv is specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results, util.GetClientConfig()); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == skip {
			return true
		}
	}
	return false
}

// creates an array of test keys and functions to work with them
func getKeys(prefix string) (func(int) string, func(func(string))) {
	keys := make([]string, perfKeySpread)
	for i := 0; i < perfKeySpread; i++ {
		keys[i] = fmt.Sprintf("%s-%s-%d", perfKeyPrefix, prefix, i)
	}

	// Function to get a key by index (with wraparound)
	getKey := func(i int) string {
		return keys[i%perfKeySpread]
	}

	// Function to iterate over all keys and apply a function to each
	iterateKeys := func(fn func(string)) {
		for _, key := range keys {
			fn(key)
		}
	}

	return getKey, iterateKeys
}

// seedKeys stores a small value under every benchmark key
func seedKeys(test string, iter func(func(string))) {
	iter(func(k string) {
		if _, err := dataClient.Upsert(dataset(), k, []byte("test")); err != nil {
			log.Printf("(%s) - error storing key: %v\n", test, err)
		}
	})
}

// removeKey returns a cleanup function that deletes one benchmark key
func removeKey(test string) func(string) {
	return func(k string) {
		if _, _, err := dataClient.Remove(dataset(), k); err != nil {
			log.Printf("(%s) - error removing key: %v\n", test, err)
		}
	}
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, result testing.BenchmarkResult) {
	if result.NsPerOp() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	// Print the formatted result
	fmt.Printf("%-20s%.0fns/op (%s/op)\t%.0f ops/sec\n", test, nsPerOp, time.Duration(nsPerOp), opsPerSec)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results map[string]testing.BenchmarkResult, config *common.ClientConfig) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Test", "NsPerOp", "DurationPerOp", "OpsPerSec", "Skipped",
		"Endpoints", "TimeoutSec", "RetryCount", "ConnectionsPerEndpoint",
		"Dataset", "Codec",
		"Threads", "LargeValueSizeKB", "Keys Count",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write test results
	for test, result := range results {
		var nsPerOp float64
		var opsPerSec float64
		var skipped string

		if result.NsPerOp() == 0 {
			skipped = "true"
			nsPerOp = 0
			opsPerSec = 0
		} else {
			skipped = "false"
			nsPerOp = math.Max(float64(result.NsPerOp()), 1)
			opsPerSec = 1.0 / (nsPerOp / 1e9)
		}

		row := []string{
			test,
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", opsPerSec),
			skipped,
			strings.Join(config.Endpoints, ";"),
			strconv.Itoa(config.TimeoutSecond),
			strconv.Itoa(config.RetryCount),
			strconv.Itoa(config.ConnectionsPerEndpoint),
			dataset(),
			viper.GetString("codec"),
			strconv.Itoa(perfNumThreads),
			strconv.Itoa(perfLargeValueSizeKB),
			strconv.Itoa(perfKeySpread),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s: %v", test, err)
		}
	}

	return nil
}
