// primemark factors integers, tests primality, enumerates primes and
// benchmarks memo backends for the factorization cache.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tstromberg/primemark/internal/config"
	"github.com/tstromberg/primemark/prime"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "primemark",
	Short: "Prime factorization, primality and range enumeration",
	Long: `primemark factors machine-word integers, tests primality, enumerates
primes in bounded ranges and benchmarks memo backends for the factor cache.

Settings are read from a YAML file (--config) and PRIMEMARK_* environment
variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		logger, err = cfg.NewLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("config loaded",
			zap.String("path", cfgPath),
			zap.Uint64("max_span", cfg.Limits.MaxSpan),
			zap.Int("cache_capacity", cfg.Limits.CacheCapacity))
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync() //nolint:errcheck // stderr sync fails on some terminals
	},
}

var factorCmd = &cobra.Command{
	Use:   "factor N...",
	Short: "Print the prime factorization of each N",
	Example: `  primemark factor 360
  360 = [2, 2, 2, 3, 3, 5]
        2^3 × 3^2 × 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFactor,
}

var isPrimeCmd = &cobra.Command{
	Use:   "isprime N...",
	Short: "Report whether each N is prime",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIsPrime,
}

var primesCmd = &cobra.Command{
	Use:   "primes FROM THROUGH",
	Short: "List the primes in [FROM, THROUGH]",
	Long: `List the primes in [FROM, THROUGH]. FROM must be at least 1 and the
range may not be wider than limits.max_span. With --first, primes are
generated lazily and generation stops after K of them, so the span is not
limited.`,
	Args: cobra.ExactArgs(2),
	RunE: runPrimes,
}

var divisorsCmd = &cobra.Command{
	Use:   "divisors N",
	Short: "List every positive divisor of N",
	Args:  cobra.ExactArgs(1),
	RunE:  runDivisors,
}

var batchCmd = &cobra.Command{
	Use:   "batch N...",
	Short: "Factor many inputs concurrently through the shared factor cache",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the primemark config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to --config",
	Long: `Write the effective configuration (defaults, then the existing file, then
PRIMEMARK_* overrides) to the --config path so it can be edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Save(cfgPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgPath)
		return nil
	},
}

var firstK int

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "primemark.yaml", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	primesCmd.Flags().IntVar(&firstK, "first", 0, "stop after the first K primes (0 = all)")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(factorCmd, isPrimeCmd, primesCmd, divisorsCmd, batchCmd, benchCmd, configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func runFactor(cmd *cobra.Command, args []string) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, n := range nums {
		factors, err := prime.FactorizeContext(cmd.Context(), n)
		if err != nil {
			return err
		}
		prefix := fmt.Sprintf("%d = ", n)
		fmt.Fprintf(out, "%s%s\n", prefix, simpleArray(factors))
		fmt.Fprintf(out, "%*s%s\n", len(prefix), "", factorizationString(factors))
	}
	return nil
}

func runIsPrime(cmd *cobra.Command, args []string) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	for _, n := range nums {
		verdict := "is not prime"
		if prime.IsPrime(n) {
			verdict = "is prime"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", n, verdict)
	}
	return nil
}

func runPrimes(cmd *cobra.Command, args []string) error {
	bounds, err := parseInts(args)
	if err != nil {
		return err
	}
	from, through := bounds[0], bounds[1]

	if firstK <= 0 {
		primes, err := prime.PrimesInRange(from, through, cfg.RangeOptions()...)
		if err != nil {
			return err
		}
		logger.Debug("enumerated range", zap.Int64("from", from), zap.Int64("through", through), zap.Int("count", len(primes)))
		fmt.Fprintln(cmd.OutOrStdout(), simpleArray(primes))
		return nil
	}

	seq, err := prime.NewSequence(from, through)
	if err != nil {
		return err
	}
	primes := make([]int64, 0, firstK)
	for p := range seq.All() {
		primes = append(primes, p)
		if len(primes) == firstK {
			break
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), simpleArray(primes))
	return nil
}

func runDivisors(cmd *cobra.Command, args []string) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	divisors, err := prime.Divisors(nums[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), simpleArray(divisors))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}

	c := prime.NewCache[int64](cfg.Limits.CacheCapacity)
	results, err := prime.FactorizeAll(cmd.Context(), nums,
		prime.WithWorkers[int64](cfg.Limits.BatchWorkers),
		prime.WithCache(c))
	if err != nil {
		return err
	}

	keys := make([]int64, 0, len(results))
	for n := range results {
		keys = append(keys, n)
	}
	slices.Sort(keys)

	out := cmd.OutOrStdout()
	for _, n := range keys {
		fmt.Fprintf(out, "%d = %s\n", n, simpleArray(results[n]))
	}

	stats := c.Stats()
	logger.Debug("batch complete",
		zap.Int("inputs", len(nums)),
		zap.Int("distinct", len(keys)),
		zap.Uint64("cache_hits", stats.Hits),
		zap.Uint64("cache_misses", stats.Misses),
		zap.Uint64("cache_flushes", stats.Flushes))
	return nil
}
