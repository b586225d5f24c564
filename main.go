package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wage-impact/config"
	"wage-impact/domain"
	httpLayer "wage-impact/http"
	"wage-impact/repository"
	"wage-impact/service"
)

var (
	configPath string
	outFormat  string

	homePrice         float64
	constructionShare float64
	laborShare        float64
	wagePremium       float64
	withMortgage      bool
	mortgageRate      float64
	mortgageYears     int
)

var rootCmd = &cobra.Command{
	Use:   "wage-impact",
	Short: "Prevailing-wage impact calculator for housing costs",
	Long: `wage-impact estimates how a Davis-Bacon style wage floor would change
home prices and mortgage costs under adjustable economic assumptions.
It can answer one-off questions on the command line or run as a small
HTTP service for interactive frontends.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate the impact for one set of assumptions",
	RunE:  runCalc,
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Compare the research-backed scenarios",
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(scenariosCmd)

	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")

	for _, cmd := range []*cobra.Command{calcCmd, scenariosCmd} {
		cmd.Flags().Float64Var(&homePrice, "home-price", domain.Defaults.HomePrice, "Baseline home sale price")
		cmd.Flags().Float64Var(&constructionShare, "construction-share", domain.Defaults.ConstructionCostShare, "Construction cost as a fraction of home price")
		cmd.Flags().Float64Var(&mortgageRate, "rate", domain.Defaults.MortgageRate, "Annual mortgage interest rate")
		cmd.Flags().IntVar(&mortgageYears, "years", domain.Defaults.MortgageYears, "Mortgage term in years")
		cmd.Flags().StringVar(&outFormat, "format", "table", "Output format: table, json")
	}

	calcCmd.Flags().Float64Var(&laborShare, "labor-share", domain.Defaults.LaborShare, "Labor cost as a fraction of construction cost")
	calcCmd.Flags().Float64Var(&wagePremium, "wage-premium", domain.Defaults.WagePremium, "Wage floor premium over market wages (signed fraction)")
	calcCmd.Flags().BoolVar(&withMortgage, "mortgage", false, "Include mortgage payment impacts")
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newCalculator builds a calculator for one-shot CLI use: in-memory
// persistence, no Redis.
func newCalculator() *service.CalculatorService {
	return service.NewCalculatorService(
		repository.NewCalculationRepositoryMemory(),
		repository.NewMockCache(),
	)
}

func runCalc(cmd *cobra.Command, args []string) error {
	calc := newCalculator()

	input := domain.ImpactInput{
		HomePrice:             homePrice,
		ConstructionCostShare: constructionShare,
		LaborShare:            laborShare,
		WagePremium:           wagePremium,
	}

	var (
		result domain.CalculationResult
		err    error
	)
	if withMortgage {
		result, err = calc.CalculateWithMortgage(input, domain.MortgageTerms{
			InterestRate:  mortgageRate,
			LoanTermYears: mortgageYears,
		})
	} else {
		result, err = calc.Calculate(input)
	}
	if err != nil {
		return err
	}

	if outFormat == "json" {
		return printJSON(result)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Home price\t$%.2f\n", result.HomePrice)
	fmt.Fprintf(w, "Construction cost\t$%.2f\n", result.ConstructionCost)
	fmt.Fprintf(w, "Labor cost\t$%.2f\n", result.LaborCost)
	fmt.Fprintf(w, "Wage increase\t$%.2f\n", result.WageIncrease)
	fmt.Fprintf(w, "New home price\t$%.2f\n", result.NewHomePrice)
	fmt.Fprintf(w, "Price increase\t%.3f%%\n", result.PriceIncreasePercent)
	if result.Mortgage != nil {
		fmt.Fprintf(w, "Monthly payment increase\t$%.2f\n", result.Mortgage.MonthlyPaymentIncrease)
		fmt.Fprintf(w, "Lifetime cost increase\t$%.2f\n", result.Mortgage.LifetimeCostIncrease)
	}
	return w.Flush()
}

func runScenarios(cmd *cobra.Command, args []string) error {
	calc := newCalculator()

	results, err := calc.CompareScenarios(domain.ScenarioComparisonInput{
		HomePrice:             homePrice,
		ConstructionCostShare: constructionShare,
		Mortgage: domain.MortgageTerms{
			InterestRate:  mortgageRate,
			LoanTermYears: mortgageYears,
		},
	})
	if err != nil {
		return err
	}

	if outFormat == "json" {
		return printJSON(results)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tLABOR\tPREMIUM\tINCREASE\tPCT\tMONTHLY\tLIFETIME")
	for _, sr := range results {
		fmt.Fprintf(w, "%s\t%.0f%%\t%+.0f%%\t$%.2f\t%+.3f%%\t$%.2f\t$%.2f\n",
			sr.Name,
			sr.Result.LaborShare*100,
			sr.Result.WagePremium*100,
			sr.Result.WageIncrease,
			sr.Result.PriceIncreasePercent,
			sr.Result.Mortgage.MonthlyPaymentIncrease,
			sr.Result.Mortgage.LifetimeCostIncrease,
		)
	}
	return w.Flush()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if !cfg.Log.Pretty {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	repo := repository.NewCalculationRepositoryMemory()

	var cache repository.CacheRepository = repository.NewMockCache()
	if cfg.Redis.Addr != "" {
		redisCache := repository.NewRedisCache(cfg.Redis.Addr, cfg.Redis.TTL.Std())
		if err := redisCache.Ping(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).
				Msg("redis unreachable, using in-process cache")
		} else {
			cache = redisCache
		}
	}

	calc := service.NewCalculatorService(repo, cache)
	impactHandler := httpLayer.NewImpactHandler(calc)
	referenceHandler := httpLayer.NewReferenceHandler()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(impactHandler, referenceHandler, rateLimiter)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("wage-impact API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-quit:
		log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info().Msg("server exited")
	return nil
}
