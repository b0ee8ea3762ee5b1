package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/banachtech/vasicek/api"
	"github.com/banachtech/vasicek/backtest"
	"github.com/banachtech/vasicek/data"
	db "github.com/banachtech/vasicek/db/sqlc"
	"github.com/banachtech/vasicek/mainfuncs"
	"github.com/banachtech/vasicek/mc"
	"github.com/banachtech/vasicek/util"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var config util.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "vasicek",
	Short:         "Vasicek short rate model: calibration, pricing, simulation and backtests",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		var err error
		config, err = util.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")

	for _, c := range []*cobra.Command{calibrateCmd, backtestCmd} {
		c.Flags().String("csv", "", "read rates from a date,rate CSV file")
		c.Flags().Bool("percent", false, "CSV rates are quoted in percent")
		c.Flags().String("series", "", "read rates of this series from the database")
		c.Flags().String("from", "", "first date (YYYY-MM-DD)")
		c.Flags().String("to", "", "last date (YYYY-MM-DD)")
		c.Flags().Float64("dt", 0, "time step in years (default from config)")
		c.Flags().Bool("calendar", false, "derive the time step from the NYSE calendar")
		c.Flags().Int("window", 0, "rolling calibration window")
		c.Flags().Bool("progress", false, "show a progress bar")
	}
	backtestCmd.Flags().String("market", "", "date,price CSV of market bond prices")
	backtestCmd.Flags().Float64("maturity", 0, "bond maturity in years (default from config)")
	backtestCmd.Flags().Float64("threshold", 0, "relative mispricing threshold (default from config)")
	backtestCmd.Flags().Float64("capital", 0, "initial capital (default from config)")
	backtestCmd.Flags().Bool("rows", false, "include daily rows")

	for _, c := range []*cobra.Command{curveCmd, simulateCmd, arbitrageCmd} {
		c.Flags().StringP("scenario", "s", "", "scenario YAML file")
		_ = c.MarkFlagRequired("scenario")
	}
	arbitrageCmd.Flags().Float64("threshold", 0, "yield spread threshold (default from config)")

	fetchCmd.Flags().String("series", "", "FRED series id (default from config)")
	fetchCmd.Flags().String("from", "", "first date (YYYY-MM-DD)")
	fetchCmd.Flags().String("to", "", "last date (YYYY-MM-DD)")
	fetchCmd.Flags().StringP("out", "o", "", "write CSV to this file, - for stdout")
	fetchCmd.Flags().Bool("store", false, "upsert into the database")
	fetchCmd.Flags().Bool("info", false, "print the series metadata instead of downloading it")
	fetchCmd.Flags().Bool("update", false, "only fetch dates after the latest stored one (implies --store)")

	rootCmd.AddCommand(calibrateCmd, curveCmd, simulateCmd, arbitrageCmd, backtestCmd, fetchCmd, serveCmd)
}

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Fit the model to a short rate series",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSeries(cmd)
		if err != nil {
			return err
		}
		window, _ := cmd.Flags().GetInt("window")
		progress, _ := cmd.Flags().GetBool("progress")
		dt, err := timeStep(cmd, s)
		if err != nil {
			return err
		}
		return mainfuncs.Calibrate(cmd.Context(), cmd.OutOrStdout(), s, dt, window,
			data.RollingOptions{Workers: config.Model.Workers, Progress: progress})
	},
}

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Price the yield curve of a scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario(cmd)
		if err != nil {
			return err
		}
		return mainfuncs.Curve(cmd.OutOrStdout(), sc)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate short rate paths of a scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario(cmd)
		if err != nil {
			return err
		}
		return mainfuncs.Simulate(cmd.OutOrStdout(), sc, config.Model)
	},
}

var arbitrageCmd = &cobra.Command{
	Use:   "arbitrage",
	Short: "Flag market yields that deviate from the model curve",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario(cmd)
		if err != nil {
			return err
		}
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		if threshold == 0 {
			threshold = config.Model.Threshold
		}
		return mainfuncs.Arbitrage(cmd.OutOrStdout(), sc, threshold)
	},
}

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Backtest the mispricing strategy against market bond prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		rates, err := loadSeries(cmd)
		if err != nil {
			return err
		}
		marketPath, _ := cmd.Flags().GetString("market")
		if marketPath == "" {
			return fmt.Errorf("--market is required")
		}
		market, err := readCSV(marketPath, false)
		if err != nil {
			return err
		}

		dt, err := timeStep(cmd, rates)
		if err != nil {
			return err
		}
		opts := mainfuncs.BacktestOptions{
			Window:   config.Backtest.Window,
			Dt:       dt,
			Maturity: config.Backtest.Maturity,
			Workers:  config.Model.Workers,
			Config:   backtest.Config{Threshold: config.Backtest.Threshold, Capital: config.Backtest.Capital},
		}
		if w, _ := cmd.Flags().GetInt("window"); w > 0 {
			opts.Window = w
		}
		if m, _ := cmd.Flags().GetFloat64("maturity"); m > 0 {
			opts.Maturity = m
		}
		if th, _ := cmd.Flags().GetFloat64("threshold"); th > 0 {
			opts.Config.Threshold = th
		}
		if c, _ := cmd.Flags().GetFloat64("capital"); c > 0 {
			opts.Config.Capital = c
		}
		opts.Progress, _ = cmd.Flags().GetBool("progress")
		opts.Rows, _ = cmd.Flags().GetBool("rows")
		return mainfuncs.Backtest(cmd.Context(), cmd.OutOrStdout(), rates, market, opts)
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a short rate series from FRED",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := dateRange(cmd)
		if err != nil {
			return err
		}
		series, _ := cmd.Flags().GetString("series")
		if series == "" {
			series = config.Fred.Series
		}
		client, err := data.NewFredClient(config.Fred.APIKey, config.Fred.RPS)
		if err != nil {
			return err
		}

		if info, _ := cmd.Flags().GetBool("info"); info {
			return mainfuncs.Info(cmd.Context(), cmd.OutOrStdout(), client, series)
		}

		update, _ := cmd.Flags().GetBool("update")
		var store db.Store
		if ok, _ := cmd.Flags().GetBool("store"); ok || update {
			conn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()
			store = db.NewStore(conn)
		}
		if update {
			n, err := data.Update(cmd.Context(), client, store, series, from)
			if err != nil {
				return err
			}
			log.Printf("stored %d new rows of %s", n, series)
			return nil
		}

		out := cmd.OutOrStdout()
		switch path, _ := cmd.Flags().GetString("out"); path {
		case "-":
		case "":
			if store != nil {
				out = nil
			}
		default:
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return mainfuncs.Fetch(cmd.Context(), client, series, from, to, store, out)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		if config.Server.GinMode != "" {
			gin.SetMode(config.Server.GinMode)
		}
		server := api.NewServer(config, db.NewStore(conn))
		log.Printf("listening on %s", config.Server.Address)
		return server.Start(config.Server.Address)
	},
}

func connect(ctx context.Context) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	conn, err := db.Connect(ctx, config.DB.Driver, config.DB.Source)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to db: %w", err)
	}
	return conn, nil
}

func scenario(cmd *cobra.Command) (mainfuncs.Scenario, error) {
	path, _ := cmd.Flags().GetString("scenario")
	return mainfuncs.LoadScenario(path)
}

func timeStep(cmd *cobra.Command, s *data.Series) (float64, error) {
	if dt, _ := cmd.Flags().GetFloat64("dt"); dt > 0 {
		return dt, nil
	}
	if ok, _ := cmd.Flags().GetBool("calendar"); ok {
		return mainfuncs.CalendarDt(s)
	}
	if config.Model.Dt > 0 {
		return config.Model.Dt, nil
	}
	return mc.DefaultDt, nil
}

func dateRange(cmd *cobra.Command) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if s, _ := cmd.Flags().GetString("from"); s != "" {
		if from, err = time.Parse(data.Layout, s); err != nil {
			return from, to, err
		}
	}
	if s, _ := cmd.Flags().GetString("to"); s != "" {
		if to, err = time.Parse(data.Layout, s); err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

func readCSV(path string, percent bool) (*data.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return data.ReadCSV(f, data.CSVOptions{Percent: percent})
}

// loadSeries reads rates from --csv or, with --series, from the database.
func loadSeries(cmd *cobra.Command) (*data.Series, error) {
	from, to, err := dateRange(cmd)
	if err != nil {
		return nil, err
	}
	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		percent, _ := cmd.Flags().GetBool("percent")
		s, err := readCSV(path, percent)
		if err != nil {
			return nil, err
		}
		return s.Between(from, to)
	}

	series, _ := cmd.Flags().GetString("series")
	if series == "" {
		return nil, fmt.Errorf("one of --csv or --series is required")
	}
	conn, err := connect(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return db.NewStore(conn).GetSeries(cmd.Context(), series, from, to)
}
