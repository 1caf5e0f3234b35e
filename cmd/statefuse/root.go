package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/statefuse/statefuse/buffer"
	"github.com/statefuse/statefuse/internal/inspect"
	"github.com/statefuse/statefuse/internal/sim"
	"github.com/statefuse/statefuse/sensor"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "statefuse",
		Short: "statefuse runs a simulated multi-sensor fusion scenario",
		Long: `statefuse feeds a simulated set of sensor drivers (one IMU, two pose
sensors with delayed, out-of-order delivery) through the bounded history
buffer and dumps the resulting buffer contents for inspection.`,
		RunE: run,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.Flags().Int("size", 100, "maximum buffer size")
	rootCmd.Flags().Int("entries", 500, "IMU samples to generate")
	rootCmd.Flags().Int64("seed", 1, "random seed for the drivers")
	rootCmd.Flags().String("format", "text", "dump format: text or json")
	rootCmd.Flags().Bool("states-only", false, "dump only state-bearing entries")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	for _, name := range []string{"size", "entries", "seed", "format", "states-only", "verbose"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

func run(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	viper.AutomaticEnv()

	logger, err := initLogger(viper.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var writer inspect.Writer
	switch viper.GetString("format") {
	case "json":
		writer = inspect.NewJSONWriter(os.Stdout)
	case "text":
		writer = inspect.NewTextWriter(os.Stdout)
	default:
		return fmt.Errorf("unknown dump format %q", viper.GetString("format"))
	}

	n := viper.GetInt("entries")
	seed := viper.GetInt64("seed")

	imu := sensor.New("imu")
	pose1 := sensor.New("pose_1")
	pose2 := sensor.New("pose_2")

	cfg := &sim.Config{
		Buffer: buffer.New(viper.GetInt("size")),
		Drivers: []sim.Driver{
			sim.NewImuDriver(imu, 0.01, n, seed),
			sim.NewPoseDriver(pose1, 0.1, 0.005, n/10, 5, seed+1),
			sim.NewPoseDriver(pose2, 0.25, 0.015, n/25, 0, seed+2),
		},
		Stats:   sim.NewStats(),
		Logger:  logger,
		Writers: []inspect.Writer{writer},
	}
	if viper.GetBool("states-only") {
		cfg.Filters = inspect.NewChain(inspect.MatchAll, inspect.StatesOnly{})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := sim.Run(ctx, cfg); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cfg.Stats.Summary())
	return nil
}

func initLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
