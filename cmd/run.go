package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/observer/app"
	"github.com/kilianp07/observer/core/eventbus"
	"github.com/kilianp07/observer/infra/logger"
)

var runDuration time.Duration

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the coordinator and print demo ticks until interrupted",
	RunE:  run,
}

func init() {
	runCmd.Flags().DurationVar(&runDuration, "duration", 0, "stop after this long (0 runs until interrupted)")
	rootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if runDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, runDuration)
		defer cancel()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New("main")
	host, err := app.New(cfg, nil, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := host.Close(); err != nil {
			log.Errorf("host close: %v", err)
		}
	}()
	if err := host.Start(); err != nil {
		return err
	}
	defer func() { _ = host.Reset() }()

	sub := eventbus.Subscribe[app.Tick](host.Registry(), 16)
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		out := cmd.OutOrStdout()
		for tk := range sub.C {
			fmt.Fprintf(out, "tick %d\t%s\n", tk.Seq, tk.At.Format(time.RFC3339Nano))
		}
	}()

	err = host.Run(ctx)
	sub.Close()
	<-printed
	if n := sub.Dropped(); n > 0 {
		log.Warnf("dropped %d ticks", n)
	}
	return err
}
