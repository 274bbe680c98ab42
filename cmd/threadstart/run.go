package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/threadstart"
	"github.com/viant/threadstart/model"
	"github.com/viant/threadstart/service/event"
)

type runOptions struct {
	configURL string
	count     int
	failEvery int
	sink      string
	timeout   time.Duration
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Spawn --count threads that bump a shared counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configURL, _ = cmd.Flags().GetString("config")
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntVarP(&opts.count, "count", "n", 100, "number of threads to spawn")
	cmd.Flags().IntVar(&opts.failEvery, "fail-every", 0, "make every n-th callback return an error (0 disables)")
	cmd.Flags().StringVar(&opts.sink, "sink", "", "error sink override: log or discard")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "how long to wait for spawned threads to report")
	return cmd
}

func run(ctx context.Context, out io.Writer, opts *runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", opts.count)
	}
	if opts.failEvery < 0 {
		return fmt.Errorf("fail-every must be >= 0, got %d", opts.failEvery)
	}
	cfg := threadstart.DefaultConfig()
	if opts.configURL != "" {
		var err error
		if cfg, err = threadstart.LoadConfig(ctx, opts.configURL); err != nil {
			return err
		}
	}
	if opts.sink != "" {
		cfg.Sink = opts.sink
	}
	// run waits on terminated events, so none may be dropped.
	cfg.Events.Enabled = true
	if minBuffer := 4 * opts.count; cfg.Events.Buffer < minBuffer {
		cfg.Events.Buffer = minBuffer
	}
	srv, err := threadstart.NewFromConfig(cfg, threadstart.WithLogWriter(os.Stderr))
	if err != nil {
		return err
	}
	defer srv.Shutdown()

	terminated := make(chan struct{}, opts.count)
	event.SetListenerOf[model.Thread](srv.Events(), func(e *event.Event[model.Thread]) {
		if e.Data.State == model.StateTerminated {
			terminated <- struct{}{}
		}
	})

	var mux sync.Mutex
	counter := 0
	started := 0
	for i := 1; i <= opts.count; i++ {
		fail := opts.failEvery > 0 && i%opts.failEvery == 0
		callback := func() error {
			mux.Lock()
			counter++
			mux.Unlock()
			if fail {
				return fmt.Errorf("callback %d failed on purpose", i)
			}
			return nil
		}
		if err := srv.ThreadStart(ctx, callback); err != nil {
			fmt.Fprintf(out, "spawn %d: %v\n", i, err)
			continue
		}
		started++
	}

	timeout := time.After(opts.timeout)
	for i := 0; i < started; i++ {
		select {
		case <-terminated:
		case <-timeout:
			return fmt.Errorf("timed out after %v waiting for %d threads", opts.timeout, started-i)
		}
	}

	snapshot := srv.Progress().Snapshot()
	mux.Lock()
	total := counter
	mux.Unlock()
	fmt.Fprintf(out, "spawned=%d finished=%d completed=%d failed=%d rejected=%d dropped=%d counter=%d\n",
		snapshot.Spawned, snapshot.Finished(), snapshot.Completed, snapshot.Failed, snapshot.Rejected,
		srv.Events().Dropped(), total)
	return nil
}
