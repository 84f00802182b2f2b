// Command udpsend loads a CSV file and relays every non-blank row, one at a
// time, as a UDP datagram through the Dispatcher API.
//
//	udpsend --host 10.0.0.5 --file rows.csv
//
// Press Ctrl-C once to stop after the in-flight packet, twice to abort.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkglog"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/pkg/pkguid"
	"github.com/Ahmer-qarhami/qarhami-udp-tester/internal/sequencer"
	"github.com/spf13/pflag"
)

// Set at build time with -ldflags "-X main.defaultHost=... -X main.defaultAPIBase=...".
var (
	defaultHost    string
	defaultAPIBase string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func resolveDefault(buildValue, envKey, fallback string) string {
	if buildValue != "" {
		return buildValue
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}

func run(args []string) int {
	pkglog.Setup(os.Stderr)

	flags := pflag.NewFlagSet("udpsend", pflag.ContinueOnError)
	host := flags.String("host", resolveDefault(defaultHost, "UDP_SERVER_HOST", "localhost"), "host that receives the datagrams")
	api := flags.String("api", resolveDefault(defaultAPIBase, "API_BASE_URL", sequencer.DefaultAPIBase), "base URL of the send-packet API")
	file := flags.StringP("file", "f", "", "CSV file to send (or pass it as the first argument)")
	timeout := flags.Duration("timeout", 30*time.Second, "timeout for each send-packet request")
	logLevel := flags.String("log-level", "warn", "log level written to stderr")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if !pkglog.SetLevel(*logLevel) {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", *logLevel)
		return 2
	}

	path := *file
	if path == "" && flags.NArg() > 0 {
		path = flags.Arg(0)
	}

	var ids pkguid.NumberID
	if sf, err := pkguid.NewSnowflake(); err != nil {
		slog.Warn("snowflake unavailable, using counter ids", "error", err)
		ids = pkguid.NewCounter()
	} else {
		ids = sf
	}

	bus := sequencer.NewBus(64)
	seq := sequencer.New(sequencer.Dependency{
		Dispatcher: sequencer.NewHTTPDispatcher(*api, &http.Client{Timeout: *timeout}),
		Observer:   bus,
		ID:         ids,
		Host:       *host,
	})

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}
		_, err = seq.LoadCSV(f)
		f.Close()

		fmt.Fprintln(os.Stderr, seq.Snapshot().Display())
		if err != nil {
			return 1
		}
	}

	runID := pkguid.NewUUID().Generate()
	ctx, cancel := context.WithCancel(pkglog.WithCorrelationID(context.Background(), runID))
	defer cancel()

	if err := seq.Start(ctx); err != nil {
		if errors.Is(err, sequencer.ErrNoRows) {
			fmt.Fprintln(os.Stderr, seq.Snapshot().Display())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	fmt.Fprintf(os.Stderr, "%s (%s -> %s, run %s)\n", seq.Snapshot().Display(), *api, *host, runID)

	rendered := make(chan struct{})
	go func() {
		defer close(rendered)
		render(os.Stdout, bus.Subscribe())
	}()

	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		<-sigs
		if seq.Stop() {
			fmt.Fprintln(os.Stderr, "Stopping after the current packet, press Ctrl-C again to abort")
		}
		<-sigs
		fmt.Fprintln(os.Stderr, "Aborted")
		os.Exit(130)
	}()

	<-seq.Done()
	bus.Close()
	<-rendered

	fmt.Fprintln(os.Stderr, seq.Snapshot().Display())
	return 0
}
