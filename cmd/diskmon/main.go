package main

import (
	"bufio"
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/u1and0/DiskUsageMonitor"
)

//go:embed assets/banner_color.ansi
var bannerColor string

//go:embed assets/banner_plain.txt
var bannerPlain string

func main() {
	fmt.Print(selectBanner())
	fmt.Println()
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "run":
		err = runCommand(os.Args[2:])
	case "validate":
		err = validateCommand(os.Args[2:])
	case "status":
		err = statusCommand(os.Args[2:])
	case "stats":
		err = statsCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("diskmon %s: %v", cmd, err)
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "./data/config.yaml", "Path to monitor configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mon, err := diskmon.Conf(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mon.Run(ctx)
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./data/config.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := diskmon.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good ✅\n", *cfgPath)
	return nil
}

func statusCommand(args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	backend := fs.String("backend", "df", "Probe backend (df or statfs)")
	mount := fs.String("mount", "/", "Mount path to inspect")
	timeout := fs.Duration("timeout", 5*time.Second, "Probe timeout")
	offset := fs.Duration("offset", 9*time.Hour, "Timezone offset applied to the timestamp")
	if err := fs.Parse(args); err != nil {
		return err
	}

	prober, err := diskmon.NewProber(*backend, *mount, *timeout)
	if err != nil {
		return err
	}

	sample, err := prober.Probe(context.Background())
	if err != nil {
		return err
	}
	sum := diskmon.Summarize(sample.Shift(*offset))

	fmt.Printf("Disk usage for %s (via %s)\n", *mount, prober.Name())
	fmt.Printf("  date   %s\n", time.Unix(sum.Timestamp, 0).UTC().Format("2006-01-02 15:04:05"))
	fmt.Printf("  size   %s\n", sum.Size)
	fmt.Printf("  used   %s\n", sum.Used)
	fmt.Printf("  free   %s\n", sum.Free)
	fmt.Printf("  used%%  %s\n", sum.UsagePct)
	return nil
}

func selectBanner() string {
	if os.Getenv("NO_COLOR") != "" {
		return bannerPlain
	}
	return bannerColor
}

func statsCommand(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	url := fs.String("url", "http://localhost:9100/metrics", "Prometheus metrics endpoint")
	interval := fs.Duration("interval", 2*time.Second, "Refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	fmt.Printf("Streaming metrics from %s (Ctrl+C to stop)\n", *url)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := printMetricsSnapshot(*url); err != nil {
				fmt.Fprintf(os.Stderr, "stats error: %v\n", err)
			}
		}
	}
}

func printMetricsSnapshot(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	targets := map[string]float64{
		"diskmon_samples_recorded_total": 0,
		"diskmon_probe_failures_total":   0,
		"diskmon_disk_used_bytes":        0,
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for key := range targets {
			if strings.HasPrefix(line, key+" ") {
				var value float64
				if _, err := fmt.Sscanf(line, key+" %f", &value); err == nil {
					targets[key] = value
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("[%s] samples=%f probe_failures=%f used=%s\n",
		time.Now().Format(time.RFC3339),
		targets["diskmon_samples_recorded_total"],
		targets["diskmon_probe_failures_total"],
		diskmon.FormatMagnitude(targets["diskmon_disk_used_bytes"]),
	)
	return nil
}

func printUsage() {
	fmt.Printf(`Disk Usage Monitor CLI

Usage:
  diskmon <command> [flags]

Commands:
  run        Start the sampling pipeline using the provided config (default)
  validate   Load and validate a config file without starting the pipeline
  status     Probe a mount once and print a usage summary
  stats      Poll the Prometheus metrics endpoint and print live counters

Examples:
  diskmon run -config ./data/config.yaml
  diskmon validate -config ./data/config.yaml
  diskmon status -mount / -backend df
  diskmon stats -url http://localhost:9100/metrics -interval 1s
`)
}
