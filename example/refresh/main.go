package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/u1and0/DiskUsageMonitor/pkg/diskmon"
)

func main() {
	offset := 9
	cfg := &diskmon.Config{
		Probe:   diskmon.ProbeConfig{Backend: "df", MountPath: "/", TimeoutSec: 5},
		Sampler: diskmon.SamplerConfig{IntervalSec: 2},
		Storage: diskmon.StorageConfig{Driver: "memory", Table: "disk_usage"},
		Window:  diskmon.WindowConfig{LimitRows: 500, VisiblePoints: 100, TimezoneOffsetHours: &offset},
		Metrics: diskmon.MetricsConfig{Addr: ":9100"},
	}

	mon, err := diskmon.NewMonitor(cfg)
	if err != nil {
		log.Fatalf("build monitor: %v", err)
	}
	if err := mon.Start(); err != nil {
		log.Fatalf("start monitor: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	var relayout diskmon.RelayoutEvent
	for tick := 0; tick < 10; tick++ {
		<-ticker.C

		if tick == 5 {
			// Pretend the user zoomed the usage axis.
			relayout = diskmon.RelayoutEvent{diskmon.RelayoutYMax: 50e9}
		}

		res, err := mon.Refresh(ctx, "RealTime", relayout)
		if err != nil {
			log.Fatalf("refresh: %v", err)
		}
		if res.Summary == nil {
			fmt.Println("no samples yet")
			continue
		}
		fmt.Printf("%s size=%s used=%s free=%s used%%=%s x=[%.0f, %.0f] y=[%.0f, %.0f]\n",
			time.Unix(res.Summary.Timestamp, 0).UTC().Format("15:04:05"),
			res.Summary.Size, res.Summary.Used, res.Summary.Free, res.Summary.UsagePct,
			res.Ranges.X.Min, res.Ranges.X.Max, res.Ranges.Y.Min, res.Ranges.Y.Max)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := mon.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
