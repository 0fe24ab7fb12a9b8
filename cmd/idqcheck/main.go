// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command idqcheck exercises the id generators.
//
// It draws -n ids from one Snowflake generator, reports duplicates and
// ordering violations, and optionally prints the bit layout of queue ids,
// writes a JSON report and plots how many ids landed in each millisecond.
//
//	idqcheck -n 100000 -worker 3 -progress -json report.json -plot perms.png
//
// With -pipeline the ids are drawn on a separate goroutine and handed to
// the checker through a bounded ring.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"code.hybscloud.com/idq"
	"code.hybscloud.com/idq/internal/tag"
	"code.hybscloud.com/idq/snowflake"
)

type config struct {
	n          int
	datacenter int64
	worker     int64
	tags       int
	progress   bool
	pipeline   int
	jsonPath   string
	plotPath   string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.n, "n", 50000, "number of snowflake ids to generate")
	flag.Int64Var(&cfg.datacenter, "datacenter", 0, "datacenter id [0, 31]")
	flag.Int64Var(&cfg.worker, "worker", 0, "worker id [0, 31]")
	flag.IntVar(&cfg.tags, "tags", 0, "number of queue ids to print as bit strings")
	flag.BoolVar(&cfg.progress, "progress", false, "show a progress bar")
	flag.IntVar(&cfg.pipeline, "pipeline", 0, "generate on a separate goroutine through a ring of this capacity (0 disables)")
	flag.StringVar(&cfg.jsonPath, "json", "", "write a JSON report to `file`")
	flag.StringVar(&cfg.plotPath, "plot", "", "write a per-millisecond histogram to `file.png`")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}

	err = run(cfg, logger)
	if err != nil {
		logger.Error("idqcheck failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config, log *zap.Logger) error {
	if cfg.n < 0 {
		return fmt.Errorf("-n must not be negative, got %d", cfg.n)
	}
	if cfg.pipeline < 0 {
		return fmt.Errorf("-pipeline must not be negative, got %d", cfg.pipeline)
	}

	if cfg.tags > 0 {
		printTags(cfg.tags)
	}

	g, err := snowflake.New(cfg.datacenter, cfg.worker)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if cfg.progress {
		bar = progressbar.Default(int64(cfg.n), "generating")
	}
	step := func() {
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	start := time.Now()
	var ids []int64
	if cfg.pipeline > 0 {
		ids, err = generatePipelined(g, cfg.n, max(cfg.pipeline, 2), step)
	} else {
		ids, err = generate(g, cfg.n, step)
	}
	elapsed := time.Since(start)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	res := check(ids)
	res.Elapsed = elapsed.String()
	if elapsed > 0 {
		res.IDsPerSecond = float64(len(ids)) / elapsed.Seconds()
	}
	stats := g.Stats()
	res.Rollovers = stats.Rollovers
	res.Regressions = stats.Regressions

	log.Info("generated",
		zap.Int("ids", res.Generated),
		zap.Int("duplicates", res.Duplicates),
		zap.Int("out_of_order", res.OutOfOrder),
		zap.Int("milliseconds", res.Milliseconds),
		zap.Int("max_per_millisecond", res.MaxPerMilli),
		zap.Int64("rollovers", res.Rollovers),
		zap.Duration("elapsed", elapsed),
	)
	if len(ids) > 0 {
		last := snowflake.Decode(ids[len(ids)-1])
		log.Debug("last id",
			zap.Int64("id", int64(last)),
			zap.Time("time", last.Time(g.Epoch())),
			zap.Int64("datacenter", last.Datacenter()),
			zap.Int64("worker", last.Worker()),
			zap.Int64("sequence", last.Sequence()),
		)
	}

	if cfg.jsonPath != "" {
		report := Report{
			SessionTime: start.UTC().Format(time.RFC3339),
			SystemInfo:  gatherSystemInfo(),
			Datacenter:  cfg.datacenter,
			Worker:      cfg.worker,
			Result:      res,
		}
		if err := writeReport(cfg.jsonPath, report); err != nil {
			return err
		}
		log.Info("wrote report", zap.String("file", cfg.jsonPath))
	}

	if cfg.plotPath != "" {
		if err := plotPerMilli(cfg.plotPath, perMilli(ids)); err != nil {
			return err
		}
		log.Info("wrote plot", zap.String("file", cfg.plotPath))
	}

	if res.Duplicates > 0 {
		return fmt.Errorf("%d duplicate ids", res.Duplicates)
	}
	return nil
}

// printTags enqueues n elements into a fresh queue and prints each id as a
// bit string with its tick and salt halves.
func printTags(n int) {
	q := idq.NewQueue[int]()
	for i := range n {
		id := q.EnQueue(i)
		ticks, salt := tag.Split(id)
		fmt.Printf("%064b ticks=%d salt=%d\n", id, ticks, salt)
	}
}
