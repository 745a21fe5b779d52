package main

import (
	"fmt"
	"time"

	"github.com/joshuapare/collkit/coll/mem"
	"github.com/joshuapare/collkit/pkg/coll"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	benchOps      int
	benchCapacity int
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchOps, "ops", 100000, "Operations per phase")
	cmd.Flags().IntVar(&benchCapacity, "capacity", 0, "Pre-reserved capacity (0 = grow on demand)")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench [backend]",
		Short: "Run timed operation workloads",
		Long: `The bench command runs insert/lookup/remove phases against one
backend (or all of them) and reports per-phase throughput plus the
allocation-hook traffic the workload generated.

Example:
  collbench bench hashmap --ops 1000000
  collbench bench --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := "all"
			if len(args) == 1 {
				backend = args[0]
			}
			return runBench(backend)
		},
	}
}

// BenchResult is one backend's workload report.
type BenchResult struct {
	Backend     string  `json:"backend"`
	Ops         int     `json:"ops"`
	InsertNsOp  float64 `json:"insert_ns_op"`
	LookupNsOp  float64 `json:"lookup_ns_op,omitempty"`
	RemoveNsOp  float64 `json:"remove_ns_op"`
	HookGrows   int     `json:"hook_grows"`
	HookShrinks int     `json:"hook_shrinks"`
	BytesApprox int     `json:"bytes_approx"`
	Valid       bool    `json:"valid"`
}

var benchBackends = []string{"hashmap", "omap", "list", "slist", "pqueue", "buffer"}

func runBench(backend string) error {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	names := benchBackends
	if backend != "all" {
		names = []string{backend}
	}

	var results []BenchResult
	for _, name := range names {
		logger.Debug("starting workload",
			zap.String("backend", name),
			zap.Int("ops", benchOps))
		res, err := benchOne(name)
		if err != nil {
			return err
		}
		logger.Info("workload complete",
			zap.String("backend", res.Backend),
			zap.Float64("insert_ns_op", res.InsertNsOp),
			zap.Float64("remove_ns_op", res.RemoveNsOp),
			zap.Int("hook_grows", res.HookGrows),
			zap.Bool("valid", res.Valid))
		results = append(results, res)
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		fmt.Printf("%-8s ops=%d insert=%.1fns lookup=%.1fns remove=%.1fns grows=%d bytes=%d valid=%v\n",
			r.Backend, r.Ops, r.InsertNsOp, r.LookupNsOp, r.RemoveNsOp,
			r.HookGrows, r.BytesApprox, r.Valid)
	}
	return nil
}

func benchOne(name string) (BenchResult, error) {
	counting := mem.NewCounting(mem.NewHeap())
	opts := &coll.Options{Capacity: benchCapacity, Hook: counting}
	n := benchOps

	res := BenchResult{Backend: name, Ops: n}
	perOp := func(d time.Duration) float64 { return float64(d.Nanoseconds()) / float64(n) }

	switch name {
	case "hashmap":
		m, err := coll.NewHashMap[int, int64](opts)
		if err != nil {
			return res, err
		}
		start := time.Now()
		for i := 0; i < n; i++ {
			m.InsertOrAssign(i, int64(i))
		}
		res.InsertNsOp = perOp(time.Since(start))
		start = time.Now()
		for i := 0; i < n; i++ {
			if m.GetKeyValue(i) == nil {
				return res, fmt.Errorf("hashmap lost key %d", i)
			}
		}
		res.LookupNsOp = perOp(time.Since(start))
		res.BytesApprox = m.Stats().BytesApprox
		start = time.Now()
		for i := 0; i < n; i++ {
			m.RemoveKeyValue(i)
		}
		res.RemoveNsOp = perOp(time.Since(start))
		res.Valid = m.Validate() && m.IsEmpty()

	case "omap":
		m, err := coll.NewOMap[int, int64](opts)
		if err != nil {
			return res, err
		}
		start := time.Now()
		for i := 0; i < n; i++ {
			m.InsertOrAssign(i, int64(i))
		}
		res.InsertNsOp = perOp(time.Since(start))
		start = time.Now()
		for i := 0; i < n; i++ {
			if m.GetKeyValue(i) == nil {
				return res, fmt.Errorf("omap lost key %d", i)
			}
		}
		res.LookupNsOp = perOp(time.Since(start))
		res.BytesApprox = m.Stats().BytesApprox
		start = time.Now()
		for i := n - 1; i >= 0; i-- {
			m.RemoveKeyValue(i)
		}
		res.RemoveNsOp = perOp(time.Since(start))
		res.Valid = m.Validate() && m.IsEmpty()

	case "list":
		l := coll.NewList[int64](opts)
		start := time.Now()
		for i := 0; i < n; i++ {
			if _, err := l.PushBack(int64(i)); err != nil {
				return res, err
			}
		}
		res.InsertNsOp = perOp(time.Since(start))
		res.BytesApprox = l.Stats().BytesApprox
		start = time.Now()
		for i := 0; i < n; i++ {
			if err := l.PopFront(); err != nil {
				return res, err
			}
		}
		res.RemoveNsOp = perOp(time.Since(start))
		res.Valid = l.Validate() && l.IsEmpty()

	case "slist":
		l := coll.NewSList[int64](opts)
		start := time.Now()
		for i := 0; i < n; i++ {
			if _, err := l.PushFront(int64(i)); err != nil {
				return res, err
			}
		}
		res.InsertNsOp = perOp(time.Since(start))
		res.BytesApprox = l.Stats().BytesApprox
		start = time.Now()
		for i := 0; i < n; i++ {
			if err := l.PopFront(); err != nil {
				return res, err
			}
		}
		res.RemoveNsOp = perOp(time.Since(start))
		res.Valid = l.Validate() && l.IsEmpty()

	case "pqueue":
		q, err := coll.NewPQueue[int64](nil, opts)
		if err != nil {
			return res, err
		}
		start := time.Now()
		for i := 0; i < n; i++ {
			// Bit-mixed priorities avoid pure append order.
			if h := q.Push(int64(i*2654435761) % 1000003); h.InsertError() {
				return res, h.Err()
			}
		}
		res.InsertNsOp = perOp(time.Since(start))
		res.BytesApprox = q.Stats().BytesApprox
		start = time.Now()
		for i := 0; i < n; i++ {
			if err := q.Pop(); err != nil {
				return res, err
			}
		}
		res.RemoveNsOp = perOp(time.Since(start))
		res.Valid = q.Validate() && q.IsEmpty()

	case "buffer":
		b, err := coll.NewBuffer[int64](opts)
		if err != nil {
			return res, err
		}
		start := time.Now()
		for i := 0; i < n; i++ {
			if h := b.InsertHandle(int64(i)); h.InsertError() {
				return res, h.Err()
			}
		}
		res.InsertNsOp = perOp(time.Since(start))
		start = time.Now()
		for i := 0; i < n; i++ {
			if b.At(i) == nil {
				return res, fmt.Errorf("buffer lost position %d", i)
			}
		}
		res.LookupNsOp = perOp(time.Since(start))
		res.BytesApprox = b.Stats().BytesApprox
		start = time.Now()
		for i := 0; i < n; i++ {
			if err := b.PopBack(); err != nil {
				return res, err
			}
		}
		res.RemoveNsOp = perOp(time.Since(start))
		res.Valid = b.Validate() && b.IsEmpty()

	default:
		return res, fmt.Errorf("unknown backend %q (want one of %v)", name, benchBackends)
	}

	res.HookGrows = counting.Grows
	res.HookShrinks = counting.Shrinks + counting.Releases
	return res, nil
}
