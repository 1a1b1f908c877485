// Command tagtree-bench times tree construction and rendering across a set
// of workload profiles and reports latency percentiles, throughput, and
// allocation figures, optionally as JSON.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/tagtree-dev/tagtree/internal/fixture"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

const (
	contextSections   = 40
	contextParagraphs = 6
	lazyCount         = 200
	tableRows         = 10000
	tableCols         = 20
)

// profile is one benchmark workload. Setup builds any state shared across
// iterations and returns the function timed per iteration, which reports the
// size of the markup it produced.
type profile struct {
	name       string
	iterations int
	setup      func(r *render.Renderer) func() (int, error)
}

func newProfiles() []profile {
	return []profile{
		{
			name:       "build-small",
			iterations: 80,
			setup: func(r *render.Renderer) func() (int, error) {
				return func() (int, error) {
					markup, err := fixture.SmallDocument().Render(r)
					return len(markup), err
				}
			},
		},
		{
			name:       "build-large",
			iterations: 200,
			setup: func(r *render.Renderer) func() (int, error) {
				tree := fixture.Tree(5, 4, true)
				return func() (int, error) {
					markup, err := r.RenderToString(tree)
					return len(markup), err
				}
			},
		},
		{
			name:       "context",
			iterations: 60,
			setup: func(r *render.Renderer) func() (int, error) {
				return func() (int, error) {
					markup, err := r.RenderToString(fixture.ContextHeavy(contextSections, contextParagraphs))
					return len(markup), err
				}
			},
		},
		{
			name:       "lazy",
			iterations: 80,
			setup: func(r *render.Renderer) func() (int, error) {
				return func() (int, error) {
					markup, err := r.RenderToString(fixture.Lazy(lazyCount))
					return len(markup), err
				}
			},
		},
		{
			name:       "table-append",
			iterations: 1,
			setup: func(r *render.Renderer) func() (int, error) {
				return func() (int, error) {
					markup, err := r.RenderToString(fixture.Table(tableRows, tableCols))
					return len(markup), err
				}
			},
		},
		{
			name:       "table-scoped",
			iterations: 1,
			setup: func(r *render.Renderer) func() (int, error) {
				return func() (int, error) {
					markup, err := r.RenderToString(fixture.TableScoped(tableRows, tableCols))
					return len(markup), err
				}
			},
		},
	}
}

type benchConfig struct {
	Profiles   []string
	Iterations int
	Repeats    int
	Pretty     bool
	JSONOutput string
}

func main() {
	log.SetFlags(0)

	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	renderer := render.NewRenderer(render.Config{Pretty: cfg.Pretty, IndentWidth: 2})

	selected, err := selectProfiles(cfg.Profiles)
	if err != nil {
		log.Fatal(err)
	}

	if hasTableProfile(cfg.Profiles) {
		if err := checkTableEquivalence(renderer); err != nil {
			log.Fatalf("table equivalence: %v", err)
		}
	}

	results := make([]profileResult, 0, len(selected))
	for _, p := range selected {
		result, err := runProfile(p, cfg, renderer)
		if err != nil {
			log.Fatal(err)
		}
		results = append(results, result)
	}

	report := buildReport(cfg, results)

	writeSummary(os.Stderr, report)
	if cfg.JSONOutput != "" {
		if err := writeJSON(cfg.JSONOutput, report); err != nil {
			log.Fatalf("write json: %v", err)
		}
	}
}

func parseConfig() (benchConfig, error) {
	profileFlag := flag.String("profile", "all", "profile: all|build-small|build-large|context|lazy|table")
	iterationsFlag := flag.Int("iterations", 0, "override per-profile iteration counts (0 keeps defaults)")
	repeatsFlag := flag.Int("repeats", 5, "timed repeats per profile")
	prettyFlag := flag.Bool("pretty", false, "benchmark indented output")
	jsonFlag := flag.String("json", "", "JSON report path ('-' for stdout)")
	flag.Parse()

	name := strings.ToLower(strings.TrimSpace(*profileFlag))
	profiles, err := resolveProfileNames(name)
	if err != nil {
		return benchConfig{}, err
	}

	cfg := benchConfig{
		Profiles:   profiles,
		Iterations: *iterationsFlag,
		Repeats:    *repeatsFlag,
		Pretty:     *prettyFlag,
		JSONOutput: strings.TrimSpace(*jsonFlag),
	}

	if cfg.Iterations < 0 {
		return benchConfig{}, errors.New("-iterations must be >= 0")
	}
	if cfg.Repeats <= 0 {
		return benchConfig{}, errors.New("-repeats must be > 0")
	}

	return cfg, nil
}

func resolveProfileNames(name string) ([]string, error) {
	switch name {
	case "", "all":
		return []string{"build-small", "build-large", "context", "lazy", "table-append", "table-scoped"}, nil
	case "table":
		return []string{"table-append", "table-scoped"}, nil
	case "build-small", "build-large", "context", "lazy", "table-append", "table-scoped":
		return []string{name}, nil
	default:
		return nil, fmt.Errorf("unknown profile %q", name)
	}
}

func selectProfiles(names []string) ([]profile, error) {
	byName := make(map[string]profile)
	for _, p := range newProfiles() {
		byName[p.name] = p
	}

	selected := make([]profile, 0, len(names))
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", name)
		}
		selected = append(selected, p)
	}
	return selected, nil
}

func hasTableProfile(names []string) bool {
	for _, name := range names {
		if strings.HasPrefix(name, "table-") {
			return true
		}
	}
	return false
}

// checkTableEquivalence verifies that scoped construction produces the same
// markup as explicit appends before any table numbers are trusted.
func checkTableEquivalence(r *render.Renderer) error {
	appended, err := r.RenderToString(fixture.Table(100, tableCols))
	if err != nil {
		return err
	}
	scoped, err := r.RenderToString(fixture.TableScoped(100, tableCols))
	if err != nil {
		return err
	}
	if appended != scoped {
		return errors.New("scoped build does not match appended build")
	}
	return nil
}

func runProfile(p profile, cfg benchConfig, renderer *render.Renderer) (profileResult, error) {
	iterations := p.iterations
	if cfg.Iterations > 0 {
		iterations = cfg.Iterations
	}

	run := p.setup(renderer)

	// Warm up once outside the timed window.
	bytes, err := run()
	if err != nil {
		return profileResult{}, fmt.Errorf("%s: %w", p.name, err)
	}

	samples := make([]time.Duration, 0, cfg.Repeats)

	var before runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	for r := 0; r < cfg.Repeats; r++ {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			if _, err := run(); err != nil {
				return profileResult{}, fmt.Errorf("%s: %w", p.name, err)
			}
		}
		samples = append(samples, time.Since(start)/time.Duration(iterations))
	}

	var after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&after)

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	var total time.Duration
	for _, s := range samples {
		total += s
	}
	mean := total / time.Duration(len(samples))

	result := profileResult{
		Name:           p.name,
		Iterations:     iterations,
		Repeats:        cfg.Repeats,
		MeanMS:         ms(mean),
		P50MS:          ms(percentile(samples, 0.50)),
		MinMS:          ms(samples[0]),
		MaxMS:          ms(samples[len(samples)-1]),
		BytesPerRender: bytes,
		AllocMB:        float64(after.TotalAlloc-before.TotalAlloc) / (1024 * 1024),
		NumGC:          after.NumGC - before.NumGC,
	}
	if mean > 0 {
		result.RendersPerSec = float64(time.Second) / float64(mean)
	}
	return result, nil
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	idx := int(math.Ceil(float64(len(sorted))*p)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

type benchReport struct {
	Version string          `json:"version"`
	Run     runInfo         `json:"run"`
	Config  configInfo      `json:"config"`
	Results []profileResult `json:"results"`
}

type runInfo struct {
	Timestamp string `json:"timestamp"`
	Go        string `json:"go"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPUCount  int    `json:"cpu_count"`
}

type configInfo struct {
	Profiles   []string `json:"profiles"`
	Iterations int      `json:"iterations,omitempty"`
	Repeats    int      `json:"repeats"`
	Pretty     bool     `json:"pretty"`
}

type profileResult struct {
	Name           string  `json:"name"`
	Iterations     int     `json:"iterations"`
	Repeats        int     `json:"repeats"`
	MeanMS         float64 `json:"mean_ms"`
	P50MS          float64 `json:"p50_ms"`
	MinMS          float64 `json:"min_ms"`
	MaxMS          float64 `json:"max_ms"`
	RendersPerSec  float64 `json:"renders_per_sec"`
	BytesPerRender int     `json:"bytes_per_render"`
	AllocMB        float64 `json:"alloc_mb"`
	NumGC          uint32  `json:"num_gc"`
}

func buildReport(cfg benchConfig, results []profileResult) benchReport {
	return benchReport{
		Version: "1",
		Run: runInfo{
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			Go:        runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			CPUCount:  runtime.NumCPU(),
		},
		Config: configInfo{
			Profiles:   cfg.Profiles,
			Iterations: cfg.Iterations,
			Repeats:    cfg.Repeats,
			Pretty:     cfg.Pretty,
		},
		Results: results,
	}
}

func writeSummary(w io.Writer, report benchReport) {
	fmt.Fprintln(w, "=== tagtree render benchmark ===")
	fmt.Fprintf(w, "Go: %s  CPUs: %d  Pretty: %v  Repeats: %d\n",
		report.Run.Go, report.Run.CPUCount, report.Config.Pretty, report.Config.Repeats)
	fmt.Fprintln(w)

	header := fmt.Sprintf("%-16s %8s %10s %10s %10s %14s %12s",
		"profile", "iters", "mean_ms", "p50_ms", "min_ms", "renders/s", "bytes")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))
	for _, r := range report.Results {
		fmt.Fprintf(w, "%-16s %8d %10.3f %10.3f %10.3f %14.1f %12d\n",
			r.Name, r.Iterations, r.MeanMS, r.P50MS, r.MinMS, r.RendersPerSec, r.BytesPerRender)
	}
	fmt.Fprintln(w)

	var allocMB float64
	var numGC uint32
	for _, r := range report.Results {
		allocMB += r.AllocMB
		numGC += r.NumGC
	}
	fmt.Fprintf(w, "Allocated: %.2f MB across %d GC cycles\n", allocMB, numGC)
}

func writeJSON(path string, report benchReport) error {
	var out io.Writer
	if path == "-" {
		out = os.Stdout
	} else {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
