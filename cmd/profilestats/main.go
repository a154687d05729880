// Command profilestats prints the number of profiles and their role breakdown.
//
//	profilestats [-config path] [-json]
//
// It reads the same configuration as the server and exits with status 1 when
// the database cannot be reached.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/talentproph/talentpro/pkg/config"
	"github.com/talentproph/talentpro/pkg/profile"
	pgrepo "github.com/talentproph/talentpro/pkg/repository/postgres"
	"github.com/talentproph/talentpro/pkg/storage/postgres"
)

const connectTimeout = 10 * time.Second

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("profilestats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	asJSON := fs.Bool("json", false, "print JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "profilestats:", err)
		return 1
	}
	if cfg.DatabaseURL == "" {
		fmt.Fprintln(stderr, "profilestats: DATABASE_URL is not set")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, 1)
	if err != nil {
		fmt.Fprintln(stderr, "profilestats:", err)
		return 1
	}
	defer pool.Close()

	st, err := profile.NewService(pgrepo.NewProfileRepository(pool)).Stats(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "profilestats:", err)
		return 1
	}
	if err := report(stdout, st, *asJSON); err != nil {
		fmt.Fprintln(stderr, "profilestats:", err)
		return 1
	}
	return 0
}

type roleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type statsReport struct {
	Total  int         `json:"total"`
	ByRole []roleCount `json:"byRole"`
}

func newStatsReport(st profile.Stats) statsReport {
	r := statsReport{Total: st.Total, ByRole: make([]roleCount, 0, len(st.ByRole))}
	for role, n := range st.ByRole {
		r.ByRole = append(r.ByRole, roleCount{Role: string(role), Count: n})
	}
	sort.Slice(r.ByRole, func(i, j int) bool { return r.ByRole[i].Role < r.ByRole[j].Role })
	return r
}

func report(w io.Writer, st profile.Stats, asJSON bool) error {
	r := newStatsReport(st)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total profiles:\t%d\n", r.Total)
	for _, rc := range r.ByRole {
		fmt.Fprintf(tw, "  %s\t%d\n", rc.Role, rc.Count)
	}
	return tw.Flush()
}
