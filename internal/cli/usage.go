// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"beaconzone/internal/version"
)

// installUsage installs the grouped Usage() handler on fs.
func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – sensor exclusion-zone search\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [options] <report>...\n", name)
		fmt.Fprintf(out, "       %s --fetch [--year N --day N] [options]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input file            Sensor report file(s) (repeatable) or '-' for STDIN")
		fmt.Fprintf(out, "      --fetch                 Download the puzzle input when not cached [%s]\n", def("fetch"))
		fmt.Fprintf(out, "      --year int              Puzzle year for --fetch and --solutions-dir [%s]\n", def("year"))
		fmt.Fprintf(out, "      --day int               Puzzle day for --fetch and --solutions-dir [%s]\n", def("day"))
		fmt.Fprintf(out, "      --cache-dir dir         Input cache directory [%s]\n", def("cache-dir"))
		fmt.Fprintf(out, "      --session-env name      Env var holding the session cookie [%s]\n", def("session-env"))

		fmt.Fprintln(out, "\nSearch:")
		fmt.Fprintf(out, "      --part string           Which part to solve: 1 | 2 | all [%s]\n", def("part"))
		fmt.Fprintf(out, "      --row int               Row to count excluded cells on [%s]\n", def("row"))
		fmt.Fprintf(out, "      --limit int             Search square is [0,limit]² [%s]\n", def("limit"))
		fmt.Fprintf(out, "      --multiplier int        Signature = x*multiplier + y [%s]\n", def("multiplier"))
		fmt.Fprintf(out, "      --visited-cap int       Perimeter points remembered per search (0=none) [%s]\n", def("visited-cap"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --timeout duration      Abandon the run after this long (0=none) [%s]\n", def("timeout"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  Sort outputs by source [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no uncovered point is found [%s]\n", def("no-match-exit-code"))
		fmt.Fprintln(out, "      --solutions-dir dir     Also save text answers to <dir>/<year>/<day>.txt")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
