package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/digitcalc/internal/ui"
)

// setCustomUsage configures the flag set with a colored usage function.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// NO_COLOR applies before the application has picked a theme.
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()

		fmt.Fprintf(out, "\n%sdigitcalc%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Exact arithmetic on naturals, integers, rationals and polynomials.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags] <operation> <operand>...\n\n", t.Warning, t.Reset, fs.Name())
		fmt.Fprintf(out, "%sExamples:%s\n", t.Warning, t.Reset)
		fmt.Fprintf(out, "  %s nat.mul 123456789 987654321\n", fs.Name())
		fmt.Fprintf(out, "  %s int.div -7 2\n", fs.Name())
		fmt.Fprintf(out, "  %s poly.divmod \"3/1; 2/1; 1/1\" \"1/1; 1/1\"\n\n", fs.Name())
		fmt.Fprintf(out, "%sFlags:%s\n", t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := fmt.Sprintf("-%s", f.Name)
			if len(name) > 0 {
				flagSig += " " + name
			}

			fmt.Fprintf(out, "  %s%-25s%s %s", t.Primary, flagSig, t.Reset, usage)

			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintln(out)
	}
}
