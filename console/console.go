// Package console implements the interactive front end: it prompts for the
// six flow inputs, substitutes the air defaults for blank answers, and
// renders the four-line report.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Andre-4949/y-plus-estimation/fluid"
	"github.com/Andre-4949/y-plus-estimation/model"
)

// GatherConditions prompts on w and reads answers from r, one value per line.
// Density and viscosity accept a blank line, which falls back to the default
// fluid (air at 20°C).
func GatherConditions(r io.Reader, w io.Writer) (model.Conditions, error) {
	in := bufio.NewScanner(r)
	air := fluid.Default()
	var cond model.Conditions
	var err error

	if cond.Length, err = askFloat(in, w, "Enter length from leading edge (m): "); err != nil {
		return cond, err
	}
	if cond.Velocity, err = askFloat(in, w, "Enter free stream velocity (m/s): "); err != nil {
		return cond, err
	}
	prompt := fmt.Sprintf("Enter fluid density (kg/m^3) [Default: %v]: ", air.Density)
	if cond.Density, err = askFloatDefault(in, w, prompt, air.Density); err != nil {
		return cond, err
	}
	prompt = fmt.Sprintf("Enter dynamic viscosity (kg/(m·s)) [Default: %v]: ", air.Viscosity)
	if cond.Viscosity, err = askFloatDefault(in, w, prompt, air.Viscosity); err != nil {
		return cond, err
	}
	if cond.YPlus, err = askFloat(in, w, "Enter target y+: "); err != nil {
		return cond, err
	}
	if cond.GrowthRate, err = askFloat(in, w, "Enter growth rate (>1): "); err != nil {
		return cond, err
	}
	return cond, nil
}

// PrintReport writes the estimation report. Wall distance and thickness are
// rounded to 6 decimals; the instruction line keeps full float precision so
// the value entered in the meshing tool matches the integer layer count.
func PrintReport(w io.Writer, res *model.Result) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Estimated Wall Distance (y+): %.6f m\n", res.WallDistance)
	fmt.Fprintf(w, "Total Boundary Layer Thickness: %.6f m\n", res.TotalThickness)
	fmt.Fprintf(w, "Number of Prism Layer Cells: %d\n", res.Layers)
	fmt.Fprintf(w, "In Star-CCM+, set the total thickness to %v meters, the number of layers to %v, and the growth rate to %v.\n",
		res.TotalThickness, res.Layers, res.GrowthRate)
	if res.Warning != "" {
		fmt.Fprintf(w, "Warning: %s\n", res.Warning)
	}
}

func askFloat(in *bufio.Scanner, w io.Writer, prompt string) (float64, error) {
	fmt.Fprint(w, prompt)
	line, err := readLine(in)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(line, 64)
}

func askFloatDefault(in *bufio.Scanner, w io.Writer, prompt string, def float64) (float64, error) {
	fmt.Fprint(w, prompt)
	line, err := readLine(in)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	return strconv.ParseFloat(line, 64)
}

func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.Text()), nil
}
