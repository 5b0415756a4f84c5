package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/soypat/foc"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// flags
var (
	sweepMagFlag   float32
	sweepStepsFlag int
	sweepVdcFlag   float32
	sweepLUTFlag   bool
	sweepPlotFlag  string
)

func init() {
	RootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().Float32VarP(&sweepMagFlag, "mag", "m", 0, "voltage vector magnitude")
	sweepCmd.Flags().IntVarP(&sweepStepsFlag, "steps", "n", 37, "number of angles in one electrical revolution, endpoints included")
	sweepCmd.Flags().Float32Var(&sweepVdcFlag, "vdc", 24, "DC bus voltage, overrides config")
	sweepCmd.Flags().BoolVar(&sweepLUTFlag, "lut", false, "use table sine, overrides config")
	sweepCmd.Flags().StringVarP(&sweepPlotFlag, "plot", "p", "", "write duty cycle plot to this png/svg/pdf file instead of printing a table")
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the voltage angle over one electrical revolution",
	Run: func(cmd *cobra.Command, args []string) {
		ConfigureVerbosity()
		cfg, err := PrepareConfig(rootConfigFlag, 0, sweepVdcFlag, sweepLUTFlag, changedFlags(cmd))
		if err != nil {
			log.Fatal(err)
		}
		angles, duties, err := sweepDuties(cfg.Modulator(), sweepMagFlag, cfg.VoltageDC, sweepStepsFlag)
		if err != nil {
			log.Fatal(err)
		}
		log.Debugf("peak duty %g over %d angles", peakDuty(duties), len(angles))
		if sweepPlotFlag != "" {
			if err := writeSweepPlot(sweepPlotFlag, sweepMagFlag, angles, duties); err != nil {
				log.Fatal(err)
			}
			log.Infof("wrote %s", sweepPlotFlag)
			return
		}
		printSweep(os.Stdout, angles, duties)
	},
}

// sweepDuties evaluates m at steps evenly spaced angles in [0, 2π].
func sweepDuties(m foc.Modulator, mag, vdc float32, steps int) ([]float64, []foc.Vec3, error) {
	if steps < 2 {
		return nil, nil, fmt.Errorf("steps must be at least 2, got %d", steps)
	}
	angles := floats.Span(make([]float64, steps), 0, foc.TwoPi)
	duties := make([]foc.Vec3, steps)
	for i, a := range angles {
		duties[i] = m.SVPWM(mag, float32(a), vdc)
	}
	return angles, duties, nil
}

func printSweep(w io.Writer, angles []float64, duties []foc.Vec3) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"angle(deg)", "sector", "a", "b", "c"})
	for i, a := range angles {
		d := duties[i]
		table.Append([]string{
			fmt.Sprintf("%.1f", foc.RtoD(float32(a))),
			fmt.Sprintf("%d", foc.Sector(float32(a))),
			fmt.Sprintf("%.5f", d[0]),
			fmt.Sprintf("%.5f", d[1]),
			fmt.Sprintf("%.5f", d[2]),
		})
	}
	table.Render()
}

func writeSweepPlot(path string, mag float32, angles []float64, duties []foc.Vec3) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("SVPWM duty cycles, |v|=%g", mag)
	p.X.Label.Text = "electrical angle (deg)"
	p.Y.Label.Text = "duty"
	p.Y.Min = 0
	p.Y.Max = 1
	for phase := foc.PhaseA; phase <= foc.PhaseC; phase++ {
		xys := make(plotter.XYs, len(angles))
		for i, a := range angles {
			xys[i].X = float64(foc.RtoD(float32(a)))
			xys[i].Y = float64(duties[i].At(phase))
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plotting phase %s: %w", phase, err)
		}
		line.Color = plotutil.Color(int(phase))
		p.Add(line)
		p.Legend.Add(phase.String(), line)
	}
	p.Add(plotter.NewGrid())
	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

// peakDuty returns the largest duty of any phase in duties.
func peakDuty(duties []foc.Vec3) float32 {
	var peak float32
	for _, d := range duties {
		peak = math32.Max(peak, math32.Max(d[0], math32.Max(d[1], d[2])))
	}
	return peak
}
