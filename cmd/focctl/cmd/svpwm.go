package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/soypat/foc"
	"github.com/spf13/cobra"
)

// flags
var (
	svpwmMagFlag      float32
	svpwmAngleFlag    float32
	svpwmDegFlag      bool
	svpwmVdcFlag      float32
	svpwmLUTFlag      bool
	svpwmCurrentsFlag []float32
)

func init() {
	RootCmd.AddCommand(svpwmCmd)
	svpwmCmd.Flags().Float32VarP(&svpwmMagFlag, "mag", "m", 0, "voltage vector magnitude")
	svpwmCmd.Flags().Float32VarP(&svpwmAngleFlag, "angle", "a", 0, "voltage vector electrical angle, radians unless --deg")
	svpwmCmd.Flags().BoolVar(&svpwmDegFlag, "deg", false, "angle is in degrees")
	svpwmCmd.Flags().Float32Var(&svpwmVdcFlag, "vdc", 24, "DC bus voltage, overrides config")
	svpwmCmd.Flags().BoolVar(&svpwmLUTFlag, "lut", false, "use table sine, overrides config")
	svpwmCmd.Flags().Float32SliceVar(&svpwmCurrentsFlag, "currents", nil, "phase currents a,b,c for dead time compensation")
}

var svpwmCmd = &cobra.Command{
	Use:   "svpwm",
	Short: "Print SVPWM duty cycles for a voltage command",
	Run: func(cmd *cobra.Command, args []string) {
		ConfigureVerbosity()
		cfg, err := PrepareConfig(rootConfigFlag, 0, svpwmVdcFlag, svpwmLUTFlag, changedFlags(cmd))
		if err != nil {
			log.Fatal(err)
		}
		angle := svpwmAngleFlag
		if svpwmDegFlag {
			angle = foc.DtoR(angle)
		}
		if err := svpwmRun(os.Stdout, cfg, svpwmMagFlag, angle, svpwmCurrentsFlag); err != nil {
			log.Fatal(err)
		}
	},
}

func svpwmRun(w io.Writer, cfg *Config, mag, angle float32, currents []float32) error {
	var compensate bool
	var iabc foc.Vec3
	if len(currents) > 0 {
		if len(currents) != 3 {
			return fmt.Errorf("need exactly 3 phase currents, got %d", len(currents))
		}
		copy(iabc[:], currents)
		compensate = true
	}
	if limit := cfg.VoltageDC / foc.Sqrt3; mag > limit {
		log.Warningf("magnitude %g exceeds linear limit %g and will be clamped", mag, limit)
	}

	pulse := cfg.Modulator().SVPWM(mag, angle, cfg.VoltageDC)
	sector := foc.Sector(angle)
	log.Debugf("sector %d, duties %v", sector, pulse)

	header := []string{"phase", "duty"}
	final := pulse
	if compensate {
		header = append(header, "compensated")
		final = foc.CompensateDeadTime(pulse, iabc, cfg.DeadTime)
	}
	if cfg.PWMPeriod > 0 {
		header = append(header, "compare")
	}
	cmp := foc.CompareValues(final, cfg.PWMPeriod)

	fmt.Fprintf(w, "sector %d\n", sector)
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for i := range pulse {
		row := []string{foc.Phase(i).String(), fmt.Sprintf("%.5f", pulse[i])}
		if compensate {
			row = append(row, fmt.Sprintf("%.5f", final[i]))
		}
		if cfg.PWMPeriod > 0 {
			row = append(row, fmt.Sprintf("%d", cmp[i]))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}
