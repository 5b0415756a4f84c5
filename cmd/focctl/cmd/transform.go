package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/soypat/foc"
	"github.com/soypat/foc/trig"
	"github.com/spf13/cobra"
)

// flags
var (
	transformPhasesFlag []float32
	transformThetaFlag  float32
	transformDegFlag    bool
	transformLUTFlag    bool
)

func init() {
	RootCmd.AddCommand(transformCmd)
	transformCmd.Flags().Float32SliceVar(&transformPhasesFlag, "abc", nil, "phase quantities a,b (balanced) or a,b,c")
	transformCmd.Flags().Float32VarP(&transformThetaFlag, "theta", "t", 0, "rotor electrical angle, radians unless --deg")
	transformCmd.Flags().BoolVar(&transformDegFlag, "deg", false, "theta is in degrees")
	transformCmd.Flags().BoolVar(&transformLUTFlag, "lut", false, "use table sine, overrides config")
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Apply Clarke and Park transforms to phase quantities",
	Run: func(cmd *cobra.Command, args []string) {
		ConfigureVerbosity()
		cfg, err := PrepareConfig(rootConfigFlag, 0, 0, transformLUTFlag, changedFlags(cmd))
		if err != nil {
			log.Fatal(err)
		}
		theta := transformThetaFlag
		if transformDegFlag {
			theta = foc.DtoR(theta)
		}
		if err := transformRun(os.Stdout, cfg, transformPhasesFlag, theta); err != nil {
			log.Fatal(err)
		}
	},
}

func clarkeFromPhases(phases []float32) (foc.AlphaBeta, error) {
	switch len(phases) {
	case 2:
		return foc.Clarke2(phases[0], phases[1]), nil
	case 3:
		return foc.ClarkeVec(foc.Vec3{phases[0], phases[1], phases[2]}), nil
	}
	return foc.AlphaBeta{}, fmt.Errorf("need 2 or 3 phase quantities, got %d", len(phases))
}

func transformRun(w io.Writer, cfg *Config, phases []float32, theta float32) error {
	ab, err := clarkeFromPhases(phases)
	if err != nil {
		return err
	}
	var sin, cos float32
	if cfg.Sine == SineLUT {
		sin, cos = trig.Sincos(theta)
	} else {
		sin, cos = math32.Sincos(theta)
	}
	dq := foc.Park(ab.Alpha, ab.Beta, sin, cos)
	back := foc.InvPark(dq.D, dq.Q, sin, cos)
	log.Debugf("inverse park residual alpha=%g beta=%g", back.Alpha-ab.Alpha, back.Beta-ab.Beta)
	mag, angle := ab.Polar()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"alpha", "beta", "d", "q", "|v|", "angle(deg)"})
	table.Append([]string{
		fmt.Sprintf("%.5f", ab.Alpha),
		fmt.Sprintf("%.5f", ab.Beta),
		fmt.Sprintf("%.5f", dq.D),
		fmt.Sprintf("%.5f", dq.Q),
		fmt.Sprintf("%.5f", mag),
		fmt.Sprintf("%.2f", foc.RtoD(angle)),
	})
	table.Render()
	return nil
}
