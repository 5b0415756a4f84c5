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
	speedPolePairsFlag int
	speedRPMFlag       float32
	speedRadpsFlag     float32
)

func init() {
	RootCmd.AddCommand(speedCmd)
	speedCmd.Flags().IntVarP(&speedPolePairsFlag, "pole-pairs", "p", 4, "motor pole pairs, overrides config")
	speedCmd.Flags().Float32Var(&speedRPMFlag, "rpm", 0, "mechanical speed in rpm")
	speedCmd.Flags().Float32Var(&speedRadpsFlag, "radps", 0, "electrical angular speed in rad/s")
}

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Convert motor speed between rpm and electrical/mechanical rad/s",
	Run: func(cmd *cobra.Command, args []string) {
		ConfigureVerbosity()
		cfg, err := PrepareConfig(rootConfigFlag, speedPolePairsFlag, 0, false, changedFlags(cmd))
		if err != nil {
			log.Fatal(err)
		}
		rpmSet := cmd.Flags().Changed("rpm")
		radpsSet := cmd.Flags().Changed("radps")
		s, err := speedFromFlags(cfg.PolePairs, speedRPMFlag, rpmSet, speedRadpsFlag, radpsSet)
		if err != nil {
			log.Fatal(err)
		}
		printSpeed(os.Stdout, s)
	},
}

func speedFromFlags(polePairs int, rpm float32, rpmSet bool, radps float32, radpsSet bool) (foc.MotorSpeed, error) {
	switch {
	case rpmSet && radpsSet:
		return foc.MotorSpeed{}, fmt.Errorf("only one of --rpm and --radps may be set")
	case rpmSet:
		return foc.MotorSpeedFromRPM(polePairs, rpm), nil
	case radpsSet:
		return foc.MotorSpeedFromRadps(polePairs, radps), nil
	}
	return foc.MotorSpeed{}, fmt.Errorf("one of --rpm or --radps is required")
}

func printSpeed(w io.Writer, s foc.MotorSpeed) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"pole pairs", "rpm", "rad/s (elec)", "rad/s (mech)"})
	table.Append([]string{
		fmt.Sprintf("%d", s.PolePairs()),
		fmt.Sprintf("%.3f", s.RPM()),
		fmt.Sprintf("%.3f", s.Radps()),
		fmt.Sprintf("%.3f", s.RadpsMech()),
	})
	table.Render()
}
