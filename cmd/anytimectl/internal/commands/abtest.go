package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nibzard/anytime/cliconfig"
	"github.com/nibzard/anytime/ndjson"
	"github.com/nibzard/anytime/recommend"
	"github.com/nibzard/anytime/spec"
	"github.com/nibzard/anytime/twosample"
)

var (
	abtestSpecPath  string
	abtestInputPath string
	abtestValueCol  string
	abtestArmCol    string
)

var abtestCmd = &cobra.Command{
	Use:   "abtest",
	Short: "two-sample confidence sequence over a numeric column and an arm column",
	RunE:  runAbtest,
}

func init() {
	abtestCmd.Flags().StringVar(&abtestSpecPath, "spec", "", "path to the YAML run spec (required)")
	abtestCmd.Flags().StringVar(&abtestInputPath, "input", "", "path to the input CSV file (required)")
	abtestCmd.Flags().StringVar(&abtestValueCol, "value-col", "value", "name of the numeric column")
	abtestCmd.Flags().StringVar(&abtestArmCol, "arm-col", "arm", "name of the arm column (values must be A or B)")
	_ = abtestCmd.MarkFlagRequired("spec")
	_ = abtestCmd.MarkFlagRequired("input")
}

func runAbtest(cmd *cobra.Command, args []string) error {
	rs, err := cliconfig.LoadRunSpec(abtestSpecPath)
	if err != nil {
		return err
	}
	ab, err := rs.BuildABSpec()
	if err != nil {
		return err
	}

	rows, err := readRows(abtestInputPath, abtestValueCol, abtestArmCol)
	if err != nil {
		return err
	}

	rec := recommend.RecommendAB(ab, nil)
	log.Info().Str("method", string(rec.Method)).Str("reason", rec.Reason).Msg("recommended method")

	cs, err := buildTwoSampleCS(rec.Method, ab)
	if err != nil {
		return err
	}

	for i, r := range rows {
		arm, err := parseArm(r.Arm)
		if err != nil {
			return err
		}
		if err := cs.Update(arm, r.Value); err != nil {
			return err
		}
		iv := cs.Interval()
		log.Debug().Int("row", i).Float64("estimate", iv.Estimate).Str("tier", iv.Tier.String()).Msg("progress")
	}

	return ndjson.EncodeInterval(os.Stdout, cs.Interval())
}

func buildTwoSampleCS(method recommend.Method, ab spec.ABSpec) (*twosample.CS, error) {
	if method == recommend.TwoSampleHoeffdingCS {
		return twosample.NewHoeffding(ab)
	}
	return twosample.NewEmpiricalBernstein(ab)
}

func parseArm(label string) (spec.Arm, error) {
	switch label {
	case "A", "a":
		return spec.ArmA, nil
	case "B", "b":
		return spec.ArmB, nil
	default:
		return 0, fmt.Errorf("unrecognized arm label %q (expected A or B)", label)
	}
}
