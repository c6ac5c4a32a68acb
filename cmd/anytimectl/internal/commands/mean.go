package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nibzard/anytime/bernoulli"
	"github.com/nibzard/anytime/cliconfig"
	"github.com/nibzard/anytime/ebernstein"
	"github.com/nibzard/anytime/hoeffding"
	"github.com/nibzard/anytime/ndjson"
	"github.com/nibzard/anytime/onesample"
	"github.com/nibzard/anytime/recommend"
	"github.com/nibzard/anytime/spec"
)

var (
	meanSpecPath  string
	meanInputPath string
	meanValueCol  string
)

var meanCmd = &cobra.Command{
	Use:   "mean",
	Short: "one-sample confidence sequence over a numeric CSV column",
	RunE:  runMean,
}

func init() {
	meanCmd.Flags().StringVar(&meanSpecPath, "spec", "", "path to the YAML run spec (required)")
	meanCmd.Flags().StringVar(&meanInputPath, "input", "", "path to the input CSV file (required)")
	meanCmd.Flags().StringVar(&meanValueCol, "value-col", "value", "name of the numeric column")
	_ = meanCmd.MarkFlagRequired("spec")
	_ = meanCmd.MarkFlagRequired("input")
}

func runMean(cmd *cobra.Command, args []string) error {
	rs, err := cliconfig.LoadRunSpec(meanSpecPath)
	if err != nil {
		return err
	}
	sp, err := rs.BuildStreamSpec()
	if err != nil {
		return err
	}

	rows, err := readRows(meanInputPath, meanValueCol, "")
	if err != nil {
		return err
	}

	rec := recommend.RecommendCS(sp, nil)
	log.Info().Str("method", string(rec.Method)).Str("reason", rec.Reason).Msg("recommended method")

	cs, err := buildOneSampleCS(rec.Method, sp)
	if err != nil {
		return err
	}

	for i, r := range rows {
		if err := cs.Update(r.Value); err != nil {
			return err
		}
		iv := cs.Interval()
		log.Debug().Int("row", i).Float64("estimate", iv.Estimate).Str("tier", iv.Tier.String()).Msg("progress")
	}

	return ndjson.EncodeInterval(os.Stdout, cs.Interval())
}

func buildOneSampleCS(method recommend.Method, sp spec.StreamSpec) (onesample.CS, error) {
	switch method {
	case recommend.BernoulliMixtureCS:
		return bernoulli.New(sp)
	case recommend.HoeffdingCS:
		return hoeffding.New(sp)
	default:
		return ebernstein.New(sp)
	}
}
