package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tweets "github.com/willmanchac/tweetsClassifier"
)

func newClassifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <text>...",
		Short: "Classify texts with a saved model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := tweets.ModelFromDisk(a.cfg.ModelDir)
			if err != nil {
				return err
			}
			classifier := model.Classifier(tweets.WithClassifierLogger(a.logger))

			out := cmd.OutOrStdout()
			for _, text := range args {
				label, score, _ := classifier.ClassifyText(text)
				fmt.Fprintf(out, "%s\t%d\t%d\t%s\n", label, score.PositiveHits, score.NegativeHits, text)
			}
			return nil
		},
	}
	addModelDirFlag(cmd, a)
	return cmd
}
