package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tweets "github.com/willmanchac/tweetsClassifier"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <training_file> <testing_file> <sentiment_file> <results_file> <accuracy_file>",
		Short: "Train on one file and evaluate on another",
		Long: `Trains a corpus from the training file, classifies every record in the
testing file, writes "label,id" lines to the results file, and writes
misclassifications followed by the accuracy to the accuracy file.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.trainingConfig()
			if err != nil {
				return err
			}

			paths := tweets.RunPaths{
				Training:    args[0],
				Testing:     args[1],
				Gold:        args[2],
				Predictions: args[3],
				Diagnostics: args[4],
			}
			result, err := tweets.NewPipeline(cfg).Run(paths)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "trained: %d positive, %d negative (%d discarded, %d malformed)\n",
				result.Training.Positive, result.Training.Negative,
				result.Training.Discarded, result.Training.Malformed)
			if result.Evaluated {
				report := result.Evaluation
				fmt.Fprintf(out, "accuracy: %s (%d/%d)\n",
					tweets.FormatAccuracy(report.Accuracy), report.Tally.Correct, report.Tally.Total)
				fmt.Fprintf(out, "positive: precision %.3f recall %.3f f1 %.3f\n",
					report.Positive.Precision, report.Positive.Recall, report.Positive.F1Score)
				fmt.Fprintf(out, "negative: precision %.3f recall %.3f f1 %.3f\n",
					report.Negative.Precision, report.Negative.Recall, report.Negative.F1Score)
			}
			return err
		},
	}
}
