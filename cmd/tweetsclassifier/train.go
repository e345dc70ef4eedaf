package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	tweets "github.com/willmanchac/tweetsClassifier"
)

func addModelDirFlag(cmd *cobra.Command, a *app) {
	cmd.Flags().StringVar(&a.modelDir, "model-dir", "", "model directory (env MODEL_DIR)")
}

func newTrainCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train <training_file>",
		Short: "Build a corpus and save it as a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.trainingConfig()
			if err != nil {
				return err
			}

			corpus := tweets.NewCorpus()
			metrics, err := tweets.NewTrainer(cfg).TrainFile(args[0], corpus)
			if err != nil {
				return err
			}

			model := tweets.NewModel(filepath.Base(a.cfg.ModelDir), corpus, cfg.Stopwords)
			if err := model.Write(a.cfg.ModelDir); err != nil {
				return err
			}
			a.logger.Info("model saved", slog.String("dir", a.cfg.ModelDir))

			fmt.Fprintf(cmd.OutOrStdout(), "trained: %d positive, %d negative (%d discarded, %d malformed) -> %s\n",
				metrics.Positive, metrics.Negative, metrics.Discarded, metrics.Malformed, a.cfg.ModelDir)
			return nil
		},
	}
	addModelDirFlag(cmd, a)
	return cmd
}
