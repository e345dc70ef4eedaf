package tweets

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// RunPaths names the files used by a full train-and-test run.
type RunPaths struct {
	Training    string
	Testing     string
	Gold        string
	Predictions string
	Diagnostics string
}

// RunResult carries what a Pipeline run produced.
type RunResult struct {
	Training   TrainingMetrics
	Evaluation EvaluationReport
	Corpus     *Corpus
	Evaluated  bool
}

// Pipeline trains a corpus from one file and evaluates it against another.
type Pipeline struct {
	trainer *Trainer
	logger  *slog.Logger
}

// NewPipeline creates a pipeline from a training configuration.
func NewPipeline(config TrainingConfig) *Pipeline {
	trainer := NewTrainer(config)
	return &Pipeline{trainer: trainer, logger: trainer.config.Logger}
}

// Run trains on paths.Training and evaluates on the remaining files.
//
// A training file that cannot be opened does not stop the test pass, which
// then runs against an empty corpus. Failure to open any test input or create
// any output aborts the test pass. Every file opened is closed before Run
// returns; all resource errors are joined in the returned error.
func (p *Pipeline) Run(paths RunPaths) (RunResult, error) {
	result := RunResult{Corpus: NewCorpus()}

	metrics, trainErr := p.trainer.TrainFile(paths.Training, result.Corpus)
	result.Training = metrics

	report, evalErr := p.Test(result.Corpus, paths)
	if evalErr == nil {
		result.Evaluation = report
		result.Evaluated = true
	}
	return result, errors.Join(trainErr, evalErr)
}

// Test evaluates corpus using the test, gold, predictions and diagnostics
// paths. Both inputs are opened before any output is touched, and neither
// output is truncated until both can be written, so a resource failure leaves
// the filesystem as it was.
func (p *Pipeline) Test(corpus *Corpus, paths RunPaths) (report EvaluationReport, err error) {
	var closers []*os.File
	defer func() {
		for _, f := range closers {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", f.Name(), closeErr)
			}
		}
	}()

	for _, path := range []string{paths.Testing, paths.Gold} {
		f, err := os.Open(path) // #nosec G304 -- path comes from the operator
		if err != nil {
			return p.resourceFailure(&ResourceError{Op: "open", Path: path, Err: err})
		}
		closers = append(closers, f)
	}
	tests, gold := closers[0], closers[1]

	outputs, err := createOutputs(paths.Predictions, paths.Diagnostics)
	if err != nil {
		return p.resourceFailure(err)
	}
	closers = append(closers, outputs...)
	predictions, diagnostics := outputs[0], outputs[1]

	classifier := NewClassifier(corpus,
		WithClassifierTokenizer(p.trainer.Tokenizer()),
		WithClassifierLogger(p.logger),
	)
	evaluator := NewEvaluator(classifier, p.trainer.Tokenizer(), WithEvaluatorLogger(p.logger))
	return evaluator.Evaluate(tests, gold, predictions, diagnostics)
}

func (p *Pipeline) resourceFailure(err error) (EvaluationReport, error) {
	p.logger.Error("failed to open testing, gold, or result file", slog.String("error", err.Error()))
	return EvaluationReport{}, err
}

// createOutputs opens every path for writing and truncates them only once all
// are open. On failure it closes what it opened and removes the files it
// created; files that already existed keep their content.
func createOutputs(paths ...string) ([]*os.File, error) {
	files := make([]*os.File, 0, len(paths))
	var created []string
	fail := func(err error) ([]*os.File, error) {
		for _, f := range files {
			_ = f.Close()
		}
		for _, path := range created {
			_ = os.Remove(path)
		}
		return nil, err
	}

	for _, path := range paths {
		_, statErr := os.Stat(path)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o666) // #nosec G304 -- path comes from the operator
		if err != nil {
			return fail(&ResourceError{Op: "create", Path: path, Err: err})
		}
		files = append(files, f)
		if errors.Is(statErr, fs.ErrNotExist) {
			created = append(created, path)
		}
	}
	for _, f := range files {
		if err := f.Truncate(0); err != nil {
			return fail(&ResourceError{Op: "create", Path: f.Name(), Err: err})
		}
	}
	return files, nil
}
