package stage

import (
	"context"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"shape-selector/internal/logging"
	"shape-selector/internal/selector"
	"shape-selector/internal/shape"
	"shape-selector/internal/vision"
)

// Outcome is a resolved stage.
type Outcome struct {
	Index       int                  `json:"index"`
	Answer      string               `json:"answer"`
	Instruction selector.Instruction `json:"instruction"`
	Results     []shape.Result       `json:"results"`
	Candidates  []selector.Candidate `json:"-"`
}

// Runner classifies a stage's candidates concurrently and selects one.
type Runner struct {
	classifier *vision.Classifier
	workers    int
}

// NewRunner creates a Runner. workers <= 0 means runtime.NumCPU().
func NewRunner(c *vision.Classifier, workers int) *Runner {
	if c == nil {
		c = vision.NewClassifier(vision.DefaultParams())
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{classifier: c, workers: workers}
}

// Solve classifies every candidate, waits for all of them, and returns the
// selected index. Cancelling ctx before every candidate is scheduled stops
// scheduling and returns ctx's error; a classification already running
// completes. An outcome whose candidates all finished is always returned.
func (r *Runner) Solve(ctx context.Context, st Stage) (Outcome, error) {
	log := logging.New("stage")

	out := Outcome{
		Instruction: selector.ParseInstruction(st.Instruction),
		Results:     make([]shape.Result, len(st.Shapes)),
		Candidates:  make([]selector.Candidate, len(st.Shapes)),
	}

	var stopped error
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, s := range st.Shapes {
		if stopped = gctx.Err(); stopped != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out.Results[i], out.Candidates[i] = r.classify(s)
			log.Debug("classified candidate",
				"index", i,
				"type", out.Results[i].Type,
				"color", out.Results[i].Color,
				"area", out.Candidates[i].Area())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}
	if stopped != nil {
		return Outcome{}, stopped
	}

	out.Index = max(out.Instruction.Choose(out.Candidates), 0)
	out.Answer = strconv.Itoa(out.Index)

	log.Debug("stage resolved",
		"instruction", st.Instruction,
		"shape", out.Instruction.Shape,
		"color", out.Instruction.Color,
		"prefer_smallest", out.Instruction.PreferSmallest,
		"candidates", len(st.Shapes),
		"answer", out.Answer)
	return out, nil
}

// classify resolves one candidate. A precomputed result without a measured
// area takes its size from the input's dimensions; a candidate with neither
// image nor result is an unknown placeholder of zero area.
func (r *Runner) classify(s ShapeInput) (shape.Result, selector.Candidate) {
	switch {
	case s.Result != nil:
		c := selector.FromResult(*s.Result)
		if s.Result.Area == 0 {
			c.Dims = s.Dimensions
		}
		return *s.Result, c
	case s.payload() != nil:
		res := r.classifier.Classify(s.payload())
		return res, selector.FromResult(res)
	default:
		res := shape.Empty()
		return res, selector.FromResult(res)
	}
}
