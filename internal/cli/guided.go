package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/polycalc/internal/bench"
	"github.com/agbru/polycalc/internal/config"
	"github.com/agbru/polycalc/internal/orchestration"
	"github.com/agbru/polycalc/internal/polynomial"
	"github.com/agbru/polycalc/internal/ui"
)

// GuidedSession walks a user through a polynomial evaluation step by step.
// It is used when the program is started without an explicit input, so a
// first-time user is never dropped into a silent prompt.
type GuidedSession struct {
	factory polynomial.EvaluatorFactory
	cfg     config.AppConfig
	rng     *rand.Rand
	in      *bufio.Reader
	out     io.Writer
}

// NewGuidedSession creates a guided session reading from in and writing to
// out.
func NewGuidedSession(factory polynomial.EvaluatorFactory, cfg config.AppConfig, in io.Reader, out io.Writer) *GuidedSession {
	return &GuidedSession{
		factory: factory,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run executes the guided dialogue and returns an exit code.
// The dialogue asks for a polynomial, an evaluation point and an algorithm,
// runs the evaluation, offers to evaluate further points with the same
// polynomial, and finally offers a benchmark campaign over the chosen
// algorithms.
func (g *GuidedSession) Run(ctx context.Context) int {
	fmt.Fprintf(g.out, "\n%sWelcome to the guided polynomial evaluator.%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(g.out, "Press Enter at any prompt to accept the default.\n\n")

	coeffs, ok := g.askPolynomial()
	if !ok {
		return 0
	}

	for {
		x, ok := g.askPoint()
		if !ok {
			return 0
		}
		algo, ok := g.askAlgorithm()
		if !ok {
			return 0
		}

		if code := g.evaluate(ctx, coeffs, x, algo); code != 0 {
			return code
		}

		if !g.askYesNo("Evaluate another point with the same polynomial?") {
			if g.askYesNo("Benchmark these algorithms?") {
				g.benchmark(ctx, coeffs, x, algo)
			}
			fmt.Fprintf(g.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
			return 0
		}
	}
}

// askPolynomial prompts for coefficients, falling back to a random polynomial
// of a prompted degree when the answer is empty.
func (g *GuidedSession) askPolynomial() (polynomial.Coefficients, bool) {
	for {
		answer, ok := g.prompt(fmt.Sprintf("Coefficients, constant first (e.g., 1,-3,2) [random degree %d]: ", g.cfg.Degree))
		if !ok {
			return nil, false
		}
		if answer == "" {
			degree := g.askDegree()
			coeffs, err := polynomial.RandomCoefficients(degree, g.rng)
			if err != nil {
				fmt.Fprintf(g.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
				continue
			}
			fmt.Fprintf(g.out, "Generated: %s%s%s\n\n", ui.ColorMagenta(), coeffs, ui.ColorReset())
			return coeffs, true
		}

		coeffs, err := polynomial.ParseCoefficients(answer)
		if err != nil {
			fmt.Fprintf(g.out, "%sInvalid coefficients: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		fmt.Fprintf(g.out, "Polynomial: %s%s%s\n\n", ui.ColorMagenta(), coeffs, ui.ColorReset())
		return coeffs, true
	}
}

// askDegree prompts for the degree of a generated polynomial.
func (g *GuidedSession) askDegree() int {
	for {
		answer, ok := g.prompt(fmt.Sprintf("Degree [%d]: ", g.cfg.Degree))
		if !ok || answer == "" {
			return g.cfg.Degree
		}
		degree, err := strconv.Atoi(answer)
		if err != nil || degree < 0 {
			fmt.Fprintf(g.out, "%sInvalid degree: %s%s\n", ui.ColorRed(), answer, ui.ColorReset())
			continue
		}
		return degree
	}
}

// askPoint prompts for the evaluation point.
func (g *GuidedSession) askPoint() (float64, bool) {
	for {
		answer, ok := g.prompt(fmt.Sprintf("Evaluation point x [%g]: ", g.cfg.X))
		if !ok {
			return 0, false
		}
		if answer == "" {
			return g.cfg.X, true
		}
		x, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			fmt.Fprintf(g.out, "%sInvalid point: %s%s\n", ui.ColorRed(), answer, ui.ColorReset())
			continue
		}
		return x, true
	}
}

// askAlgorithm prompts for the algorithm key, accepting "all".
func (g *GuidedSession) askAlgorithm() (string, bool) {
	available := strings.Join(append(g.factory.List(), orchestration.AlgoAll), ", ")
	for {
		answer, ok := g.prompt(fmt.Sprintf("Algorithm (%s) [%s]: ", available, g.cfg.Algo))
		if !ok {
			return "", false
		}
		if answer == "" {
			return g.cfg.Algo, true
		}
		answer = strings.ToLower(answer)
		if answer == orchestration.AlgoAll {
			return answer, true
		}
		if _, err := g.factory.Get(answer); err != nil {
			fmt.Fprintf(g.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), answer, ui.ColorReset())
			continue
		}
		return answer, true
	}
}

// evaluate runs the chosen evaluation and presents the outcome.
func (g *GuidedSession) evaluate(ctx context.Context, coeffs polynomial.Coefficients, x float64, algo string) int {
	evaluators := orchestration.GetEvaluatorsToRun(algo, g.factory)
	if len(evaluators) == 0 {
		fmt.Fprintf(g.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), algo, ui.ColorReset())
		return 0
	}

	evalCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	results := orchestration.ExecuteEvaluations(evalCtx, evaluators, coeffs, x)

	presenter := CLIResultPresenter{}
	opts := orchestration.PresentationOptions{
		Coefficients: coeffs,
		X:            x,
		Verbose:      g.cfg.Verbose,
	}
	code := orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, g.out)
	fmt.Fprintln(g.out)
	return code
}

// benchmark runs a campaign over the session's algorithms at the session's
// degree and point. A failed campaign prints a notice and never changes the
// session's exit code.
func (g *GuidedSession) benchmark(ctx context.Context, coeffs polynomial.Coefficients, x float64, algo string) {
	evaluators := orchestration.GetEvaluatorsToRun(algo, g.factory)
	if len(evaluators) == 0 {
		return
	}

	benchCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	opts := bench.Options{
		Trials: replBenchTrials,
		Degree: coeffs.Degree(),
		X:      x,
		Seed:   g.rng.Int63(),
	}
	if err := RunBenchmark(benchCtx, evaluators, opts, g.out); err != nil {
		fmt.Fprintf(g.out, "%sBenchmarking skipped: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	}
	fmt.Fprintln(g.out)
}

// prompt prints a question and reads one trimmed answer line.
// ok is false on EOF or read failure.
func (g *GuidedSession) prompt(question string) (answer string, ok bool) {
	fmt.Fprint(g.out, ui.ColorYellow()+question+ui.ColorReset())
	line, err := g.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(g.out)
		return "", false
	}
	return strings.TrimSpace(line), true
}

// askYesNo asks a yes/no question defaulting to no.
func (g *GuidedSession) askYesNo(question string) bool {
	answer, ok := g.prompt(question + " [y/N]: ")
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
