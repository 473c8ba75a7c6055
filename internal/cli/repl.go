package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/polycalc/internal/bench"
	"github.com/agbru/polycalc/internal/orchestration"
	"github.com/agbru/polycalc/internal/polynomial"
	"github.com/agbru/polycalc/internal/ui"
)

// replBenchTrials is the trial count used by the REPL bench command when the
// user does not give one.
const replBenchTrials = 1000

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the default algorithm used for evaluations.
	DefaultAlgo string
	// Timeout is the maximum duration for each evaluation.
	Timeout time.Duration
	// Verbose enables full-precision result display.
	Verbose bool
}

// REPL represents an interactive polynomial evaluation session.
type REPL struct {
	config      REPLConfig
	factory     polynomial.EvaluatorFactory
	coeffs      polynomial.Coefficients
	currentAlgo string
	rng         *rand.Rand
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - factory: The evaluator registry.
//   - coeffs: The initial polynomial. Must be non-empty.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(factory polynomial.EvaluatorFactory, coeffs polynomial.Coefficients, config REPLConfig) *REPL {
	currentAlgo := config.DefaultAlgo
	if currentAlgo == "" || currentAlgo == orchestration.AlgoAll {
		currentAlgo = polynomial.AlgoHorner
	}
	if _, err := factory.Get(currentAlgo); err != nil {
		// Fall back to the first registered algorithm
		if keys := factory.List(); len(keys) > 0 {
			currentAlgo = keys[0]
		}
	}

	return &REPL{
		config:      config,
		factory:     factory,
		coeffs:      coeffs,
		currentAlgo: currentAlgo,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"poly> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s📈 Polynomial Evaluator - Interactive Mode%s            %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "Current polynomial: %s%s%s\n\n", ui.ColorMagenta(), r.coeffs, ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %seval <x>%s       - Evaluate p(x) with current algorithm\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scoeffs <list>%s  - Set coefficients (e.g., coeffs 1,-3,2)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sdegree <n>%s     - Generate a random polynomial of degree n\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %salgo <name>%s    - Change algorithm (%s)\n", ui.ColorYellow(), ui.ColorReset(), r.getAlgoList())
	fmt.Fprintf(r.out, "  %scompare <x>%s    - Compare all algorithms at x\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbench [n]%s      - Benchmark all algorithms at the current degree\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stolerance%s      - Show the agreement tolerance\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s           - List available algorithms\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s         - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// getAlgoList returns a comma-separated list of available algorithms.
func (r *REPL) getAlgoList() string {
	return strings.Join(r.factory.List(), ", ")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "eval", "e":
		r.cmdEval(args)
	case "coeffs", "co":
		r.cmdCoeffs(args)
	case "degree", "d":
		r.cmdDegree(args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "compare", "cmp":
		r.cmdCompare(args)
	case "bench", "b":
		r.cmdBench(args)
	case "tolerance", "tol":
		r.cmdTolerance()
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Try to interpret as a point for quick evaluation
		if x, err := strconv.ParseFloat(cmd, 64); err == nil {
			r.evaluate(x)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// cmdEval handles the "eval" command.
func (r *REPL) cmdEval(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: eval <x>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	r.evaluate(x)
}

// evaluate computes p(x) with the current algorithm and displays the result.
func (r *REPL) evaluate(x float64) {
	evaluator, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		fmt.Fprintf(r.out, "%sAlgorithm not found: %s%s\n", ui.ColorRed(), r.currentAlgo, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Evaluating %sp(%g)%s with %s%s%s...\n",
		ui.ColorMagenta(), x, ui.ColorReset(),
		ui.ColorCyan(), evaluator.Name(), ui.ColorReset())

	start := time.Now()
	value, err := evaluator.Evaluate(ctx, r.coeffs, x)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	DisplayResult(value, r.coeffs, x, evaluator.Name(), duration, r.config.Verbose, r.out)
	fmt.Fprintln(r.out)
}

// cmdCoeffs handles the "coeffs" command.
func (r *REPL) cmdCoeffs(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: coeffs <c0,c1,...>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	// Accept both "1,-3,2" and "1, -3, 2"
	coeffs, err := polynomial.ParseCoefficients(strings.Join(args, ""))
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid coefficients: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	r.coeffs = coeffs
	fmt.Fprintf(r.out, "Polynomial set to: %s%s%s (degree %d)\n",
		ui.ColorMagenta(), r.coeffs, ui.ColorReset(), r.coeffs.Degree())
}

// cmdDegree handles the "degree" command.
func (r *REPL) cmdDegree(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: degree <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	degree, err := strconv.Atoi(args[0])
	if err != nil || degree < 0 {
		fmt.Fprintf(r.out, "%sInvalid degree: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	coeffs, err := polynomial.RandomCoefficients(degree, r.rng)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	r.coeffs = coeffs
	fmt.Fprintf(r.out, "Generated random polynomial of degree %s%d%s: %s%s%s\n",
		ui.ColorCyan(), degree, ui.ColorReset(),
		ui.ColorMagenta(), r.coeffs, ui.ColorReset())
}

// cmdAlgo handles the "algo" command.
func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", r.getAlgoList())
		return
	}

	name := strings.ToLower(args[0])
	evaluator, err := r.factory.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", r.getAlgoList())
		return
	}

	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), evaluator.Name(), ui.ColorReset())
}

// cmdCompare handles the "compare" command. Every registered algorithm
// evaluates the same point and the results are shown side by side.
func (r *REPL) cmdCompare(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: compare <x>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "\n%sComparison for p(%g):%s\n", ui.ColorBold(), x, ui.ColorReset())

	results := orchestration.ExecuteEvaluations(ctx, r.factory.GetAll(), r.coeffs, x)
	CLIResultPresenter{}.PresentComparisonTable(results, r.out)

	// Cross-check agreement against the first successful result
	var reference *orchestration.EvaluationResult
	for i := range results {
		if results[i].Err == nil {
			reference = &results[i]
			break
		}
	}
	if reference == nil {
		fmt.Fprintln(r.out)
		return
	}

	consistent := true
	for _, res := range results {
		if res.Err == nil && !polynomial.WithinTolerance(reference.Value, res.Value) {
			consistent = false
			fmt.Fprintf(r.out, "%s✗ %s and %s disagree%s\n",
				ui.ColorRed(), reference.Name, res.Name, ui.ColorReset())
		}
	}
	if consistent {
		fmt.Fprintf(r.out, "%s✓ All successful algorithms agree%s\n", ui.ColorGreen(), ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdBench handles the "bench" command. The campaign runs every registered
// algorithm against a fresh random polynomial of the current degree.
func (r *REPL) cmdBench(args []string) {
	trials := replBenchTrials
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(r.out, "%sInvalid trial count: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
			return
		}
		trials = n
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	opts := bench.Options{
		Trials: trials,
		Degree: r.coeffs.Degree(),
		X:      0.5,
		Seed:   r.rng.Int63(),
	}
	if err := RunBenchmark(ctx, r.factory.GetAll(), opts, r.out); err != nil {
		fmt.Fprintf(r.out, "%sBenchmark failed: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdTolerance handles the "tolerance" command.
func (r *REPL) cmdTolerance() {
	fmt.Fprintf(r.out, "\n%sAgreement tolerance:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Relative: %s%g%s (of the larger magnitude)\n", ui.ColorCyan(), polynomial.RelTolerance, ui.ColorReset())
	fmt.Fprintf(r.out, "  Absolute: %s%g%s (floor near zero)\n", ui.ColorCyan(), polynomial.AbsTolerance, ui.ColorReset())
	fmt.Fprintf(r.out, "Results agree when either bound holds.\n\n")
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable algorithms:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.factory.List() {
		evaluator, err := r.factory.Get(name)
		if err != nil {
			continue
		}
		marker := "  "
		if name == r.currentAlgo {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-10s%s - %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), evaluator.Name())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Polynomial: %s%s%s\n", ui.ColorMagenta(), r.coeffs, ui.ColorReset())
	fmt.Fprintf(r.out, "  Degree:     %s%d%s\n", ui.ColorCyan(), r.coeffs.Degree(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Algorithm:  %s%s%s\n", ui.ColorCyan(), r.currentAlgo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:    %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	verboseStatus := "no"
	if r.config.Verbose {
		verboseStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Verbose:    %s%s%s\n", ui.ColorCyan(), verboseStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}
