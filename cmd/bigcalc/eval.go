package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avdva/bigint"
)

// maxLineSize limits a single expression line in run mode.
const maxLineSize = 64 << 20

type evalResult struct {
	Expr   string `json:"expr"`
	Result any    `json:"result"`
}

// evaluate applies a binary operator. The result is a bigint.Int for
// arithmetic operators and a bool for comparisons.
func evaluate(x bigint.Int, op string, y bigint.Int) (any, error) {
	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y), nil
	case "*":
		return x.Mul(y), nil
	case "/":
		return x.Div(y)
	case "%":
		return x.Mod(y)
	case "==":
		return x.Eq(y), nil
	case "!=":
		return x.Ne(y), nil
	case "<":
		return x.Less(y), nil
	case ">":
		return x.Greater(y), nil
	case "<=":
		return x.LessOrEqual(y), nil
	case ">=":
		return x.GreaterOrEqual(y), nil
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}
}

// evaluateFields evaluates an expression given as three tokens: A OP B.
func evaluateFields(fields []string) (any, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("expected 'A OP B', got %d tokens", len(fields))
	}
	x, err := bigint.FromString(fields[0])
	if err != nil {
		return nil, fmt.Errorf("left operand: %w", err)
	}
	y, err := bigint.FromString(fields[2])
	if err != nil {
		return nil, fmt.Errorf("right operand: %w", err)
	}
	return evaluate(x, fields[1], y)
}

func writeResult(w io.Writer, format string, fields []string, result any) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(evalResult{Expr: strings.Join(fields, " "), Result: result})
	}
	_, err := fmt.Fprintln(w, result)
	return err
}

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval A OP B",
		Short: "Evaluate a single expression",
		Long: `Evaluate a single expression. Operators: + - * / % == != < > <= >=.
Put negative operands after '--': bigcalc eval -- -10 / 3`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := args
			if len(args) == 1 {
				fields = strings.Fields(args[0])
			}
			result, err := evaluateFields(fields)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.format, fields, result)
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Evaluate expressions from stdin, one 'A OP B' per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd.InOrStdin(), cmd.OutOrStdout(), opts.format)
		},
	}
}

// runLines evaluates every non-empty line of r and stops at the first error.
func runLines(r io.Reader, w io.Writer, format string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		result, err := evaluateFields(fields)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := writeResult(w, format, fields, result); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a few sample computations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	a, b := bigint.MustFromString("123"), bigint.MustFromString("456")
	fmt.Fprintf(w, "a = %s\n", a)
	fmt.Fprintf(w, "b = %s\n", b)
	fmt.Fprintf(w, "a + b = %s\n", a.Add(b))
	fmt.Fprintf(w, "a - b = %s\n", a.Sub(b))
	fmt.Fprintf(w, "a * b = %s\n", a.Mul(b))
	pairs := [][2]bigint.Int{
		{b, a},
		{bigint.New(10), bigint.New(-3)},
		{bigint.New(-10), bigint.New(3)},
	}
	for _, p := range pairs {
		q, r, err := p[0].DivMod(p[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s / %s = %s\n", p[0], p[1], q)
		fmt.Fprintf(w, "%s %% %s = %s\n", p[0], p[1], r)
	}
	return nil
}
