package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/andrei444-andrei/safeexpr"
)

var precBits uint

// rootCmd evaluates its arguments as one expression, or starts the
// interactive loop when called without any.
var rootCmd = &cobra.Command{
	Use:   "calc [expression]",
	Short: "Safely evaluate an arithmetic expression",
	Long: `Calc evaluates arithmetic expressions without ever executing code.

Expressions are numbers, the operators + - * / // % ** (^ also works
for powers), and parentheses. Identifiers, function calls, and every
other construct are rejected, so input can be fully untrusted.

With arguments, calc joins them into one expression, prints the result,
and exits; errors go to standard error with a failing status. With no
arguments, calc reads expressions line by line; 'exit' or 'quit' ends
the session.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().UintVarP(&precBits, "prec", "p", safeexpr.DefaultPrec, "precision of floating-point calculations in bits")
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return evalOnce(strings.Join(args, " "))
	}
	return repl()
}

func evalOnce(src string) error {
	r, err := safeexpr.EvalString(src, safeexpr.Prec(precBits))
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		return err
	}
	fmt.Println(r)
	return nil
}
