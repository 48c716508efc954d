package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/andrei444-andrei/safeexpr"
)

// repl reads expressions line by line until EOF or an exit command. Errors
// from individual expressions are reported and the loop continues; only an
// input error ends the session abnormally.
func repl() error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Println("Interactive calculator. Type an expression, or 'exit'/'quit' to leave.")
	}
	scan := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("calc> ")
		}
		if !scan.Scan() {
			if interactive {
				fmt.Println()
			}
			return scan.Err()
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "exit", "quit":
			return nil
		}
		r, err := safeexpr.EvalString(line, safeexpr.Prec(precBits))
		if err != nil {
			fmt.Println(color.RedString("error: %v", err))
			continue
		}
		fmt.Println(r)
	}
}
