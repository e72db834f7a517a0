// Package main provides the automatic differentiation CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/RishabSA/automatic-differentiation/internal/nn"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("autodiff %s\n", version)
	case "linreg":
		if err := runLinreg(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "linreg: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("autodiff - reverse-mode automatic differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  linreg     Fit y = 5x + 3 with a single Linear layer")
}

func runLinreg(args []string) error {
	fs := flag.NewFlagSet("linreg", flag.ContinueOnError)
	epochs := fs.Int("epochs", 1000, "Number of training epochs")
	lr := fs.Float64("lr", 0.01, "Learning rate for SGD")
	seed := fs.Int64("seed", 42, "Seed for weight initialization")
	every := fs.Int("log-every", 100, "Print the loss every N epochs (0 = never)")
	save := fs.String("save", "", "Write a checkpoint of the trained model to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := linregConfig{Epochs: *epochs, LR: *lr, Seed: *seed}
	fmt.Printf("Training Linear(1, 1) on y = 5x + 3 (epochs=%d, lr=%g)\n", cfg.Epochs, cfg.LR)

	result, err := trainLinreg(cfg, func(epoch int, loss float64) {
		if *every > 0 && (epoch+1)%*every == 0 {
			fmt.Printf("Epoch %4d/%d: Loss=%.6f\n", epoch+1, cfg.Epochs, loss)
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nLearned: W=%.4f, b=%.4f (final loss %.6f)\n", result.Weight, result.Bias, result.Loss)

	if *save != "" {
		checkpoint := &nn.Checkpoint{
			Model: result.Model,
			Epoch: cfg.Epochs - 1,
			Loss:  result.Loss,
			LR:    cfg.LR,
		}
		if err := checkpoint.Save(*save); err != nil {
			return err
		}
		fmt.Printf("Saved checkpoint to %s\n", *save)
	}
	return nil
}
