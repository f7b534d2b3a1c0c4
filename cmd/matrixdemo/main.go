// SPDX-License-Identifier: MIT

// Command matrixdemo builds two float64 matrices, multiplies them,
// raises the product element-wise to a power and prints every stage.
//
//	matrixdemo --rows 3 --inner 4 --cols 5 --power 2
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/matrix"
)

// demoConfig carries the shapes requested on the command line.
type demoConfig struct {
	rows  int
	inner int
	cols  int
	power int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := demoConfig{rows: 3, inner: 4, cols: 5, power: 2}

	cmd := &cobra.Command{
		Use:           "matrixdemo",
		Short:         "Multiply two matrices and print the intermediate results",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.rows, "rows", cfg.rows, "row count of the left operand")
	flags.IntVar(&cfg.inner, "inner", cfg.inner, "shared inner dimension")
	flags.IntVar(&cfg.cols, "cols", cfg.cols, "column count of the right operand")
	flags.IntVar(&cfg.power, "power", cfg.power, "element-wise exponent applied to the product (may be negative)")

	return cmd
}

func (c demoConfig) validate() error {
	if c.rows <= 0 || c.inner <= 0 || c.cols <= 0 {
		return fmt.Errorf("--rows, --inner and --cols must be positive, got %d, %d, %d", c.rows, c.inner, c.cols)
	}

	return nil
}

// runDemo prints x, y, z = x·y, z^power and its transpose, each followed by a blank line.
func runDemo(w io.Writer, cfg demoConfig) error {
	x, err := indexSum(cfg.rows, cfg.inner)
	if err != nil {
		return err
	}
	y, err := indexSum(cfg.inner, cfg.cols)
	if err != nil {
		return err
	}

	z, err := matrix.Mul(x, y)
	if err != nil {
		return err
	}
	z2, err := matrix.Pow(z, cfg.power)
	if err != nil {
		return err
	}
	zt, err := matrix.Transpose(z2)
	if err != nil {
		return err
	}

	for _, m := range []*matrix.Dense[float64]{x, y, z, z2, zt} {
		if err = matrix.Fprint[float64](w, m); err != nil {
			return err
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// indexSum returns a rows×cols matrix with m(i,j) = i+j.
func indexSum(rows, cols int) (*matrix.Dense[float64], error) {
	m, err := matrix.NewDense[float64](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.SetUnchecked(i, j, float64(i+j))
		}
	}

	return m, nil
}
