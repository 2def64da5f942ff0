//go:build !tinygo && !baremetal

// Command halplan checks an MSP430FR2355 board plan on the host. It runs the
// plan through the HAL against simulated registers and prints the resulting
// clock frequencies and register values.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"msp430hal/clock"
	"msp430hal/pac"
	"msp430hal/serial"
)

var (
	applyOpts = struct {
		all bool
	}{}

	rootCmd = &cobra.Command{
		Use:           "halplan",
		Short:         "Resolve MSP430FR2355 peripheral settings on the host",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	applyCmd = &cobra.Command{
		Use:   "apply <plan.yaml>",
		Short: "Run a board plan and dump the registers it wrote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			plan, err := LoadPlan(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			res, err := Apply(plan)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printClock(w, "MCLK", res.Mclk)
			if res.Smclk != nil {
				printClock(w, "SMCLK", res.Smclk)
			} else {
				fmt.Fprintln(w, "SMCLK off")
			}
			printClock(w, "ACLK", res.Aclk)
			if res.TickHz != 0 {
				fmt.Fprintf(w, "TB0   %d Hz/tick\n", res.TickHz)
			}
			if res.Timeout != 0 {
				fmt.Fprintf(w, "WDT   %v\n", res.Timeout)
			}
			fmt.Fprintln(w)
			printRegs(w, dump(pac.Steal(), !applyOpts.all))
			return nil
		},
	}

	baudOpts = struct {
		clk uint32
		bps uint32
	}{}

	baudCmd = &cobra.Command{
		Use:   "baud",
		Short: "Compute eUSCI_A baud generator settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := serial.CalcBaud(baudOpts.clk, baudOpts.bps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "UCBRW=%d UCBRF=%d UCBRS=0x%02X UCOS16=%t UCAxMCTLW=0x%04X\n",
				b.BR, b.BRF, b.BRS, b.Over16, b.MCTLW())
			return nil
		},
	}

	dcoOpts = struct {
		hz uint32
	}{}

	dcoCmd = &cobra.Command{
		Use:   "dco",
		Short: "Show the FLL multiplier and DCO range for a target frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, m, rng, err := clock.MatchDco(dcoOpts.hz)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d Hz: FLLN=%d DCORSEL=%d\n", freq, m-1, rng)
			return nil
		},
	}
)

func init() {
	applyCmd.Flags().BoolVarP(&applyOpts.all, "all", "a", false, "include registers the plan did not write")

	baudCmd.Flags().Uint32Var(&baudOpts.clk, "clk", clock.RefoHz, "source clock in Hz")
	baudCmd.Flags().Uint32Var(&baudOpts.bps, "bps", 9600, "bit rate")

	dcoCmd.Flags().Uint32Var(&dcoOpts.hz, "hz", 1_000_000, "target DCOCLK in Hz")

	rootCmd.AddCommand(applyCmd, baudCmd, dcoCmd)
}

func printClock(w io.Writer, name string, c clock.Clock) {
	fmt.Fprintf(w, "%-5s %d Hz\n", name, c.Freq())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
