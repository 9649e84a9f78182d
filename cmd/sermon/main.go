package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dl/sermon/internal/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cfg := cli.Config{}
	colorFlag := "never"
	code := 0

	root := &cobra.Command{
		Use:   "sermon",
		Short: "Serial line monitor",
		Long: `sermon prints and logs the output of a serial line, e.g. from an
embedded device. Output can be raw text, timestamped lines or a hex
dump, optionally colored and mirrored to a log file. With --wait the
monitor waits for a missing device to show up, and with --persist it
reconnects after the connection drops.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(_ *cobra.Command, _ []string) {
			mode, err := cli.ParseColorMode(colorFlag)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				code = 2
				return
			}
			cfg.Color = mode
			code = cli.Run(cfg)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&cfg.Port, "port", "p", "/dev/ttyACM0", "serial port to monitor")
	flags.IntVarP(&cfg.Baud, "baudrate", "b", 9600, "serial baudrate")
	flags.StringVarP(&cfg.Format, "format", "f", "raw", "output format: raw, line or hex")
	flags.StringVarP(&cfg.LogPath, "log", "l", "", "also write the received data to this file")
	flags.BoolVarP(&cfg.Timestamp, "timestamp", "t", false, "add a timestamp to each line")
	flags.StringVarP(&colorFlag, "color", "c", "never", "colored output: auto, always or never")
	flags.BoolVarP(&cfg.ShowASCII, "ascii", "a", false, "add an ASCII column to hex output")
	flags.IntVar(&cfg.HexBytes, "hexbytes", 16, "number of bytes per row in hex output")
	flags.BoolVarP(&cfg.Wait, "wait", "w", false, "if the port is not available, wait until it shows up")
	flags.BoolVar(&cfg.Persist, "persist", false, "restart and reconnect if the connection drops")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print nothing but the received data")
	flags.BoolVar(&cfg.List, "list", false, "list available serial ports and exit")
	flags.BoolVar(&cfg.ListJSON, "list-json", false, "list available serial ports as JSON and exit")

	// -c with no value behaves like the classic boolean color switch.
	flags.Lookup("color").NoOptDefVal = "always"

	root.SetArgs(append(cli.LoadConfigArgs(), argv...))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return code
}
