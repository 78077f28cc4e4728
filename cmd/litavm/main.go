// Command litavm assembles and runs a litavm source file.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"litavm/asm"
	"litavm/config"
	"litavm/disasm"
	"litavm/interp"
	"litavm/vmerr"
)

const (
	exitSuccess    = 0
	exitVMError    = 2
	exitParseError = 32
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		disassemble bool
		ramSize     int
		stackSize   int
		cfgPath     string
		tracePath   string
	)

	// --config picks which file config.Load reads its defaults from, but
	// cobra only populates bound flag variables once root.Execute() parses
	// args — after the other flags' defaults would already need to be set.
	// Scan for it up front, the same way a shell would, before wiring the
	// rest of the flag set.
	cfgPath = preScanConfigPath(args)

	var cfg *config.Config
	var err error
	if cfgPath != "" {
		cfg, err = config.LoadFrom(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "litavm: config-error:", err)
		return exitVMError
	}

	root := &cobra.Command{
		Use:           "litavm [flags] file",
		Short:         "Assemble and run a litavm source file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if len(cmdArgs) == 0 {
				return cmd.Usage()
			}
			return execFile(cmdArgs[0], ramSize, stackSize, disassemble, tracePath)
		},
	}
	root.SetArgs(args)

	flags := root.Flags()
	flags.BoolVarP(&disassemble, "disassembly", "d", cfg.Display.ShowDisassembly, "print disassembly before execution")
	flags.IntVarP(&ramSize, "ram", "r", int(cfg.VM.RAMSize), "RAM size in bytes")
	flags.IntVarP(&stackSize, "stack-size", "s", int(cfg.VM.StackSize), "stack size in bytes")
	flags.StringVar(&cfgPath, "config", cfgPath, "path to a config file (overrides the default location)")
	flags.StringVar(&tracePath, "trace", "", "write a per-instruction execution trace to this file")

	if err := root.Execute(); err != nil {
		return reportError(err)
	}
	return exitSuccess
}

// preScanConfigPath looks for "--config PATH" or "--config=PATH" in args
// without involving cobra, since the config file's contents must be loaded
// before the rest of the flags' defaults can be bound.
func preScanConfigPath(args []string) string {
	for i, a := range args {
		if val, ok := strings.CutPrefix(a, "--config="); ok {
			return val
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func execFile(path string, ramSize, stackSize int, disassemble bool, tracePath string) error {
	source, err := os.ReadFile(path) // #nosec G304 -- user-supplied program path
	if err != nil {
		return vmerr.WrapParseError(0, err, "cannot read %q", path)
	}

	vm, err := interp.New(ramSize, stackSize)
	if err != nil {
		return err
	}

	if tracePath != "" {
		f, err := os.Create(tracePath) // #nosec G304 -- user-supplied trace path
		if err != nil {
			return vmerr.WrapConfigError(err, "cannot open trace file %q", tracePath)
		}
		defer f.Close()
		vm.Trace = f
	}

	code, err := asm.Compile(string(source), vm.RAM, vm.CPU)
	if err != nil {
		return err
	}

	if disassemble {
		fmt.Fprint(os.Stdout, disasm.Format(code))
	}

	return vm.Execute(code)
}

// reportError prints err to stderr and maps it to an exit code: assembly-time
// parse/encode errors exit 32, everything else (runtime VM errors and
// configuration errors) exits 2.
func reportError(err error) int {
	fmt.Fprintln(os.Stderr, "litavm:", err)

	switch err.(type) {
	case *vmerr.ParseError, *vmerr.EncodeError:
		return exitParseError
	default:
		return exitVMError
	}
}
