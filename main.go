package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/gregLibert/mfc-keys/pkg/config"
	"github.com/gregLibert/mfc-keys/pkg/extract"
	"github.com/gregLibert/mfc-keys/pkg/keyfile"
)

// Version is the program version, overridable at build time with -ldflags.
var Version = "0.2"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// usageError is a mistake in the command line rather than in the dump.
type usageError string

func (u usageError) Error() string {
	return string(u)
}

// run executes the command and returns the process exit status:
// 0 when every requested key file was written, 1 on any failure.
func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)

	cmd := newRootCmd(logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger.Errorf("%v", err)

		var usageErr usageError
		if errors.As(err, &usageErr) {
			if uerr := cmd.Usage(); uerr != nil {
				logger.Warnf("Failed to print usage: %v", uerr)
			}
		}
		return 1
	}
	return 0
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.New("mfc-extract-keys")
	logger.SetHeader("[${level}]")
	logger.SetOutput(w)
	logger.DisableColor()
	logger.SetLevel(log.INFO)
	return logger
}

// =========================================================================
// Command Definition
// =========================================================================

type flagValues struct {
	mfoc       bool
	proxmark   bool
	outputDir  string
	configPath string
	debug      bool
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "mfc-extract-keys [-hmpv] <input_file>",
		Short: "Extract keys from raw MIFARE Classic dumps",
		Long: "Extract the sector keys from a raw MIFARE Classic 1K or 4K dump and convert them\n" +
			"to either the mfocGUI or the Proxmark key format.",
		Example:       "  mfc-extract-keys -m mycard.mfd",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError(fmt.Sprintf("expected exactly one input file, got %d", len(args)))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if fv.debug {
				logger.SetLevel(log.DEBUG)
			}

			opts, err := resolveOptions(fv, cmd.Flags().Changed("output-dir"), args[0])
			if err != nil {
				return err
			}

			logger.Debugf("Converting '%s' to %s key files in '%s'", opts.Input, opts.Format, opts.OutputDir)

			res, err := extract.Run(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			logger.Debugf("Decoded %s card %s, %d sectors, %d file(s) written", res.Geometry, res.UID, len(res.Keys), len(res.Files))
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err.Error())
	})

	flags := cmd.Flags()
	flags.BoolVarP(&fv.mfoc, "mfoc", "m", false, "convert a raw dump to the mfocGUI key format")
	flags.BoolVarP(&fv.proxmark, "proxmark", "p", false, "convert a raw dump to the proxmark key format")
	flags.StringVarP(&fv.outputDir, "output-dir", "o", ".", "directory the key files are written to")
	flags.StringVarP(&fv.configPath, "config", "c", "", "YAML file with a default format and output_dir")
	flags.BoolVar(&fv.debug, "debug", false, "enable debug logging")

	return cmd
}

// resolveOptions merges the optional config file with the command-line flags.
// Flags always win over the config file.
func resolveOptions(fv flagValues, outputDirSet bool, input string) (extract.Options, error) {
	opts := extract.Options{Input: input, OutputDir: fv.outputDir}

	cfg := &config.Config{}
	if fv.configPath != "" {
		loaded, err := config.Load(fv.configPath)
		if err != nil {
			return opts, err
		}
		cfg = loaded
	}

	switch {
	case fv.mfoc && fv.proxmark:
		return opts, usageError("choose only one of -m (mfocGUI) or -p (proxmark)")
	case fv.mfoc:
		opts.Format = keyfile.MfocDump
	case fv.proxmark:
		opts.Format = keyfile.ProxmarkBin
	default:
		f, ok := cfg.KeyFormat()
		if !ok {
			return opts, usageError("no output format selected, use -m or -p")
		}
		opts.Format = f
	}

	if !outputDirSet && cfg.OutputDir != "" {
		opts.OutputDir = cfg.OutputDir
	}

	return opts, nil
}
