// bitdump renders arbitrary files through the bitbuf codec as hex,
// binary (cursor arrows included) or an offset/hex/ascii table.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/bitbuf"
	"github.com/spacemeshos/bitbuf/persistence"
	"github.com/spacemeshos/bitbuf/shared"
)

var cfg = defaultConfig()

var rootCmd = &cobra.Command{
	Use:   "bitdump [files...]",
	Short: "Render files through the bitbuf codec",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	setFlags(rootCmd, cfg)
	_ = viper.BindPFlag("config", rootCmd.Flags().Lookup("config"))
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.PrintConfig {
		spew.Dump(cfg)
		return nil
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	outputs := make([]string, len(args))
	var eg errgroup.Group
	for i, path := range args {
		i, path := i, path
		eg.Go(func() error {
			buf, err := persistence.FetchBuffer(path, persistence.WithLogger(logger))
			if err != nil {
				return err
			}

			logger.Info("dumping file",
				zap.String("file", path),
				zap.String("size", bytefmt.ByteSize(uint64(buf.Len()))),
			)

			outputs[i] = render(buf, cfg.Format)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		if len(args) > 1 {
			fmt.Printf("==> %s <==\n", args[i])
		}
		fmt.Println(out)
	}

	return nil
}

func render(buf *bitbuf.Buffer, format string) string {
	switch format {
	case FormatBinary:
		return buf.BinaryString()
	case FormatTable:
		return renderTable(buf)
	default:
		return buf.HexString()
	}
}

func renderTable(buf *bitbuf.Buffer) string {
	// Offsets are padded to the hex width of the largest offset.
	offsetWidth := (shared.NumBits(uint64(buf.Len())) + 3) / 4
	if offsetWidth == 0 {
		offsetWidth = 1
	}

	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"OFFSET", "HEX", "ASCII"})

	data := buf.Bytes()
	for offset := 0; offset < len(data); offset += 16 {
		end := offset + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[offset:end]

		var hexCol, asciiCol strings.Builder
		for i, b := range row {
			if i > 0 {
				hexCol.WriteByte(' ')
			}
			fmt.Fprintf(&hexCol, "%02X", b)
			if b >= 0x20 && b <= 0x7E {
				asciiCol.WriteByte(b)
			} else {
				asciiCol.WriteByte('.')
			}
		}

		table.Append([]string{
			fmt.Sprintf("%0*X", offsetWidth, offset),
			hexCol.String(),
			asciiCol.String(),
		})
	}
	table.Render()

	return sb.String()
}

func newLogger(level string) (*zap.Logger, error) {
	logLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(logLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalln("failed to initialize zap logger:", err)
	}
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
