package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graphpick/graphpick/chunkio"
	"github.com/graphpick/graphpick/closure"
)

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "graphpick",
		Short:         "graphpick — dependency-complete chunk selection via min-cut",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")

	cmd.AddCommand(newSolveCmd(&debug))

	return cmd
}

func newSolveCmd(debug *bool) *cobra.Command {
	var (
		input      string
		size       int
		configPath string
		format     string
		noValidate bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the maximum-weight closure of a graph document",
		Long: "Reads a graph document (JSON) from stdin or --input, computes the " +
			"maximum-weight dependency-closed subset — steered toward --size when " +
			"given — and writes the solution JSON to stdout.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(*debug)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			log := logger.With(zap.String("run_id", uuid.NewString()))

			cfg, err := loadConfig(configPath)
			if err != nil {
				log.Error("config load failed", zap.String("path", configPath), zap.Error(err))

				return err
			}

			in := cmd.InOrStdin()
			if input != "" {
				f, err := os.Open(input)
				if err != nil {
					log.Error("input open failed", zap.String("path", input), zap.Error(err))

					return err
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			doc, err := chunkio.DecodeDocument(in)
			if err != nil {
				log.Error("decode failed", zap.Error(err))

				return err
			}
			if !noValidate {
				if err := chunkio.ValidateDocument(doc); err != nil {
					log.Error("validation failed", zap.Error(err))

					return err
				}
			}

			g := doc.Graph()
			log.Debug("graph loaded",
				zap.Int("chunks", g.NumChunks()),
				zap.Int("edges", g.NumEdges()),
				zap.String("name", doc.Meta.Name))

			opts := cfg.solverOptions()
			var sol closure.Solution
			if cmd.Flags().Changed("size") {
				sol = closure.SolveClosureBySize(g, size, opts...)
			} else {
				sol = closure.MaximumWeightClosure(g, opts...)
			}

			log.Info("solved",
				zap.Int("size", sol.Size),
				zap.Float64("total_weight", sol.TotalWeight),
				zap.Float64("penalty", sol.Penalty),
				zap.Bool("relaxed", sol.Relaxed))

			return printSolution(cmd.OutOrStdout(), g, sol, format)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Graph document path (default: stdin)")
	cmd.Flags().IntVarP(&size, "size", "k", 0, "Target closure size (omit for the unconstrained solve)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Solver tuning file (YAML, optional)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json|pretty")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "Skip document validation")

	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

func printSolution(w io.Writer, g *closure.Graph, sol closure.Solution, format string) error {
	switch format {
	case "json", "":
		return chunkio.EncodeSolution(w, sol)
	case "pretty":
		printPrettySolution(w, g, sol)

		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected json|pretty)", format)
	}
}

func printPrettySolution(w io.Writer, g *closure.Graph, sol closure.Solution) {
	fmt.Fprintf(w, "Selected:     %d chunk(s)\n", sol.Size)
	fmt.Fprintf(w, "Total weight: %g\n", sol.TotalWeight)
	fmt.Fprintf(w, "Penalty:      %g\n", sol.Penalty)
	if sol.Relaxed {
		fmt.Fprintln(w, "Note:         size cap forced a non-closed selection")
	}
	fmt.Fprintln(w)

	for _, id := range sol.Closure {
		line := fmt.Sprintf("- %s", id)
		if c, ok := g.Chunk(id); ok {
			line = fmt.Sprintf("- %s  (%g)", id, c.Weight)
			if c.Title != "" {
				line += "  " + c.Title
			}
			if len(c.Tags) > 0 {
				line += "  [" + strings.Join(c.Tags, ", ") + "]"
			}
		}
		fmt.Fprintln(w, line)
	}
}
