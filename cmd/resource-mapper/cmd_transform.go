package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resource-mapper/internal/batch"
	"resource-mapper/internal/mapping"
	"resource-mapper/internal/providers"
	"resource-mapper/internal/transform"
)

var (
	transformConfig   string
	transformProvider string
	transformAccount  string
	batchSize         int
	workers           int
	dump              bool
)

var transformCmd = &cobra.Command{
	Use:   "transform (--config mapping.yaml | --provider name) --account AC... input.json",
	Short: "Flatten a JSON file of provider resources",
	Long: `Reads one JSON resource or an array of resources ("-" for stdin), flattens
each with the selected mapping and writes one import envelope per batch as a
JSON line on stdout. With --dump the flat resources are pretty-printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

func init() {
	f := transformCmd.Flags()
	f.StringVarP(&transformConfig, "config", "c", "", "Path to a YAML mapping file")
	f.StringVarP(&transformProvider, "provider", "p", "", "Name of a built-in provider mapping")
	f.StringVarP(&transformAccount, "account", "a", "", "Account SID stamped on every resource")
	f.IntVar(&batchSize, "batch-size", 100, "Resources per import envelope")
	f.IntVar(&workers, "workers", 0, "Concurrent transforms (0 = GOMAXPROCS)")
	f.BoolVar(&dump, "dump", false, "Pretty-print flat resources instead of emitting envelopes")

	transformCmd.MarkFlagsMutuallyExclusive("config", "provider")
	transformCmd.MarkFlagsOneRequired("config", "provider")
	_ = transformCmd.MarkFlagRequired("account")
}

func runTransform(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := loadTransformer()
	if err != nil {
		return err
	}

	resources, err := readResources(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	logger.Info("Transforming resources",
		zap.Int("count", len(resources)),
		zap.String("accountSid", transformAccount),
		zap.Int("workers", workers))

	flat, err := batch.TransformAll(ctx, t, transformAccount, resources, workers)
	if err != nil {
		return fmt.Errorf("transform interrupted: %w", err)
	}

	out := cmd.OutOrStdout()

	if dump {
		for _, r := range flat {
			spew.Fdump(out, r)
		}

		return nil
	}

	messages, err := batch.Envelopes(transformAccount, flat, batchSize)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	for _, msg := range messages {
		if err := enc.Encode(msg); err != nil {
			return fmt.Errorf("failed to write envelope: %w", err)
		}
	}

	logger.Debug("Wrote import envelopes", zap.Int("messages", len(messages)))

	return nil
}

func loadTransformer() (*transform.Transformer, error) {
	opts := []transform.Option{transform.WithLogger(logger)}

	if transformProvider != "" {
		tree, ok := providers.Lookup(transformProvider)
		if !ok {
			return nil, fmt.Errorf("unknown provider %q (available: %v)", transformProvider, providers.Names())
		}

		return transform.New(tree, opts...)
	}

	mf, tree, err := mapping.LoadTree(transformConfig, providers.Registry())
	if err != nil {
		return nil, err
	}

	return transform.New(tree, append(opts, transform.FromMappingFile(mf)...)...)
}

// readResources decodes a single JSON value or an array of them. Numbers are
// kept as json.Number so large identifiers survive intact.
func readResources(stdin io.Reader, name string) ([]any, error) {
	var (
		data []byte
		err  error
	)

	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse input %s: %w", name, err)
	}

	if dec.More() {
		return nil, errors.New("input must hold a single JSON value")
	}

	if list, ok := v.([]any); ok {
		return list, nil
	}

	return []any{v}, nil
}
