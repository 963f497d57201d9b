// Package batch flattens many provider resources concurrently and groups the
// results into import envelopes.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"resource-mapper/internal/common"
	"resource-mapper/internal/resource"
)

// Flattener is the part of transform.Transformer used here.
type Flattener interface {
	Transform(accountSid string, external any) *resource.FlatResource
}

var ErrInvalidBatchSize = errors.New("batch size must be positive")

// TransformAll flattens resources with at most workers goroutines. Results
// keep the input order. When ctx is cancelled no further resources are
// started and ctx.Err() is returned.
func TransformAll(ctx context.Context, f Flattener, accountSid string, resources []any, workers int) ([]*resource.FlatResource, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]*resource.FlatResource, len(resources))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, external := range resources {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			out[i] = f.Transform(accountSid, external)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Envelopes splits flattened resources into messages of at most size
// resources. The sequence range of each message comes from the first and
// last resource it carries.
func Envelopes(accountSid string, resources []*resource.FlatResource, size int) ([]resource.ImportMessage, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, size)
	}

	messages := make([]resource.ImportMessage, 0, (len(resources)+size-1)/size)

	for start := 0; start < len(resources); start += size {
		end := min(start+size, len(resources))
		chunk := resources[start:end]
		first, _ := common.First(chunk)
		last, _ := common.Last(chunk)

		messages = append(messages, resource.ImportMessage{
			Batch: resource.ImportBatch{
				FromSequence: first.ImportSequenceID,
				ToSequence:   last.ImportSequenceID,
				Remaining:    len(resources) - end,
			},
			AccountSid:        accountSid,
			ImportedResources: chunk,
		})
	}

	return messages, nil
}
