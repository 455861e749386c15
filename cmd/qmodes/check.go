package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/qmodes/backend/cpu"
	"github.com/born-ml/qmodes/named"
	"github.com/born-ml/qmodes/tensor"
)

// scenario is one engine self-check. It returns attributes describing the
// outcome, or an error when the engine misbehaves.
type scenario struct {
	name string
	run  func(b tensor.Backend) ([]slog.Attr, error)
}

var scenarios = []scenario{
	{"overlapping-identities", checkOverlappingIdentities},
	{"fidelity-self", checkFidelitySelf},
	{"permute-round-trip", checkPermuteRoundTrip},
	{"rename-atomic", checkRenameAtomic},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the engine self-check scenarios",
	Long: `Run a fixed set of named-tensor scenarios against the CPU backend
configured from qmodes.yaml and QMODES_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bc, err := backendConfig(cfg)
		if err != nil {
			return err
		}
		logger := newLogger(flagVerbose)
		return runChecks(cmd.Context(), logger, bc, cpu.NewWithConfig(bc))
	},
}

// outcome is the result of one scenario run.
type outcome struct {
	attrs []slog.Attr
	err   error
}

// runChecks runs the scenarios concurrently, at most bc.Parallel.NumWorkers
// at a time, and logs their outcomes in declaration order. Each scenario
// gets its own CountingBackend around backend.
func runChecks(ctx context.Context, logger *slog.Logger, bc cpu.Config, backend tensor.Backend) error {
	logger.InfoContext(ctx, "running checks",
		slog.String("backend", backend.Name()),
		slog.Float64("tolerance", bc.Tolerance),
		slog.Int("workers", bc.Parallel.NumWorkers),
		slog.Int("scenarios", len(scenarios)))

	outcomes := make([]outcome, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(bc.Parallel.NumWorkers, 1))
	for i, s := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			counting := tensor.NewCountingBackend(backend)
			start := time.Now()
			attrs, err := s.run(counting)
			attrs = append(attrs,
				slog.String("scenario", s.name),
				slog.Duration("elapsed", time.Since(start)),
				slog.Int("permute_square", counting.Calls("PermuteSquare")),
				slog.Int("coordinate_remap", counting.Calls("CoordinateRemap")))
			outcomes[i] = outcome{attrs: attrs, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("check: %w", err)
	}

	failed := 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
			logger.LogAttrs(ctx, slog.LevelError, "scenario failed", append(o.attrs, slog.Any("error", o.err))...)
			continue
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "scenario passed", o.attrs...)
	}

	if failed > 0 {
		return fmt.Errorf("check: %d of %d scenarios failed", failed, len(scenarios))
	}
	logger.InfoContext(ctx, "all checks passed")
	return nil
}

func rawOf(dims tensor.Dims, data ...complex128) *tensor.RawTensor {
	return tensor.MustFromSlice(dims, data)
}

// identityOn builds the identity of dimension dim on each named mode.
func identityOn(b tensor.Backend, dim int, names ...string) (*named.Tensor, error) {
	ops := make([]*named.Tensor, len(names))
	for i, name := range names {
		id, err := b.Identity(dim)
		if err != nil {
			return nil, err
		}
		if ops[i], err = named.NewWithBackend(b, id, name, named.Operator); err != nil {
			return nil, err
		}
	}
	return named.TensorProduct(ops...)
}

func checkOverlappingIdentities(b tensor.Backend) ([]slog.Attr, error) {
	ab, err := identityOn(b, 2, "A", "B")
	if err != nil {
		return nil, err
	}
	bc, err := identityOn(b, 2, "B", "C")
	if err != nil {
		return nil, err
	}
	want, err := identityOn(b, 2, "A", "B", "C")
	if err != nil {
		return nil, err
	}

	v, err := ab.Mul(bc)
	if err != nil {
		return nil, err
	}
	got, ok := v.(*named.Tensor)
	if !ok {
		return nil, fmt.Errorf("product collapsed to %v", v)
	}
	attrs := []slog.Attr{slog.String("result", got.String())}
	if !got.Equal(want) || got.Kind() != named.Operator {
		return attrs, fmt.Errorf("product %v is not the identity on [A B C]", got)
	}
	return attrs, nil
}

func checkFidelitySelf(b tensor.Backend) ([]slog.Attr, error) {
	s := complex(1/math.Sqrt2, 0)
	psi, err := named.NewWithBackend(b, rawOf(tensor.Dims{{2}, {1}}, s, complex(0, 1/math.Sqrt2)), "A", named.State)
	if err != nil {
		return nil, err
	}
	rho, err := named.Ket2DM(psi)
	if err != nil {
		return nil, err
	}
	f, err := named.Fidelity(rho, rho)
	if err != nil {
		return nil, err
	}
	attrs := []slog.Attr{slog.Float64("fidelity", f)}
	if math.Abs(f-1) > 1e-6 {
		return attrs, fmt.Errorf("fidelity %g, want 1", f)
	}
	return attrs, nil
}

func checkPermuteRoundTrip(b tensor.Backend) ([]slog.Attr, error) {
	factors := []struct {
		name string
		raw  *tensor.RawTensor
	}{
		{"A", rawOf(tensor.Dims{{2}, {2}}, 1, 2i, 3, 4)},
		{"B", rawOf(tensor.Dims{{3}, {3}}, 1, 0, 2, 0, 1i, 0, -1, 0, 5)},
		{"C", rawOf(tensor.Dims{{2}, {2}}, 0, 1, -1i, 0)},
	}
	ops := make([]*named.Tensor, len(factors))
	for i, f := range factors {
		op, err := named.NewWithBackend(b, f.raw, f.name, named.Operator)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	x, err := named.TensorProduct(ops...)
	if err != nil {
		return nil, err
	}

	// Same order on both sides, then independent orders per side.
	rows, cols := []string{"C", "A", "B"}, []string{"B", "C", "A"}
	square, err := x.Permute(rows...)
	if err != nil {
		return nil, err
	}
	rect, err := x.PermuteAxes(rows, cols)
	if err != nil {
		return nil, err
	}
	attrs := []slog.Attr{slog.Any("rows", rows), slog.Any("cols", cols)}
	for _, p := range []*named.Tensor{square, rect} {
		back, err := p.Permute("A", "B", "C")
		if err != nil {
			return attrs, err
		}
		if !back.Equal(x) {
			return attrs, fmt.Errorf("round trip through %v changed %v", p.Names(), x)
		}
	}
	return attrs, nil
}

func checkRenameAtomic(b tensor.Backend) ([]slog.Attr, error) {
	x, err := identityOn(b, 2, "A", "B")
	if err != nil {
		return nil, err
	}
	before := x.String()
	if err := x.Rename("Z", "Q"); !errors.Is(err, named.ErrUnknownName) {
		return nil, fmt.Errorf("rename of absent mode: got %v, want ErrUnknownName", err)
	}
	if err := x.Rename("A", "B"); !errors.Is(err, named.ErrCollision) {
		return nil, fmt.Errorf("rename onto used mode: got %v, want ErrCollision", err)
	}
	if after := x.String(); after != before {
		return nil, fmt.Errorf("failed renames changed %s to %s", before, after)
	}
	return []slog.Attr{slog.String("tensor", before)}, nil
}
