package solver_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tbdiag/hopping"
	"github.com/katalvlaran/tbdiag/index"
	"github.com/katalvlaran/tbdiag/model"
	"github.com/katalvlaran/tbdiag/solver"
)

// ExampleBlockDiagonalizer diagonalizes two chains that share no hopping.
// Each chain becomes its own block.
func ExampleBlockDiagonalizer() {
	s := model.New()
	for chain := 0; chain < 2; chain++ {
		_ = s.Add(hopping.New(complex(float64(chain), 0), index.New(chain, 0), index.New(chain, 0)))
		_ = s.AddPair(hopping.New(-1, index.New(chain, 1), index.New(chain, 0)).Plus(hopping.HC))
	}
	if err := s.Finalize(); err != nil {
		fmt.Println(err)
		return
	}

	bd, _ := solver.New(s, solver.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err := bd.Init(); err != nil {
		fmt.Println(err)
		return
	}
	if err := bd.Run(); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("blocks:", bd.NumBlocks())
	for chain := 0; chain < 2; chain++ {
		e0, _ := bd.BlockEigenValue(index.New(chain), 0)
		e1, _ := bd.BlockEigenValue(index.New(chain), 1)
		fmt.Printf("chain %d: %.3f %.3f\n", chain, e0, e1)
	}
	// Output:
	// blocks: 2
	// chain 0: -1.000 1.000
	// chain 1: -0.618 1.618
}
