package grid

import (
	"sync"

	"github.com/oceanfv/gofv/utils"
)

/*
	ForEachInteriorParallel shards the interior rows across np goroutines
	using a PartitionMap and blocks until every worker finishes, so the call
	itself is the synchronization barrier: on return all writes made by f are
	committed and a halo refresh or reduction may safely follow.

	f must only write to the (i,j) cell it is given, or to per-worker state;
	rows are disjoint across workers but columns within a row are not.
*/
func (g *Grid) ForEachInteriorParallel(np int, f func(i, j int)) {
	if np <= 1 {
		g.ForEachInterior(f)
		return
	}
	var (
		pm = utils.NewPartitionMap(np, g.Ny)
		wg = sync.WaitGroup{}
	)
	for n := 0; n < pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			jMin, jMax := pm.GetBucketRange(n)
			for j := jMin; j < jMax; j++ {
				for i := 0; i < g.Nx; i++ {
					f(i, j)
				}
			}
		}(n)
	}
	wg.Wait()
}
