package solver

import (
	"runtime"
	"sync"
)

// parallelRange 把 [start,end) 按可用CPU数切块并发执行
// 仅用于对流这类只读上一步场量的遍历，松弛扫描保持串行
func parallelRange(start, end int, fn func(i int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		s := start + w*chunk
		e := s + chunk
		if e > end {
			e = end
		}
		if s >= end {
			break
		}
		wg.Add(1)
		go func(ss, ee int) {
			for i := ss; i < ee; i++ {
				fn(i)
			}
			wg.Done()
		}(s, e)
	}
	wg.Wait()
}
