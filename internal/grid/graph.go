package grid

import "container/heap"

// Graph is a weighted directed graph over any comparable node type. Day
// solutions usually key it by Point or by (Point, direction) structs.
type Graph[N comparable] struct {
	edges map[N]map[N]int
}

// NewGraph returns an empty graph.
func NewGraph[N comparable]() *Graph[N] {
	return &Graph[N]{edges: map[N]map[N]int{}}
}

// AddEdge inserts or updates a directed edge.
func (g *Graph[N]) AddEdge(from, to N, weight int) {
	if g.edges[from] == nil {
		g.edges[from] = map[N]int{}
	}
	g.edges[from][to] = weight
}

// ShortestPaths runs Dijkstra from start and reconstructs paths to dest.
// With all=false one shortest path is returned; with all=true every
// shortest path is (noticeably slower on dense graphs). ok is false when
// dest is unreachable.
func (g *Graph[N]) ShortestPaths(start, dest N, all bool) (paths [][]N, cost int, ok bool) {
	costs, predecessors := g.dijkstra(start, all)
	cost, reached := costs[dest]
	if !reached {
		return nil, 0, false
	}
	backtrack([]N{dest}, &paths, start, predecessors)
	return paths, cost, true
}

// dijkstra computes the cheapest cost from start to every reachable node,
// recording predecessors along shortest paths. With all enabled,
// equal-cost predecessors accumulate so every shortest path survives
// reconstruction.
func (g *Graph[N]) dijkstra(start N, all bool) (map[N]int, map[N][]N) {
	costs := map[N]int{start: 0}
	predecessors := map[N][]N{start: nil}

	queue := &costQueue[N]{{node: start, cost: 0}}
	heap.Init(queue)

	for queue.Len() > 0 {
		current := heap.Pop(queue).(costEntry[N])
		if known, seen := costs[current.node]; seen && current.cost > known {
			continue // stale queue entry
		}
		for neighbor, weight := range g.edges[current.node] {
			tentative := current.cost + weight
			known, seen := costs[neighbor]
			switch {
			case !seen || tentative < known:
				costs[neighbor] = tentative
				predecessors[neighbor] = []N{current.node}
				heap.Push(queue, costEntry[N]{node: neighbor, cost: tentative})
			case all && tentative == known:
				predecessors[neighbor] = append(predecessors[neighbor], current.node)
			}
		}
	}
	return costs, predecessors
}

// backtrack grows paths from dest toward start following recorded
// predecessors.
func backtrack[N comparable](current []N, paths *[][]N, start N, predecessors map[N][]N) {
	head := current[0]
	if head == start {
		*paths = append(*paths, current)
		return
	}
	for _, predecessor := range predecessors[head] {
		extended := append([]N{predecessor}, current...)
		backtrack(extended, paths, start, predecessors)
	}
}

type costEntry[N comparable] struct {
	node N
	cost int
}

type costQueue[N comparable] []costEntry[N]

func (q costQueue[N]) Len() int           { return len(q) }
func (q costQueue[N]) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q costQueue[N]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *costQueue[N]) Push(x any)        { *q = append(*q, x.(costEntry[N])) }
func (q *costQueue[N]) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}
