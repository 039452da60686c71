// SPDX-License-Identifier: MIT
// Package match: exact two-cell pairing via Dinic's max-flow.

package match

import (
	"context"

	"github.com/katalvlaran/stimset/table"
)

// maxMatching pairs the two candidate lists maximally. Pairs are listed in
// the visit order of the first cell and truncated to n.
//
// Network: source → each first-cell row → each admissible second-cell row →
// sink, all with capacity 1, so the max flow equals the matching size.
//
// Complexity: O(L·R·M) to build edges, O(E·√V) for the flow.
func maxMatching(ctx context.Context, t *table.Table, cons []constraint, cands [][]int, null, n int) (*Result, error) {
	var (
		left, right = cands[0], cands[1]
		L, R        = len(left), len(right)
		src, sink   = 0, L + R + 1
		net         = newNetwork(L + R + 2)
		res         = &Result{Requested: n}
	)
	for i := range left {
		net.add(src, 1+i)
	}
	for j := range right {
		net.add(1+L+j, sink)
	}
	for i, a := range left {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		for j, b := range right {
			if a != b && pairOK(t, cons, a, b) {
				net.add(1+i, 1+L+j)
			}
		}
	}

	flow, err := net.maxFlow(ctx, src, sink)
	if err != nil {
		return res, err
	}

	for i, a := range left {
		for _, e := range net.adj[1+i] {
			if e.to > L && e.to <= L+R && e.cap == 0 {
				res.Tuples = append(res.Tuples, Tuple{Rows: []int{a, right[e.to-1-L]}, Null: null})
				break
			}
		}
	}
	res.Exhausted = n == All || flow < n
	if n != All && len(res.Tuples) > n {
		res.Tuples = res.Tuples[:n]
	}
	res.Achieved = len(res.Tuples)
	return res, nil
}

// arc is a residual edge; rev indexes the paired edge in adj[to].
type arc struct {
	to, rev, cap int
}

// network is an integer residual graph with deterministic adjacency order.
type network struct {
	adj   [][]arc
	level []int
	iter  []int
}

func newNetwork(n int) *network {
	return &network{adj: make([][]arc, n), level: make([]int, n), iter: make([]int, n)}
}

// add inserts a unit-capacity edge u→v and its zero-capacity reverse.
func (g *network) add(u, v int) {
	g.adj[u] = append(g.adj[u], arc{to: v, rev: len(g.adj[v]), cap: 1})
	g.adj[v] = append(g.adj[v], arc{to: u, rev: len(g.adj[u]) - 1})
}

// maxFlow runs Dinic: BFS level graph, then blocking flow by DFS, until the
// sink is unreachable. ctx is checked before every phase and push.
func (g *network) maxFlow(ctx context.Context, s, t int) (int, error) {
	var flow int
	for {
		if err := ctx.Err(); err != nil {
			return flow, err
		}
		if !g.bfs(s, t) {
			return flow, nil
		}
		for i := range g.iter {
			g.iter[i] = 0
		}
		for {
			if err := ctx.Err(); err != nil {
				return flow, err
			}
			pushed := g.push(s, t, 1)
			if pushed == 0 {
				break
			}
			flow += pushed
		}
	}
}

func (g *network) bfs(s, t int) bool {
	for i := range g.level {
		g.level[i] = -1
	}
	g.level[s] = 0
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range g.adj[u] {
			if e.cap > 0 && g.level[e.to] < 0 {
				g.level[e.to] = g.level[u] + 1
				queue = append(queue, e.to)
			}
		}
	}
	return g.level[t] >= 0
}

func (g *network) push(u, t, avail int) int {
	if u == t {
		return avail
	}
	for ; g.iter[u] < len(g.adj[u]); g.iter[u]++ {
		e := &g.adj[u][g.iter[u]]
		if e.cap <= 0 || g.level[e.to] != g.level[u]+1 {
			continue
		}
		if d := g.push(e.to, t, min(avail, e.cap)); d > 0 {
			e.cap -= d
			g.adj[e.to][e.rev].cap += d
			return d
		}
	}
	return 0
}
