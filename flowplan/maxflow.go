package flowplan

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// maxFlow runs repeated BFS shortest-augmenting-path unit flow over net
// until no augmenting path remains, returning the total flow pushed.
// Every capacity in net is 1, so this is the unit-capacity specialization
// of Edmonds-Karp: each augmentation pushes exactly one unit of flow.
func maxFlow(net *core.Graph, source, sink string) (int, error) {
	flow := 0
	for {
		path, err := bfsAugmentingPath(net, source, sink)
		if err != nil {
			return 0, err
		}
		if path == nil {
			return flow, nil
		}
		if err := augment(net, path); err != nil {
			return 0, err
		}
		flow++
	}
}

// bfsAugmentingPath finds the shortest (fewest-edge) source-to-sink path
// using only positive-capacity edges. Returns nil if none remains.
func bfsAugmentingPath(net *core.Graph, source, sink string) ([]string, error) {
	parent := map[string]string{source: ""}
	visited := map[string]bool{source: true}
	queue := []string{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		edges, err := net.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if e.Weight <= 0 || visited[e.To] {
				continue
			}
			visited[e.To] = true
			parent[e.To] = u
			if e.To == sink {
				return reconstructNodePath(parent, source, sink), nil
			}
			queue = append(queue, e.To)
		}
	}

	return nil, nil
}

func reconstructNodePath(parent map[string]string, source, sink string) []string {
	path := []string{sink}
	for cur := sink; cur != source; {
		p := parent[cur]
		path = append([]string{p}, path...)
		cur = p
	}

	return path
}

// augment pushes one unit of flow along path: decrements each forward
// edge's residual capacity by one and credits the reverse edge (creating
// it at capacity 1 on first use) — the standard Ford-Fulkerson residual
// update, letting a later augmentation cancel this one if that yields a
// larger total flow.
func augment(net *core.Graph, path []string) error {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if err := decrementEdge(net, u, v); err != nil {
			return err
		}
		if err := creditReverse(net, v, u); err != nil {
			return err
		}
	}

	return nil
}

func decrementEdge(net *core.Graph, u, v string) error {
	edges, err := net.Neighbors(u)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if e.To == v && e.Weight > 0 {
			e.Weight--

			return nil
		}
	}

	return fmt.Errorf("flowplan: no positive-capacity edge %s->%s to augment", u, v)
}

func creditReverse(net *core.Graph, v, u string) error {
	edges, err := net.Neighbors(v)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if e.To == u {
			e.Weight++

			return nil
		}
	}
	_, err = net.AddEdge(v, u, 1)

	return err
}

// flowed reports whether the forward edge u->v currently carries one unit
// of flow, read off the reverse edge v->u that augment credits when it
// does (the standard Ford-Fulkerson bookkeeping: reverse capacity equals
// forward flow).
func flowed(net *core.Graph, u, v string) (bool, error) {
	if !net.HasVertex(v) {
		return false, nil
	}
	edges, err := net.Neighbors(v)
	if err != nil {
		return false, err
	}
	for _, e := range edges {
		if e.To == u && e.Weight > 0 {
			return true, nil
		}
	}

	return false, nil
}
