package path

import (
	"container/heap"
	"math"
)

// DijkstraSource describes the graph we search over. With a uniform cost of 1
// per edge this degenerates into plain breadth-first search and keeps the
// usual shortest-distance guarantee.
type DijkstraSource[T any] interface {
	GetNeighbors(node T) []T
	GetCost(currentNode T, neighbor T) float64
}

func Dijkstra[T comparable](source *PqItem[T], maxCost float64, dataSource DijkstraSource[T]) (dist map[T]float64, prev map[T]T) {
	dist = make(map[T]float64)
	prev = make(map[T]T)
	existingNodes := make(map[T]PathNode[T])
	dist[source.GetValue()] = 0
	getDist := func(n T) float64 {
		if d, ok := dist[n]; ok {
			return d
		}
		return math.MaxFloat64
	}
	Q := NewPriorityQueue([]PathNode[T]{source})
	for Q.Len() > 0 {
		currentNode := heap.Pop(&Q).(PathNode[T])
		for _, n := range dataSource.GetNeighbors(currentNode.GetValue()) {
			neighbor := n
			neighborDist := getDist(currentNode.GetValue()) + dataSource.GetCost(currentNode.GetValue(), neighbor)
			oldNeighborDist := getDist(neighbor)
			if neighborDist <= maxCost && neighborDist < oldNeighborDist {
				if existingNode, ok := existingNodes[neighbor]; ok {
					existingNode.SetPriority(neighborDist)
					if existingNode.GetIndex() >= 0 {
						heap.Fix(&Q, existingNode.GetIndex())
					} else {
						heap.Push(&Q, existingNode)
					}
				} else {
					neighborNode := NewNode(neighbor)
					neighborNode.SetPriority(neighborDist)
					existingNodes[neighbor] = neighborNode
					heap.Push(&Q, neighborNode)
				}
				dist[neighbor] = neighborDist
				prev[neighbor] = currentNode.GetValue()
			}
		}
	}
	return
}
