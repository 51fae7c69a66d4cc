package planner

import "github.com/pm-runner/pmrunner/pkg/models"

// AnalyzeDependencies builds ordering edges between extracted subtasks and
// derives a topological order plus parallelizable groups. Edges come from
// ordering cues inside the subtask texts: a subtask that opens with or
// contains a dependency keyword depends on the subtask before it.
//
// Cycles (possible when callers hand in their own edges) flag has_cycles and
// force sequential-by-order execution.
func AnalyzeDependencies(subtasks []string) *models.DependencyAnalysis {
	var edges [][2]int
	for i := 1; i < len(subtasks); i++ {
		if dependencyCuePattern.MatchString(subtasks[i]) {
			edges = append(edges, [2]int{i - 1, i})
		}
	}
	return AnalyzeEdges(len(subtasks), edges)
}

// AnalyzeEdges runs Kahn's algorithm over an explicit edge list. Parallel
// groups are the level sets of the DAG: every member of a group has all its
// dependencies in earlier groups.
func AnalyzeEdges(n int, edges [][2]int) *models.DependencyAnalysis {
	analysis := &models.DependencyAnalysis{Edges: edges}

	indegree := make([]int, n)
	adj := make([][]int, n)
	for _, e := range edges {
		from, to := e[0], e[1]
		if from < 0 || from >= n || to < 0 || to >= n {
			continue
		}
		adj[from] = append(adj[from], to)
		indegree[to]++
	}

	frontier := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			frontier = append(frontier, i)
		}
	}

	visited := 0
	for len(frontier) > 0 {
		group := append([]int(nil), frontier...)
		analysis.ParallelGroups = append(analysis.ParallelGroups, group)
		analysis.TopologicalOrder = append(analysis.TopologicalOrder, group...)
		visited += len(group)

		var next []int
		for _, node := range group {
			for _, dep := range adj[node] {
				indegree[dep]--
				if indegree[dep] == 0 {
					next = append(next, dep)
				}
			}
		}
		frontier = next
	}

	if visited < n {
		// Unvisitable nodes mean a cycle; fall back to declaration order.
		analysis.HasCycles = true
		analysis.SequentialFallback = true
		analysis.TopologicalOrder = analysis.TopologicalOrder[:0]
		analysis.ParallelGroups = analysis.ParallelGroups[:0]
		for i := 0; i < n; i++ {
			analysis.TopologicalOrder = append(analysis.TopologicalOrder, i)
			analysis.ParallelGroups = append(analysis.ParallelGroups, []int{i})
		}
	}

	return analysis
}
