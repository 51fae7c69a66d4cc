// Package planner turns a task prompt into an execution plan: a
// deterministic size estimate, a chunk/no-chunk recommendation with
// extracted subtask prompts, and an optional dependency analysis over the
// extracted subtasks. No LLM is involved; every decision is a keyword or
// shape heuristic so the same prompt always yields the same plan.
package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/errcode"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// Planner produces execution plans from prompts.
type Planner struct {
	cfg *config.PlannerConfig
}

// New creates a planner. A nil config falls back to the built-in defaults.
func New(cfg *config.PlannerConfig) *Planner {
	if cfg == nil {
		cfg = config.DefaultPlannerConfig()
	}
	return &Planner{cfg: cfg}
}

// Plan analyzes the prompt and returns the full execution plan for a task.
func (p *Planner) Plan(taskID, prompt string) (*models.ExecutionPlan, error) {
	if prompt == "" {
		return nil, errcode.New(errcode.CodeTaskDecomposition, "cannot plan an empty prompt").
			WithDetail("task_id", taskID)
	}

	est := EstimateSize(prompt)
	rec := p.Recommend(prompt, est)

	plan := &models.ExecutionPlan{
		PlanID:                 uuid.New().String(),
		TaskID:                 taskID,
		SizeEstimation:         est,
		ChunkingRecommendation: rec,
		CreatedAt:              time.Now().UTC(),
	}

	if rec.ShouldChunk && p.cfg.DependencyAnalysisEnabled() {
		plan.DependencyAnalysis = AnalyzeDependencies(rec.SubtaskPrompts)
	}

	plan.ExecutionStrategy = strategyFor(rec, plan.DependencyAnalysis)
	return plan, nil
}

// strategyFor maps the chunking recommendation and dependency analysis to
// the overall execution strategy. Mixed means ordered groups whose members
// run concurrently; it requires detected edges plus residual parallelism.
func strategyFor(rec models.ChunkingRecommendation, deps *models.DependencyAnalysis) models.ExecutionStrategy {
	if !rec.ShouldChunk {
		return models.StrategySingle
	}
	if deps != nil && !deps.HasCycles && len(deps.Edges) > 0 {
		multiMember := false
		for _, group := range deps.ParallelGroups {
			if len(group) > 1 {
				multiMember = true
				break
			}
		}
		if multiMember && len(deps.ParallelGroups) > 1 {
			return models.StrategyMixed
		}
	}
	if rec.ExecutionMode == models.ExecutionModeSequential {
		return models.StrategySequential
	}
	return models.StrategyParallel
}
