package planner

import (
	"fmt"
	"strings"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

// prepInput is the precomputed view of the plan's batchable recipes that the
// prep rules match against. Recipes are already de-duplicated by name.
type prepInput struct {
	recipes   []domain.Recipe
	rice      []domain.Recipe
	egg       []domain.Recipe
	chicken   []domain.Recipe
	vegetable []domain.Recipe
	broccoli  []domain.Recipe
}

// taskSpec is a prep task before the running clock assigns its start time.
type taskSpec struct {
	duration    int
	task        string
	description string
	recipes     []string
}

// prepRules run in fixed order; each returns zero or more tasks. Keeping the
// trigger conditions as one enumerated table makes every heuristic testable
// on its own.
var prepRules = []func(in prepInput) []taskSpec{
	riceRule,
	boiledEggRule,
	chickenPrepRule,
	vegetableCutRule,
	mainCookingRule,
	broccoliRule,
}

// BuildPrepTasks decomposes the plan's distinct batchable recipes into a
// sequenced timeline. Returns the tasks with HH:MM start times and the total
// duration in minutes.
func BuildPrepTasks(batchable []domain.Recipe) ([]domain.PrepTask, int) {
	in := newPrepInput(batchable)

	tasks := []domain.PrepTask{}
	clock := 0

	for _, rule := range prepRules {
		for _, spec := range rule(in) {
			tasks = append(tasks, domain.PrepTask{
				Time:            formatClock(clock),
				DurationMinutes: spec.duration,
				Task:            spec.task,
				Description:     spec.description,
				Recipes:         spec.recipes,
			})
			clock += spec.duration
		}
	}

	return tasks, clock
}

func newPrepInput(batchable []domain.Recipe) prepInput {
	in := prepInput{recipes: batchable}
	for _, r := range batchable {
		if r.HasTag("rice") || strings.Contains(r.Name, "米") {
			in.rice = append(in.rice, r)
		}
		if r.HasTag("egg") {
			in.egg = append(in.egg, r)
		}
		if r.HasTag("chicken") || strings.Contains(r.Name, "鶏") {
			in.chicken = append(in.chicken, r)
		}
		if r.HasTag("vegetable") || strings.Contains(r.Name, "野菜") {
			in.vegetable = append(in.vegetable, r)
		}
		if strings.Contains(r.Name, "ブロッコリー") {
			in.broccoli = append(in.broccoli, r)
		}
	}
	return in
}

// Rice goes first so the cooker runs while everything else is prepped. The
// count heuristic fires even without an explicit rice recipe on big weeks.
func riceRule(in prepInput) []taskSpec {
	if len(in.rice) == 0 && len(in.recipes) <= 5 {
		return nil
	}
	return []taskSpec{{
		duration:    5,
		task:        "米を炊く（2.1kg）",
		description: "炊飯器にセット。炊き上がり後、容器に分けて冷凍",
		recipes:     recipeNamesOr(in.rice, []string{"白米", "玄米"}),
	}}
}

func boiledEggRule(in prepInput) []taskSpec {
	if len(in.egg) == 0 {
		return nil
	}
	hasBoiledEgg := false
	for _, r := range in.egg {
		if strings.Contains(r.Name, "ゆで卵") {
			hasBoiledEgg = true
			break
		}
	}
	if !hasBoiledEgg {
		return nil
	}
	return []taskSpec{{
		duration:    12,
		task:        "ゆで卵作成（12個）",
		description: "沸騰後8分、冷水で冷やす（冷蔵5日間保存可）",
		recipes:     []string{"ゆで卵", "卵サラダ"},
	}}
}

func chickenPrepRule(in prepInput) []taskSpec {
	if len(in.chicken) == 0 {
		return nil
	}
	amount := len(in.chicken) * 400
	if amount > 1200 {
		amount = 1200
	}
	return []taskSpec{{
		duration:    10,
		task:        fmt.Sprintf("鶏むね下処理（%dg）", amount),
		description: "1cm厚にカット、塩麹に漬ける（冷蔵5日間保存可）",
		recipes:     recipeNames(in.chicken),
	}}
}

func vegetableCutRule(in prepInput) []taskSpec {
	if len(in.vegetable) <= 2 && len(in.recipes) <= 4 {
		return nil
	}
	return []taskSpec{{
		duration:    15,
		task:        "野菜を切る",
		description: "玉ねぎ、人参、ブロッコリーをカット。保存容器へ",
		recipes:     recipeNamesOr(in.vegetable, []string{"サラダ", "付け合わせ"}),
	}}
}

// Main cooking handles at most two chicken recipes, each capped at 30 min.
func mainCookingRule(in prepInput) []taskSpec {
	mains := in.chicken
	if len(mains) > 2 {
		mains = mains[:2]
	}

	specs := make([]taskSpec, 0, len(mains))
	for _, r := range mains {
		duration := r.CookingTime
		if duration > 30 {
			duration = 30
		}
		specs = append(specs, taskSpec{
			duration:    duration,
			task:        fmt.Sprintf("%s（調理）", r.Name),
			description: "フライパンで両面焼く。冷蔵保存容器へ",
			recipes:     []string{r.Name},
		})
	}
	return specs
}

// Broccoli blanching is always last so it comes off the stove right before
// everything is packed away.
func broccoliRule(in prepInput) []taskSpec {
	if len(in.broccoli) == 0 && len(in.vegetable) == 0 {
		return nil
	}
	return []taskSpec{{
		duration:    8,
		task:        "ブロッコリー茹で（400g）",
		description: "沸騰後3分、冷水で冷やす（冷蔵4日間保存可）",
		recipes:     recipeNamesOr(in.broccoli, []string{"サラダ", "付け合わせ"}),
	}}
}

func recipeNames(recipes []domain.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	return names
}

func recipeNamesOr(recipes []domain.Recipe, fallback []string) []string {
	if len(recipes) == 0 {
		return fallback
	}
	return recipeNames(recipes)
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
