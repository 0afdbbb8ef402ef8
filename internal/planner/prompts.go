package planner

import (
	"fmt"
	"strings"

	"github.com/nishant/yojana/internal/workspace"
)

const planSystemPrompt = `You are an expert software engineer who produces implementation plans for code changes.

Respond with pure JSON only. No prose, no markdown fences, no commentary. The JSON object must match this exact schema:

{
  "summary": "one-paragraph overview of the approach",
  "steps": [
    {
      "step": 1,
      "action": "short imperative title",
      "description": "what this step does in detail",
      "files": ["relative/path/to/file"],
      "reasoning": "why this step is needed and how to validate it"
    }
  ],
  "estimatedComplexity": "low" | "medium" | "high",
  "prerequisites": ["anything that must be true before starting"],
  "risks": ["what could go wrong"]
}

Rules:
- Number steps from 1, strictly increasing.
- Order steps dependency-first: types and data structures, then utilities, then features, then interface/CLI wiring, then docs and tests.
- Every step's reasoning must include a note on how to validate the step.
- "files" lists the relative paths the step creates or modifies. A step with no file changes (verification, documentation review) uses an empty list.
- Use only relative paths within the project.`

// BuildPlanPrompts builds the system/user prompt pair for plan generation.
// Pure over its inputs plus one read of the workspace tree; filesystem
// errors propagate from the workspace.
func BuildPlanPrompts(userInput string, referencedFiles []string, ws *workspace.Workspace) (PromptPair, error) {
	allFiles, err := ws.ListFiles()
	if err != nil {
		return PromptPair{}, err
	}
	tree, err := ws.RenderTree()
	if err != nil {
		return PromptPair{}, err
	}

	relevant := FilterRelevantFiles(userInput, referencedFiles, allFiles)
	intent := ClassifyIntent(userInput)

	var user strings.Builder
	fmt.Fprintf(&user, "## Change request\n\n%s\n\n", userInput)
	fmt.Fprintf(&user, "## Intent\n\n%s\n\n", intent)
	fmt.Fprintf(&user, "## Project structure\n\n%s\n", tree)

	if len(relevant) > 0 {
		user.WriteString("\n## Likely relevant files\n\n")
		for _, f := range relevant {
			fmt.Fprintf(&user, "- %s\n", f)
		}
		user.WriteString("\nPrefer paths from this list when they fit the request.\n")
	}

	user.WriteString("\nRespond with the JSON plan only.")

	return PromptPair{System: planSystemPrompt, User: user.String()}, nil
}

const fileContentSystemPrompt = `You are an expert software engineer who writes complete source files.

Emit only the raw file content. No markdown fences, no commentary, no explanations before or after. The output is written to disk verbatim.`

// buildCreatePrompts asks the model for the full content of a new file.
func buildCreatePrompts(step PlanStep, path, tree string) PromptPair {
	var user strings.Builder
	fmt.Fprintf(&user, "Create the file %s as part of this step:\n\n", path)
	fmt.Fprintf(&user, "Action: %s\nDescription: %s\nReasoning: %s\n\n", step.Action, step.Description, step.Reasoning)
	fmt.Fprintf(&user, "## Project structure\n\n%s\n", tree)
	user.WriteString("\nReturn the complete content of the new file and nothing else.")

	return PromptPair{System: fileContentSystemPrompt, User: user.String()}
}

// buildModifyPrompts asks the model for a whole-file rewrite of an existing
// file. No diffs: the returned content replaces the file in full.
func buildModifyPrompts(step PlanStep, path, currentContent string) PromptPair {
	var user strings.Builder
	fmt.Fprintf(&user, "Modify the file %s as part of this step:\n\n", path)
	fmt.Fprintf(&user, "Action: %s\nDescription: %s\nReasoning: %s\n\n", step.Action, step.Description, step.Reasoning)
	fmt.Fprintf(&user, "## Current content of %s\n\n%s\n", path, currentContent)
	user.WriteString("\nReturn the complete modified file. Not a diff, not a fragment: the entire file as it should exist after the change, and nothing else.")

	return PromptPair{System: fileContentSystemPrompt, User: user.String()}
}
