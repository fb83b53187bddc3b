package enhancer

import (
	"fmt"
	"strings"

	"family-task-parser/internal/model"
)

const systemPrompt = `You extract details from one short family task written in Hebrew or English.

RULES:
1. Only use member names and place keys from the lists you are given. Never invent new ones.
2. members: canonical names of everyone the task mentions or clearly implies.
3. location: one place key, or "" if none applies.
4. time: "HH:MM" in 24-hour form, or "" if no time is stated or implied.
5. category: one of the known categories, or "" if none fits.
6. requires_driving: true only when someone must be driven somewhere.
7. confidence: a number between 0 and 1.
8. reasoning: one short sentence.

Return ONLY a JSON object with exactly these keys. No markdown, no code blocks, no explanation text.

EXAMPLE OUTPUT:
{"members":["Alon"],"location":"kindergarten","time":"16:00","category":"kids","requires_driving":true,"confidence":0.8,"reasoning":"Picking a child up from kindergarten in the afternoon."}`

func buildPrompt(in Input, roster model.Roster) string {
	var sb strings.Builder

	sb.WriteString("FAMILY MEMBERS:\n")
	for _, m := range roster.Members {
		fmt.Fprintf(&sb, "- %s", m.Name)
		if spellings := m.Spellings()[1:]; len(spellings) > 0 {
			fmt.Fprintf(&sb, " (also written: %s)", strings.Join(spellings, ", "))
		}
		if m.IsChild {
			sb.WriteString(" [child]")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nPLACES:\n")
	for _, p := range roster.Places {
		fmt.Fprintf(&sb, "- %s: %s\n", p.Key, strings.Join(p.Spellings(), ", "))
	}

	if len(in.Categories) > 0 {
		fmt.Fprintf(&sb, "\nKNOWN CATEGORIES: %s\n", strings.Join(in.Categories, ", "))
	}
	if len(in.RecentTasks) > 0 {
		sb.WriteString("\nRECENT TASKS:\n")
		for _, t := range in.RecentTasks {
			fmt.Fprintf(&sb, "- %s\n", t)
		}
	}

	fmt.Fprintf(&sb, "\nTASK:\n%s\n", in.Text)
	return sb.String()
}
