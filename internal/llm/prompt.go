// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"fmt"
	"text/template"
)

// similarTopicsTmpl asks for candidate topics in a parseable numbered list.
var similarTopicsTmpl = template.Must(template.New("similar").Parse(`Generate {{.Count}} research topics that are similar to, but distinct from, the following topic: "{{.Topic}}"

Present them as a numbered list, one topic per line, in the form:
1. Topic title - one or two sentence description

Each topic should be original and feasible for an independent research project. Do not include any text before or after the list.`))

// analyzeTmpl asks for a structured analysis of the topic.
var analyzeTmpl = template.Must(template.New("analyze").Parse(`Provide a detailed analysis of the following research topic: "{{.Topic}}"

Structure the analysis as:

1. Definition: a clear definition of the topic
2. Current significance: why the topic matters in academia and industry today
3. Scientific and societal problems: the main open problems and issues
4. Prior work and state of the art: key studies and progress so far
5. Sources and references: related literature (author, title, year)

Provide an in-depth analysis.`))

// nicheTopicsTmpl asks for under-explored adjacent topics.
var nicheTopicsTmpl = template.Must(template.New("niche").Parse(`Propose {{.Count}} niche research topics related to the following topic: "{{.Topic}}"

A niche topic is an area that has not been studied thoroughly yet but has real research potential. For each one, in a numbered list, give:
1. Topic title - why it is a niche, its potential impact, and a suggested research method

Each proposal must be original and actionable.`))

// outlineTmpl asks for a full paper structure for a selected topic.
var outlineTmpl = template.Must(template.New("outline").Parse(`Generate an academic paper structure for the following research topic: "{{.Topic}}"

Write a detailed structure containing these sections:

1. Title: a clear, specific paper title
2. Abstract: purpose, method, results, and significance in 200-250 words
3. Introduction: background, importance, research question, and hypothesis
4. Methods: the proposed research method and experimental design
5. Expected results: what the experiments are expected to show
6. Conclusion: significance of the work and directions for future research
7. References: 5-7 related works (author, title, journal, year)

Write each section with concrete, academic content, as in a real paper.`))

func renderTopicPrompt(tmpl *template.Template, topic string, count int) (string, error) {
	var b bytes.Buffer
	err := tmpl.Execute(&b, struct {
		Topic string
		Count int
	}{Topic: topic, Count: count})
	if err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
