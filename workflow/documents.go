package workflow

import (
	"fmt"

	"github.com/intelia/rfpaccel/docs"
	"github.com/intelia/rfpaccel/genai"
)

// questionBlocks lays out the follow-up questions document, grouping
// questions by category in first-appearance order.
func questionBlocks(clientName, rfpTitle string, questions []genai.Question) []docs.Block {
	blocks := []docs.Block{
		{Type: docs.Heading1, Text: fmt.Sprintf("Follow-up Questions: %v", clientName)},
		{Type: docs.Heading2, Text: rfpTitle},
		{Type: docs.Paragraph, Text: "The following questions have been identified to clarify requirements and ensure a comprehensive proposal response:"},
	}
	var order []string
	grouped := map[string][]genai.Question{}
	for _, question := range questions {
		category := question.Category
		if category == "" {
			category = "General"
		}
		if _, ok := grouped[category]; !ok {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], question)
	}
	for _, category := range order {
		blocks = append(blocks, docs.Block{Type: docs.Heading3, Text: category})
		for _, question := range grouped[category] {
			blocks = append(blocks, docs.Block{Type: docs.Bullet, Text: question.Question})
			if question.Rationale != "" {
				blocks = append(blocks, docs.Block{Type: docs.Paragraph, Text: "Rationale: " + question.Rationale})
			}
		}
	}
	return blocks
}

// answerBlocks lays out the draft answers document.
func answerBlocks(clientName, rfpTitle string, answers []genai.DraftAnswer) []docs.Block {
	blocks := []docs.Block{
		{Type: docs.Heading1, Text: fmt.Sprintf("Draft RFP Responses: %v", clientName)},
		{Type: docs.Heading2, Text: rfpTitle},
		{Type: docs.Paragraph, Text: "Note: These are draft responses based on standard templates. Please review and customize as needed."},
	}
	for i, answer := range answers {
		blocks = append(blocks,
			docs.Block{Type: docs.Heading3, Text: fmt.Sprintf("Question %v: %v", i+1, answer.Question)},
			docs.Block{Type: docs.Paragraph, Text: answer.DraftAnswer},
		)
		if answer.Confidence != "" {
			blocks = append(blocks, docs.Block{Type: docs.Paragraph, Text: "Confidence: " + answer.Confidence})
		}
	}
	return blocks
}

// planBlocks lays out the preliminary project plan document.
func planBlocks(clientName, rfpTitle string, plan *genai.Plan) []docs.Block {
	blocks := []docs.Block{
		{Type: docs.Heading1, Text: fmt.Sprintf("Draft Project Plan: %v", clientName)},
		{Type: docs.Heading2, Text: rfpTitle},
	}
	if plan == nil {
		return blocks
	}
	if timeline := plan.Timeline; timeline != nil {
		blocks = append(blocks, docs.Block{Type: docs.Heading3, Text: "Project Timeline"})
		if timeline.SubmissionDeadline != "" {
			blocks = append(blocks, docs.Block{Type: docs.Bullet, Text: "Submission deadline: " + timeline.SubmissionDeadline})
		}
		if timeline.ProjectStart != "" {
			blocks = append(blocks, docs.Block{Type: docs.Bullet, Text: "Project start: " + timeline.ProjectStart})
		}
		if timeline.ProjectEnd != "" {
			blocks = append(blocks, docs.Block{Type: docs.Bullet, Text: "Project end: " + timeline.ProjectEnd})
		}
		if timeline.Duration != "" {
			blocks = append(blocks, docs.Block{Type: docs.Bullet, Text: "Duration: " + timeline.Duration})
		}
		for _, keyDate := range timeline.KeyDates {
			blocks = append(blocks, docs.Block{Type: docs.Bullet, Text: fmt.Sprintf("%v: %v", keyDate.Event, keyDate.Date)})
		}
	}
	if len(plan.Deliverables) > 0 {
		blocks = append(blocks, docs.Block{Type: docs.Heading3, Text: "Key Deliverables"})
		for _, deliverable := range plan.Deliverables {
			blocks = append(blocks, docs.Block{Type: docs.Numbered, Text: deliverable})
		}
	}
	if len(plan.Phases) > 0 {
		blocks = append(blocks, docs.Block{Type: docs.Heading3, Text: "Project Phases"})
		for _, phase := range plan.Phases {
			blocks = append(blocks, docs.Block{Type: docs.Heading3, Text: phase.Name})
			duration := phase.Duration
			if duration == "" {
				duration = "TBD"
			}
			blocks = append(blocks, docs.Block{Type: docs.Paragraph, Text: "Duration: " + duration})
			for _, task := range phase.Tasks {
				blocks = append(blocks, docs.Block{Type: docs.Bullet, Text: task})
			}
		}
	}
	if len(plan.Assumptions) > 0 {
		blocks = append(blocks, docs.Block{Type: docs.Heading3, Text: "Assumptions"})
		for _, assumption := range plan.Assumptions {
			blocks = append(blocks, docs.Block{Type: docs.Bullet, Text: assumption})
		}
	}
	return blocks
}
