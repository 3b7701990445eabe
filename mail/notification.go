package mail

import (
	"fmt"
	"strings"
)

// Resources lists the workflow artifacts linked from a kickoff
// notification. Empty entries are left out of the message.
type Resources struct {
	FolderURL       string
	KnowledgeBase   string
	QuestionsDocURL string
	AnswersDocURL   string
	PlanDocURL      string
}

// KickoffSubject returns the notification subject for a project.
func KickoffSubject(clientName, rfpTitle string) string {
	return fmt.Sprintf("New RFP Project: %v - %v", clientName, rfpTitle)
}

const kickoffHead = `<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.header { background-color: #4285f4; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; }
.resources { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-left: 4px solid #4285f4; }
.resource-link { display: block; margin: 10px 0; color: #4285f4; text-decoration: none; }
.footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 0.9em; color: #666; }
</style>
</head>
<body>
<div class="header"><h1>New RFP Project Initiated</h1></div>
<div class="content">
<h2>Project Details</h2>
`

const kickoffTail = `</div>
<h2>Next Steps</h2>
<ol>
<li>Review the generated follow-up questions</li>
<li>Customize the draft responses</li>
<li>Refine the project plan timeline</li>
<li>Explore the knowledge base</li>
<li>Schedule a kickoff meeting</li>
</ol>
<div class="footer">This project was set up automatically by the RFP Accelerator.</div>
</div>
</body>
</html>
`

// KickoffBody renders the HTML notification sent to validated
// collaborators once a project is distributed.
func KickoffBody(clientName, rfpTitle string, resources *Resources) string {
	builder := strings.Builder{}
	builder.WriteString(kickoffHead)
	builder.WriteString(fmt.Sprintf("<p><strong>Client:</strong> %v</p>\n", clientName))
	builder.WriteString(fmt.Sprintf("<p><strong>RFP Title:</strong> %v</p>\n", rfpTitle))
	builder.WriteString(`<h2>What's Been Done</h2>
<p>The RFP Accelerator has automatically:</p>
<ul>
<li>Created a structured project workspace</li>
<li>Organized all RFP source documents</li>
<li>Generated a searchable knowledge base</li>
<li>Identified critical follow-up questions</li>
<li>Drafted initial RFP responses</li>
<li>Created a preliminary project plan</li>
</ul>
<div class="resources">
<h3>Project Resources</h3>
`)
	if resources != nil {
		writeLink(&builder, resources.FolderURL, "Project Folder")
		if resources.KnowledgeBase != "" {
			builder.WriteString(fmt.Sprintf("<p>Knowledge Base: %v</p>\n", resources.KnowledgeBase))
		}
		writeLink(&builder, resources.QuestionsDocURL, "Follow-up Questions")
		writeLink(&builder, resources.AnswersDocURL, "Draft Responses")
		writeLink(&builder, resources.PlanDocURL, "Project Plan")
	}
	builder.WriteString(kickoffTail)
	return builder.String()
}

func writeLink(builder *strings.Builder, url, label string) {
	if url == "" {
		return
	}
	builder.WriteString(fmt.Sprintf("<a href=%q class=\"resource-link\">%v</a>\n", url, label))
}
