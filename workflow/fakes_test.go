package workflow

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/intelia/rfpaccel/docs"
	"github.com/intelia/rfpaccel/genai"
	"github.com/intelia/rfpaccel/mail"
	"github.com/intelia/rfpaccel/search"
	"github.com/intelia/rfpaccel/store"
)

// callLog records collaborator calls across all fakes so tests can assert
// ordering and absence.
type callLog struct {
	mux   sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) names() []string {
	l.mux.Lock()
	defer l.mux.Unlock()
	return append([]string{}, l.calls...)
}

func (l *callLog) count(name string) int {
	result := 0
	for _, call := range l.names() {
		if call == name {
			result++
		}
	}
	return result
}

type fakeStore struct {
	log        *callLog
	missing    map[string]bool
	grantErr   error
	workspaces []string
	uploads    int
	grants     map[string][]string
}

func (f *fakeStore) CreateWorkspace(_ context.Context, name string) (*store.Workspace, error) {
	f.log.add("store.CreateWorkspace")
	f.workspaces = append(f.workspaces, name)
	base := "mem://localhost/rfpaccel/workspaces/" + name
	return &store.Workspace{
		Folder: store.Folder{ID: fmt.Sprintf("ws-%v", len(f.workspaces)), URL: base, Name: name},
		Subfolders: store.Subfolders{
			SourceDocuments: store.Folder{ID: "sub-source", URL: base + "/00_Source_Documents", Name: "00_Source_Documents"},
			Analysis:        store.Folder{ID: "sub-analysis", URL: base + "/01_Analysis", Name: "01_Analysis"},
			Planning:        store.Folder{ID: "sub-planning", URL: base + "/02_Planning", Name: "02_Planning"},
			Collaboration:   store.Folder{ID: "sub-collab", URL: base + "/03_Collaboration", Name: "03_Collaboration"},
		},
	}, nil
}

func (f *fakeStore) UploadFile(_ context.Context, path, folderURL string) (*store.File, error) {
	f.log.add("store.UploadFile")
	f.uploads++
	name := path[strings.LastIndex(path, "/")+1:]
	return &store.File{ID: fmt.Sprintf("file-%v", f.uploads), URL: folderURL + "/" + name, Name: name}, nil
}

func (f *fakeStore) GrantAccess(_ context.Context, resource string, addresses []string, role string) ([]store.Grant, error) {
	f.log.add("store.GrantAccess")
	if f.grantErr != nil {
		return nil, f.grantErr
	}
	if f.grants == nil {
		f.grants = map[string][]string{}
	}
	f.grants[resource] = append(f.grants[resource], addresses...)
	grants := make([]store.Grant, 0, len(addresses))
	for _, address := range addresses {
		grants = append(grants, store.Grant{Address: address, Status: store.GrantGranted, Detail: role})
	}
	return grants, nil
}

func (f *fakeStore) Metadata(_ context.Context, resource string) (*store.Object, error) {
	f.log.add("store.Metadata")
	if f.missing[resource] {
		return nil, fmt.Errorf("not found: %v", resource)
	}
	return &store.Object{URL: resource, Name: resource, Size: 128}, nil
}

type fakeDocs struct {
	log     *callLog
	created int
	blocks  map[string][]docs.Block
}

func (f *fakeDocs) CreateDocument(_ context.Context, title, folderURL string) (*docs.Document, error) {
	f.log.add("docs.CreateDocument")
	f.created++
	return &docs.Document{
		ID:    fmt.Sprintf("doc-%v", f.created),
		URL:   folderURL + "/" + title + ".md",
		Title: title,
	}, nil
}

func (f *fakeDocs) WriteBlocks(_ context.Context, docURL string, blocks []docs.Block, replace bool) error {
	f.log.add("docs.WriteBlocks")
	if f.blocks == nil {
		f.blocks = map[string][]docs.Block{}
	}
	f.blocks[docURL] = blocks
	return nil
}

type fakeGenerator struct {
	log          *callLog
	questionsErr error
	gotGrounding []string
	gotQuestions []string
}

func (f *fakeGenerator) GenerateQuestions(_ context.Context, documentText string, minQuestions, maxQuestions int, groundingSource string) ([]genai.Question, error) {
	f.log.add("generator.GenerateQuestions")
	if f.questionsErr != nil {
		return nil, f.questionsErr
	}
	f.gotGrounding = append(f.gotGrounding, groundingSource)
	return []genai.Question{
		{Category: "Technical", Question: "Which cloud regions are in scope?", Rationale: "The document names no regions."},
		{Category: "Timeline", Question: "Is the go-live date fixed?"},
	}, nil
}

func (f *fakeGenerator) DraftAnswers(_ context.Context, questions []string, companyInfo interface{}, knowledge, groundingSource string) ([]genai.DraftAnswer, error) {
	f.log.add("generator.DraftAnswers")
	f.gotGrounding = append(f.gotGrounding, groundingSource)
	f.gotQuestions = questions
	answers := make([]genai.DraftAnswer, 0, len(questions))
	for _, question := range questions {
		answers = append(answers, genai.DraftAnswer{Question: question, DraftAnswer: "Drafted response.", Confidence: "Medium"})
	}
	return answers, nil
}

func (f *fakeGenerator) ExtractTimeline(_ context.Context, documentText string) (*genai.Timeline, error) {
	f.log.add("generator.ExtractTimeline")
	return &genai.Timeline{SubmissionDeadline: "2026-03-01", Duration: "6 months"}, nil
}

func (f *fakeGenerator) BuildPlan(_ context.Context, timeline *genai.Timeline, defaultPhases []string) (*genai.Plan, error) {
	f.log.add("generator.BuildPlan")
	phases := make([]genai.Phase, 0, len(defaultPhases))
	for _, name := range defaultPhases {
		phases = append(phases, genai.Phase{Name: name})
	}
	return &genai.Plan{Phases: phases, Deliverables: []string{"Proposal"}, Timeline: timeline}, nil
}

type fakeIndexer struct {
	log        *callLog
	noEndpoint bool
	created    []string
	imported   map[string]string
}

func (f *fakeIndexer) CreateIndex(_ context.Context, name string) (*search.Index, error) {
	f.log.add("index.CreateIndex")
	id := fmt.Sprintf("kb-%v", len(f.created)+1)
	f.created = append(f.created, id)
	return &search.Index{ID: id, Name: name}, nil
}

func (f *fakeIndexer) Import(_ context.Context, indexID, folderURL string) error {
	f.log.add("index.Import")
	if f.imported == nil {
		f.imported = map[string]string{}
	}
	f.imported[indexID] = folderURL
	return nil
}

func (f *fakeIndexer) Endpoint(indexID string) string {
	if f.noEndpoint {
		return ""
	}
	return indexID
}

type fakeMailer struct {
	log      *callLog
	subjects []string
	bodies   []string
	sent     [][]string
}

func (f *fakeMailer) SendBulk(_ context.Context, to []string, subject, body string, html bool) []mail.SendResult {
	f.log.add("mailer.SendBulk")
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, body)
	f.sent = append(f.sent, to)
	results := make([]mail.SendResult, 0, len(to))
	for _, address := range to {
		results = append(results, mail.SendResult{Address: address, Status: mail.StatusSent})
	}
	return results
}

type fakeParser struct {
	log   *callLog
	texts map[string]string
}

const defaultRFPText = `CLOUD MIGRATION SERVICES RFP
Acme Retail Group invites proposals for a cloud migration program.

Deadline: March 1, 2026

1. Describe your company's experience with large retail migrations in production environments.
2. What is your proposed approach to zero-downtime cutover of the order pipeline?
Provide details about the team structure and the certifications your engineers hold today.
`

func (f *fakeParser) Text(_ context.Context, location string) (string, error) {
	f.log.add("parser.Text")
	if text, ok := f.texts[location]; ok {
		return text, nil
	}
	return defaultRFPText, nil
}
