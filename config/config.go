// Package config loads accelerator configuration from YAML with embedded
// defaults. Files are addressed by afs URL so file://, mem:// and cloud
// schemes all work.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	envWorkspace = "RFPACCEL_WORKSPACE"

	defaultRootDir = ".rfpaccel"
)

// Config is the root configuration document.
type Config struct {
	Project  string   `yaml:"project,omitempty" json:"project,omitempty"`
	LogLevel string   `yaml:"log_level,omitempty" json:"logLevel,omitempty"`
	Store    Store    `yaml:"store,omitempty" json:"store,omitempty"`
	Model    Model    `yaml:"model,omitempty" json:"model,omitempty"`
	Search   Search   `yaml:"search,omitempty" json:"search,omitempty"`
	Mail     Mail     `yaml:"mail,omitempty" json:"mail,omitempty"`
	Company  Company  `yaml:"company,omitempty" json:"company,omitempty"`
	Workflow Workflow `yaml:"workflow,omitempty" json:"workflow,omitempty"`
}

// Store configures the document store.
type Store struct {
	// Root is the afs URL under which workspaces are created. Empty
	// resolves to $RFPACCEL_WORKSPACE or $HOME/.rfpaccel/workspaces.
	Root           string `yaml:"root,omitempty" json:"root,omitempty"`
	FolderTemplate string `yaml:"folder_template,omitempty" json:"folderTemplate,omitempty"`
}

// Model configures the generative model provider.
type Model struct {
	Provider    string  `yaml:"provider,omitempty" json:"provider,omitempty"`
	Model       string  `yaml:"model,omitempty" json:"model,omitempty"`
	APIKeyURL   string  `yaml:"api_key_url,omitempty" json:"apiKeyURL,omitempty"`
	URL         string  `yaml:"url,omitempty" json:"url,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	MaxTokens   int     `yaml:"max_tokens,omitempty" json:"maxTokens,omitempty"`
}

// Search configures the knowledge-base index.
type Search struct {
	// Root is a local directory holding persisted indexes. Empty keeps
	// indexes in memory for the lifetime of the process.
	Root string `yaml:"root,omitempty" json:"root,omitempty"`
}

// Mail configures the SMTP messaging service. Disabled by default so a
// fresh install never emails anyone by accident.
type Mail struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	Host        string `yaml:"host,omitempty" json:"host,omitempty"`
	Port        int    `yaml:"port,omitempty" json:"port,omitempty"`
	Username    string `yaml:"username,omitempty" json:"username,omitempty"`
	PasswordURL string `yaml:"password_url,omitempty" json:"passwordURL,omitempty"`
	From        string `yaml:"from,omitempty" json:"from,omitempty"`
}

// Company carries the organization profile injected into answer prompts.
type Company struct {
	Name           string   `yaml:"name,omitempty" json:"name,omitempty"`
	Specialties    []string `yaml:"specialties,omitempty" json:"specialties,omitempty"`
	Strengths      []string `yaml:"strengths,omitempty" json:"strengths,omitempty"`
	Experience     string   `yaml:"experience,omitempty" json:"experience,omitempty"`
	Certifications []string `yaml:"certifications,omitempty" json:"certifications,omitempty"`
	ContactEmail   string   `yaml:"contact_email,omitempty" json:"contactEmail,omitempty"`
}

// Workflow tunes per-step behavior.
type Workflow struct {
	QuestionGeneration QuestionGeneration `yaml:"question_generation,omitempty" json:"questionGeneration,omitempty"`
	ProjectPlanning    ProjectPlanning    `yaml:"project_planning,omitempty" json:"projectPlanning,omitempty"`
	Distribution       Distribution       `yaml:"distribution,omitempty" json:"distribution,omitempty"`
}

// QuestionGeneration bounds the clarification-question list.
type QuestionGeneration struct {
	MinQuestions int `yaml:"min_questions,omitempty" json:"minQuestions,omitempty"`
	MaxQuestions int `yaml:"max_questions,omitempty" json:"maxQuestions,omitempty"`
}

// ProjectPlanning supplies phases merged in when extraction comes back thin.
type ProjectPlanning struct {
	DefaultPhases []string `yaml:"default_phases,omitempty" json:"defaultPhases,omitempty"`
}

// Distribution controls access roles granted to collaborators.
type Distribution struct {
	ShareRole         string `yaml:"share_role,omitempty" json:"shareRole,omitempty"`
	KnowledgeBaseRole string `yaml:"knowledge_base_role,omitempty" json:"knowledgeBaseRole,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Store: Store{
			FolderTemplate: "{client_name} - {rfp_title} - {date}",
		},
		Model: Model{
			Provider:    "gemini",
			Model:       "gemini-2.0-flash",
			Temperature: 0.2,
			MaxTokens:   8192,
		},
		Mail: Mail{
			Port: 587,
		},
		Company: Company{
			Name: "Intelia",
		},
		Workflow: Workflow{
			QuestionGeneration: QuestionGeneration{
				MinQuestions: 10,
				MaxQuestions: 15,
			},
			ProjectPlanning: ProjectPlanning{
				DefaultPhases: []string{
					"Discovery & Requirements",
					"Design & Architecture",
					"Development & Implementation",
					"Testing & QA",
					"Deployment & Training",
					"Support & Maintenance",
				},
			},
			Distribution: Distribution{
				ShareRole:         "writer",
				KnowledgeBaseRole: "viewer",
			},
		},
	}
}

// Load reads YAML from the supplied afs URL and merges it over the
// defaults. An empty URL returns the defaults untouched.
func Load(ctx context.Context, URL string) (*Config, error) {
	cfg := Default()
	if URL == "" {
		return cfg, nil
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	return cfg, nil
}

// WorkspaceRoot resolves the afs URL under which workspaces are created.
// Lookup order: explicit store.root, $RFPACCEL_WORKSPACE, $HOME/.rfpaccel/workspaces.
func (c *Config) WorkspaceRoot() string {
	if root := strings.TrimSpace(c.Store.Root); root != "" {
		return root
	}
	if env := os.Getenv(envWorkspace); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return "file://" + filepath.Join(home, defaultRootDir, "workspaces")
}
