package workflow

// Context keys seeded by the orchestrator before the first step runs.
const (
	KeyRFPFiles    = "rfp_files"
	KeyClientName  = "client_name"
	KeyRFPTitle    = "rfp_title"
	KeyDate        = "date"
	KeyTeamMembers = "team_members"
	KeyProject     = "project"
)

// Context keys contributed by ingestion.
const (
	KeyFolderID            = "folder_id"
	KeyFolderURL           = "folder_url"
	KeyFolderName          = "folder_name"
	KeySubfolders          = "subfolders"
	KeyUploadedFiles       = "uploaded_files"
	KeyExtractedClientName = "extracted_client_name"
	KeyExtractedRFPTitle   = "extracted_rfp_title"
)

// Context keys contributed by knowledge-base creation.
const (
	KeyKnowledgeBaseID = "knowledge_base_id"
	KeyGroundingSource = "grounding_source"
)

// Context keys contributed by question generation.
const (
	KeyQuestions       = "questions"
	KeyQuestionsDocID  = "questions_doc_id"
	KeyQuestionsDocURL = "questions_doc_url"
)

// Context keys contributed by answer drafting.
const (
	KeyDraftAnswers  = "draft_answers"
	KeyAnswersDocID  = "answers_doc_id"
	KeyAnswersDocURL = "answers_doc_url"
)

// Context keys contributed by project planning.
const (
	KeyTimelineData = "timeline_data"
	KeyProjectPlan  = "project_plan"
	KeyPlanDocID    = "plan_doc_id"
	KeyPlanDocURL   = "plan_doc_url"
)

// Context keys contributed by collaborator validation.
const (
	KeyValidatedTeamMembers = "validated_team_members"
	KeyInvalidTeamMembers   = "invalid_team_members"
	KeyAwaitingTeamMembers  = "awaiting_team_members"
)

// Context keys contributed by distribution.
const (
	KeyDistributionComplete = "distribution_complete"
	KeyFolderShareResults   = "folder_share_results"
	KeyEmailResults         = "email_results"
)
