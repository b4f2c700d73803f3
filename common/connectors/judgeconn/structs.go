package judgeconn

import "fmt"

// Job is one unit of remote execution: run the source against one stdin.
type Job struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

// Token is the judge's opaque handle for a queued job.
type Token string

type Status struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// CaseStatus is the judge's view of one job at poll time. Time is a
// decimal-seconds string and Memory an integer kilobyte count; both are
// absent until the job ran.
type CaseStatus struct {
	Token         Token   `json:"token"`
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
	Status        Status  `json:"status"`
	Time          *string `json:"time"`
	Memory        *int    `json:"memory"`
}

func (s CaseStatus) String() string {
	return fmt.Sprintf("token: %s status: %s", s.Token, s.Status.Description)
}

type batchSubmitRequest struct {
	Submissions []Job `json:"submissions"`
}

type submitResponse struct {
	Token Token `json:"token"`
}

type batchPollResponse struct {
	Submissions []CaseStatus `json:"submissions"`
}
