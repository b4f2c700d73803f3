package status

// Judge status IDs follow the Judge0 numbering. IDs 1 and 2 are the only
// non-terminal ones; everything past Processing means the job finished.
const (
	InQueue           = 1
	Processing        = 2
	Accepted          = 3
	WrongAnswer       = 4
	TimeLimit         = 5
	CompilationErr    = 6
	RuntimeErrSIGSEGV = 7
	RuntimeErrSIGXFSZ = 8
	RuntimeErrSIGFPE  = 9
	RuntimeErrSIGABRT = 10
	RuntimeErrNZEC    = 11
	RuntimeErrOther   = 12
	InternalError     = 13
	ExecFormatError   = 14
)

// TimedOut is assigned by the batch poller when a job never reaches a
// terminal status within the poll budget. The judge itself never produces it.
const TimedOut = -1

const TimedOutDescription = "Execution Timed Out"

// Submission verdicts. The platform collapses every non-accepted outcome into
// Wrong Answer; per-case statuses keep the full judge description.
const (
	SubmissionAccepted    = "Accepted"
	SubmissionWrongAnswer = "Wrong Answer"
)

func Terminal(id int) bool {
	return id >= Accepted || id == TimedOut
}
