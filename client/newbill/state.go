package newbill

import "fmt"

// State is the lifecycle position of one new bill form.
type State int

const (
	Empty State = iota
	Uploading
	FileStaged
	FileRejected
	UploadFailed
	Submitting
	Persisted
	SubmitFailed
)

var stateNames = map[State]string{
	Empty:        "empty",
	Uploading:    "uploading",
	FileStaged:   "file_staged",
	FileRejected: "file_rejected",
	UploadFailed: "upload_failed",
	Submitting:   "submitting",
	Persisted:    "persisted",
	SubmitFailed: "submit_failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var transitions = map[State][]State{
	Empty:        {Uploading, FileRejected},
	Uploading:    {FileStaged, UploadFailed},
	FileStaged:   {Submitting, Uploading, FileRejected},
	FileRejected: {Uploading, FileRejected},
	UploadFailed: {Uploading, FileRejected},
	Submitting:   {Persisted, SubmitFailed},
	SubmitFailed: {Submitting, Uploading, FileRejected},
	Persisted:    {Submitting, Uploading, FileRejected},
}

// Transition checks that a form in from may move to to.
func Transition(from, to State) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("cannot transition form from %s to %s", from, to)
}
