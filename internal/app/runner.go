package app

import (
	apperrors "github.com/KevinOlvera/fernet-cypher-gui/internal/errors"
)

// Runner executes operations against the shared State on behalf of the GUI.
// Each call runs one operation to completion; the cooperative event loop
// never overlaps two operations.
type Runner struct {
	state    *State
	reporter StatusReporter

	// ConfirmOverwrite is asked before clobbering an existing output file.
	// When nil, existing outputs are never overwritten.
	ConfirmOverwrite func(path string) bool
}

// NewRunner creates a runner reporting through reporter.
func NewRunner(state *State, reporter StatusReporter) *Runner {
	if reporter == nil {
		reporter = NullReporter{}
	}
	return &Runner{state: state, reporter: reporter}
}

// GenerateKey generates a key file named after the state's KeyName.
// The state's passphrase belongs to a selected protected key file and never
// carries over to generation; protected keys are created through the CLI.
func (r *Runner) GenerateKey() error {
	keyName, _, _, _ := r.state.Snapshot()
	r.state.SetWorking(true)
	defer r.state.ResetAfterOperation()

	_, err := GenerateKey(keyName, nil, r.reporter)
	return err
}

// Encrypt encrypts the selected message file with the selected key.
func (r *Runner) Encrypt() error {
	return r.run(Encrypt)
}

// Decrypt decrypts the selected message file with the selected key.
func (r *Runner) Decrypt() error {
	return r.run(Decrypt)
}

func (r *Runner) run(op func(*Request) (string, error)) error {
	_, keyPath, messagePath, passphrase := r.state.Snapshot()
	r.state.SetWorking(true)
	defer r.state.ResetAfterOperation()

	req := &Request{
		KeyPath:     keyPath,
		Passphrase:  []byte(passphrase),
		MessagePath: messagePath,
		Reporter:    r.reporter,
	}

	_, err := op(req)
	if apperrors.Is(err, apperrors.ErrFileExists) && r.ConfirmOverwrite != nil {
		var fe *apperrors.FileError
		if apperrors.As(err, &fe) && r.ConfirmOverwrite(fe.Path) {
			req.Overwrite = true
			_, err = op(req)
		}
	}
	return err
}
