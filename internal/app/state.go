package app

import "sync"

// State centralizes the transient UI state: selected paths, the pending
// passphrase, and the status line. All access is thread-safe. Paths and the
// passphrase are reset after each operation, matching the original event
// loop's behavior of clearing its inputs once an action completes.
type State struct {
	mu sync.RWMutex

	// Inputs
	KeyName     string // Name for a key to be generated
	KeyPath     string // Selected key file
	MessagePath string // Selected message file
	Passphrase  string // For protected key files

	// Status
	Working bool
	Status  string
}

// NewState creates application state with default values.
func NewState() *State {
	return &State{
		Status: "Ready",
	}
}

// Snapshot returns a copy of the current input fields.
func (s *State) Snapshot() (keyName, keyPath, messagePath, passphrase string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.KeyName, s.KeyPath, s.MessagePath, s.Passphrase
}

// SetKeyName records the name for the next generated key.
func (s *State) SetKeyName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.KeyName = name
}

// SetKeyPath records the selected key file.
func (s *State) SetKeyPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.KeyPath = path
}

// SetMessagePath records the selected message file.
func (s *State) SetMessagePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MessagePath = path
}

// SetPassphrase records the passphrase for a protected key file.
func (s *State) SetPassphrase(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Passphrase = p
}

// SetStatus updates the status line.
func (s *State) SetStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = text
}

// GetStatus returns the status line.
func (s *State) GetStatus() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Status
}

// SetWorking marks an operation as in progress.
func (s *State) SetWorking(working bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Working = working
}

// IsWorking reports whether an operation is in progress.
func (s *State) IsWorking() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Working
}

// CanStart reports whether an encrypt or decrypt operation has the inputs it
// needs.
func (s *State) CanStart() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.KeyPath != "" && s.MessagePath != ""
}

// ResetAfterOperation clears transient inputs once an action completes.
func (s *State) ResetAfterOperation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.KeyName = ""
	s.KeyPath = ""
	s.MessagePath = ""
	s.Passphrase = ""
	s.Working = false
}
