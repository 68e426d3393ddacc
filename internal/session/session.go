// Package session implements the keyed session registry of the
// debugger control plane: a UUID-indexed collection of
// DebuggingSession records plus their save/load serialization, ported
// from the upstream incode project's session bookkeeping in
// lldb_manager and grounded in the teacher's internal/mcp/tool_registry.go
// for its locking shape.
package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jowharshamshiri/incode-go/internal/incodeerr"
)

// State is the lifecycle state of a Session.
type State string

const (
	Created    State = "Created"
	Attached   State = "Attached"
	Running    State = "Running"
	Stopped    State = "Stopped"
	Terminated State = "Terminated"
)

// Session is a record of one logical debugging interaction.
type Session struct {
	ID                uuid.UUID
	TargetPath        *string
	ProcessID         *uint64
	State             State
	CreatedAt         time.Time
	CurrentThreadID   *uint32
	CurrentFrameIndex uint32
	HasTarget         bool
	HasProcess        bool
	HasThread         bool
}

// saveDocument is the exact on-disk/on-wire schema of §6's
// session-save JSON contract. Field order is fixed to keep the
// artifact stable across implementations.
type saveDocument struct {
	SessionID         string `json:"session_id"`
	State             string `json:"state"`
	CreatedAt         int64  `json:"created_at"`
	TargetPath        *string `json:"target_path"`
	ProcessID         *uint64 `json:"process_id"`
	CurrentThreadID   *uint32 `json:"current_thread_id"`
	CurrentFrameIndex uint32  `json:"current_frame_index"`
	HasTarget         bool    `json:"has_target"`
	HasProcess        bool    `json:"has_process"`
	HasThread         bool    `json:"has_thread"`
	SavedAt           int64   `json:"saved_at"`
}

// Registry is the mutex-guarded UUID -> Session mapping. It is
// declared thread-shareable even though, per the single-threaded
// cooperative request loop, only the loop goroutine ever mutates it.
type Registry struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*Session
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uuid.UUID]*Session)}
}

// Create allocates a new Session in the Created state and stores it.
func (r *Registry) Create() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &Session{
		ID:        uuid.New(),
		State:     Created,
		CreatedAt: time.Now(),
	}
	r.entries[s.ID] = s
	return s
}

// Get returns the session for id, or a SessionError if unknown.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.entries[id]
	if !ok {
		return nil, incodeerr.NewSessionError(fmt.Sprintf("unknown session %s", id))
	}
	return s, nil
}

// UpdateState transitions the session's lifecycle state.
func (r *Registry) UpdateState(id uuid.UUID, state State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.entries[id]
	if !ok {
		return incodeerr.NewSessionError(fmt.Sprintf("unknown session %s", id))
	}
	s.State = state
	return nil
}

// Cleanup removes the session from the registry.
func (r *Registry) Cleanup(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return incodeerr.NewSessionError(fmt.Sprintf("unknown session %s", id))
	}
	delete(r.entries, id)
	return nil
}

// Save serializes the session identified by id into the stable
// on-wire schema.
func (r *Registry) Save(id uuid.UUID) ([]byte, error) {
	r.mu.RLock()
	s, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, incodeerr.NewSessionError(fmt.Sprintf("unknown session %s", id))
	}

	doc := saveDocument{
		SessionID:         s.ID.String(),
		State:             string(s.State),
		CreatedAt:         s.CreatedAt.Unix(),
		TargetPath:        s.TargetPath,
		ProcessID:         s.ProcessID,
		CurrentThreadID:   s.CurrentThreadID,
		CurrentFrameIndex: s.CurrentFrameIndex,
		HasTarget:         s.HasTarget,
		HasProcess:        s.HasProcess,
		HasThread:         s.HasThread,
		SavedAt:           time.Now().Unix(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, incodeerr.WrapJson(err)
	}
	return data, nil
}

// validStates is consulted by Load to default unknown state strings
// to Created, per the facade's load_session contract.
var validStates = map[string]State{
	string(Created):    Created,
	string(Attached):   Attached,
	string(Running):     Running,
	string(Stopped):     Stopped,
	string(Terminated):  Terminated,
}

// Load parses a previously Saved document, installs the reconstructed
// session into the registry, and returns it.
func (r *Registry) Load(data []byte) (*Session, error) {
	var doc saveDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, incodeerr.WrapJson(err)
	}

	id, err := uuid.Parse(doc.SessionID)
	if err != nil {
		return nil, incodeerr.NewSessionError(fmt.Sprintf("invalid session id %q", doc.SessionID))
	}

	state, ok := validStates[doc.State]
	if !ok {
		state = Created
	}

	s := &Session{
		ID:                id,
		TargetPath:        doc.TargetPath,
		ProcessID:         doc.ProcessID,
		State:             state,
		CreatedAt:         time.Unix(doc.CreatedAt, 0),
		CurrentThreadID:   doc.CurrentThreadID,
		CurrentFrameIndex: doc.CurrentFrameIndex,
		HasTarget:         doc.HasTarget,
		HasProcess:        doc.HasProcess,
		HasThread:         doc.HasThread,
	}

	r.mu.Lock()
	r.entries[s.ID] = s
	r.mu.Unlock()

	return s, nil
}
